package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"poadmin/docs"
	"poadmin/handlers"
)

type Handlers struct {
	Headers       *handlers.HeaderHandler
	Items         *handlers.ItemHandler
	Costs         *handlers.CostHandler
	Conversations *handlers.ConversationHandler
	Attachments   *handlers.AttachmentHandler
	PDF           *handlers.PDFHandler
	Health        *handlers.HealthHandler
}

type crud interface {
	Create(http.ResponseWriter, *http.Request)
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func mountCrud(r *mux.Router, h crud) {
	r.HandleFunc("", h.Create).Methods(http.MethodPost)
	r.HandleFunc("", h.List).Methods(http.MethodGet)
	r.HandleFunc("/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/{id}", h.Delete).Methods(http.MethodDelete)
}

// NewRouter registers every route. Middleware that must also see unmatched
// and preflight requests is applied by Wrap.
func NewRouter(h Handlers) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", h.Health.Welcome).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/api-docs", docs.UI).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/swagger.json", docs.JSON).Methods(http.MethodGet)

	po := router.PathPrefix("/api/v1/po").Subrouter()

	headers := po.PathPrefix("/po-headers").Subrouter()
	headers.HandleFunc("/{po_ref_no}/pdf", h.PDF.POPDF).Methods(http.MethodGet)
	mountCrud(headers, h.Headers)

	items := po.PathPrefix("/po-details1").Subrouter()
	items.HandleFunc("/ref/{po_ref_no}", h.Items.ByRef).Methods(http.MethodGet)
	mountCrud(items, h.Items)

	costs := po.PathPrefix("/po-details2").Subrouter()
	costs.HandleFunc("/ref/{po_ref_no}", h.Costs.ByRef).Methods(http.MethodGet)
	mountCrud(costs, h.Costs)

	conversations := po.PathPrefix("/po-details3").Subrouter()
	conversations.HandleFunc("/ref/{po_ref_no}/latest", h.Conversations.Latest).Methods(http.MethodGet)
	conversations.HandleFunc("/ref/{po_ref_no}", h.Conversations.ByRef).Methods(http.MethodGet)
	mountCrud(conversations, h.Conversations)

	files := po.PathPrefix("/po-details4").Subrouter()
	files.HandleFunc("/ref/{po_ref_no}", h.Attachments.ByRef).Methods(http.MethodGet)
	files.HandleFunc("/{id}/download", h.Attachments.Download).Methods(http.MethodGet)
	mountCrud(files, h.Attachments)

	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	return router
}

// Wrap applies CORS, request logging and panic recovery around the router.
func Wrap(router http.Handler, allowedOrigins []string) http.Handler {
	return withCORS(withRequestLog(handlers.RecoverWrapper(router)), allowedOrigins)
}
