package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"poadmin/audit"
	"poadmin/models"
	"poadmin/repository"
)

type ConversationHandler struct {
	*Crud[models.POConversation, int64]
	Repo repository.ConversationRepository
}

func NewConversationHandler(repo repository.ConversationRepository, rec audit.Recorder, resp Responder) *ConversationHandler {
	return &ConversationHandler{
		Crud: &Crud[models.POConversation, int64]{
			Responder: resp,
			Store:     repo,
			Audit:     rec,
			Name:      "PO Conversation",
			Entity:    "po_conversation",
			ParseKey:  ParseSno,
			KeyOf:     func(c *models.POConversation) string { return snoKey(c.Sno) },
		},
		Repo: repo,
	}
}

// ByRef handles GET /po-details3/ref/{po_ref_no}: the thread oldest first
// with its timeline.
func (h *ConversationHandler) ByRef(w http.ResponseWriter, r *http.Request) {
	ref, err := ParseRef(mux.Vars(r)["po_ref_no"])
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	msgs, thread, err := h.Repo.ByRef(r.Context(), ref)
	if err != nil {
		h.fail(w, r, "Purchase Order "+ref, err)
		return
	}
	writeJSON(w, http.StatusOK, RefResponse{Success: true, Count: len(msgs), Data: msgs, Summary: thread})
}

func (h *ConversationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	ref, err := ParseRef(mux.Vars(r)["po_ref_no"])
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	msg, err := h.Repo.Latest(r.Context(), ref)
	if err != nil {
		h.fail(w, r, "Conversation for "+ref, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: msg})
}
