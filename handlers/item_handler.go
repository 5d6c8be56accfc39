package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"poadmin/audit"
	"poadmin/models"
	"poadmin/repository"
)

type ItemHandler struct {
	*Crud[models.POItem, int64]
	Repo repository.ItemRepository
}

func NewItemHandler(repo repository.ItemRepository, rec audit.Recorder, resp Responder) *ItemHandler {
	return &ItemHandler{
		Crud: &Crud[models.POItem, int64]{
			Responder: resp,
			Store:     repo,
			Audit:     rec,
			Name:      "PO Item",
			Entity:    "po_item",
			ParseKey:  ParseSno,
			KeyOf:     func(i *models.POItem) string { return snoKey(i.Sno) },
		},
		Repo: repo,
	}
}

// ByRef handles GET /po-details1/ref/{po_ref_no}.
func (h *ItemHandler) ByRef(w http.ResponseWriter, r *http.Request) {
	ref, err := ParseRef(mux.Vars(r)["po_ref_no"])
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	items, err := h.Repo.ByRef(r.Context(), ref)
	if err != nil {
		h.fail(w, r, "PO Items for "+ref, err)
		return
	}
	writeJSON(w, http.StatusOK, RefResponse{Success: true, Count: len(items), Data: items})
}
