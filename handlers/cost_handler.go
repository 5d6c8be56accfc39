package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"poadmin/audit"
	"poadmin/models"
	"poadmin/repository"
)

type CostHandler struct {
	*Crud[models.POCost, int64]
	Repo repository.CostRepository
}

func NewCostHandler(repo repository.CostRepository, rec audit.Recorder, resp Responder) *CostHandler {
	return &CostHandler{
		Crud: &Crud[models.POCost, int64]{
			Responder: resp,
			Store:     repo,
			Audit:     rec,
			Name:      "PO Additional Cost",
			Entity:    "po_additional_cost",
			ParseKey:  ParseSno,
			KeyOf:     func(c *models.POCost) string { return snoKey(c.Sno) },
		},
		Repo: repo,
	}
}

// ByRef handles GET /po-details2/ref/{po_ref_no}.
func (h *CostHandler) ByRef(w http.ResponseWriter, r *http.Request) {
	ref, err := ParseRef(mux.Vars(r)["po_ref_no"])
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	costs, summary, err := h.Repo.ByRef(r.Context(), ref)
	if err != nil {
		h.fail(w, r, "Purchase Order "+ref, err)
		return
	}
	writeJSON(w, http.StatusOK, RefResponse{Success: true, Count: len(costs), Data: costs, Summary: summary})
}
