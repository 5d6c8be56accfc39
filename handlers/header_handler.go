package handlers

import (
	"poadmin/audit"
	"poadmin/models"
	"poadmin/repository"
)

type HeaderHandler struct {
	*Crud[models.POHeader, string]
}

func NewHeaderHandler(repo repository.HeaderRepository, rec audit.Recorder, resp Responder) *HeaderHandler {
	return &HeaderHandler{Crud: &Crud[models.POHeader, string]{
		Responder: resp,
		Store:     repo,
		Audit:     rec,
		Name:      "PO Header",
		Entity:    "po_header",
		ParseKey:  ParseRef,
		KeyOf:     func(h *models.POHeader) string { return h.PORefNo },
	}}
}
