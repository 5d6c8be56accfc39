package handlers

import (
	"context"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"poadmin/models"
	"poadmin/utils"
)

type DocumentSource interface {
	Document(ctx context.Context, poRefNo string) (*models.PODocument, error)
}

type PDFRenderer interface {
	GeneratePOPDF(ctx context.Context, doc *models.PODocument) ([]byte, error)
}

type PDFHandler struct {
	Responder
	Repo      DocumentSource
	Generator PDFRenderer
	Objects   ObjectStore
}

// POPDF handles GET /po-headers/{po_ref_no}/pdf. With ?store=true the PDF is
// uploaded to the object store and its URL returned instead.
func (h *PDFHandler) POPDF(w http.ResponseWriter, r *http.Request) {
	ref, err := ParseRef(mux.Vars(r)["po_ref_no"])
	if err != nil {
		h.fail(w, r, "PO Header", err)
		return
	}
	doc, err := h.Repo.Document(r.Context(), ref)
	if err != nil {
		h.fail(w, r, "PO Header", err)
		return
	}

	pdfBytes, err := h.Generator.GeneratePOPDF(r.Context(), doc)
	if err != nil {
		h.fail(w, r, "PO Header", err)
		return
	}

	if r.URL.Query().Get("store") == "true" {
		if h.Objects == nil {
			h.badRequest(w, "File storage is not configured")
			return
		}
		url, err := h.Objects.Put(r.Context(), utils.DocumentKey(ref), pdfBytes, "application/pdf")
		if err != nil {
			h.fail(w, r, "PO Header", err)
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "PDF stored", Data: map[string]string{"url": url}})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": ref + ".pdf"}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
