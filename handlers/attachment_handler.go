package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"poadmin/audit"
	"poadmin/models"
	"poadmin/query"
	"poadmin/repository"
	"poadmin/utils"
)

// ObjectStore mirrors uploaded files outside the database.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

type AttachmentHandler struct {
	*Crud[models.POAttachment, int64]
	Repo           repository.AttachmentRepository
	Objects        ObjectStore
	MaxUploadBytes int64
}

func NewAttachmentHandler(repo repository.AttachmentRepository, rec audit.Recorder, resp Responder, objects ObjectStore, maxUploadBytes int64) *AttachmentHandler {
	return &AttachmentHandler{
		Crud: &Crud[models.POAttachment, int64]{
			Responder: resp,
			Store:     repo,
			Audit:     rec,
			Name:      "PO File",
			Entity:    "po_file",
			ParseKey:  ParseSno,
			KeyOf:     func(a *models.POAttachment) string { return snoKey(a.Sno) },
		},
		Repo:           repo,
		Objects:        objects,
		MaxUploadBytes: maxUploadBytes,
	}
}

// Create accepts either a multipart form with a "file" part or a JSON body
// carrying base64 content_data.
func (h *AttachmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}

	var (
		body query.Body
		raw  []byte
		err  error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		body, raw, err = h.readMultipart(r)
	} else {
		body, raw, err = readJSONUpload(r)
	}
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}

	a, ok := h.create(w, r, body)
	if ok && h.Objects != nil {
		h.mirror(r, a, raw)
	}
}

func (h *AttachmentHandler) readMultipart(r *http.Request) (query.Body, []byte, error) {
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, err
		}
		return nil, nil, &query.ValidationError{Message: "Invalid multipart form"}
	}
	values := map[string]string{}
	for k, v := range r.MultipartForm.Value {
		if len(v) > 0 && k != "content_data" {
			values[k] = v[0]
		}
	}
	body := query.FormBody(values)

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, &query.ValidationError{Field: "file", Message: "file is required"}
	}
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, err
	}
	if body.Text("file_name") == "" {
		_ = body.Set("file_name", header.Filename)
	}
	if body.Text("content_type") == "" {
		if ct := header.Header.Get("Content-Type"); ct != "" {
			_ = body.Set("content_type", ct)
		}
	}
	_ = body.Set("content_data", base64.StdEncoding.EncodeToString(raw))
	return body, raw, nil
}

func readJSONUpload(r *http.Request) (query.Body, []byte, error) {
	body, err := decodeBody(r)
	if err != nil {
		return nil, nil, err
	}
	encoded := body.Text("content_data")
	if encoded == "" {
		return body, nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, nil, &query.ValidationError{Field: "content_data", Message: "content_data must be base64 encoded"}
	}
	return body, raw, nil
}

func (h *AttachmentHandler) mirror(r *http.Request, a *models.POAttachment, raw []byte) {
	ct := repository.DefaultContentType
	if a.ContentType != nil {
		ct = *a.ContentType
	}
	key := utils.AttachmentKey(a.PORefNo, a.Sno, a.FileName)
	if _, err := h.Objects.Put(r.Context(), key, raw, ct); err != nil {
		h.logger().Warn("file mirror failed", "key", key, "error", err)
	}
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	a, ok := h.delete(w, r)
	if !ok || h.Objects == nil {
		return
	}
	key := utils.AttachmentKey(a.PORefNo, a.Sno, a.FileName)
	if err := h.Objects.Delete(r.Context(), key); err != nil {
		h.logger().Warn("file mirror delete failed", "key", key, "error", err)
	}
}

// ByRef handles GET /po-details4/ref/{po_ref_no}.
func (h *AttachmentHandler) ByRef(w http.ResponseWriter, r *http.Request) {
	ref, err := ParseRef(mux.Vars(r)["po_ref_no"])
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	files, err := h.Repo.ByRef(r.Context(), ref)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	writeJSON(w, http.StatusOK, RefResponse{Success: true, Count: len(files), Data: files})
}

// Download streams the decoded file.
func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	sno, ok := h.key(w, r)
	if !ok {
		return
	}
	a, err := h.Repo.Get(r.Context(), sno)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	raw, err := base64.StdEncoding.DecodeString(a.ContentData)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}

	ct := repository.DefaultContentType
	if a.ContentType != nil && *a.ContentType != "" {
		ct = *a.ContentType
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.FileName}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
