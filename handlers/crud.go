package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"poadmin/audit"
	"poadmin/query"
	"poadmin/repository"
)

// Crud serves create, list, get, update and delete for one resource.
type Crud[T any, K comparable] struct {
	Responder
	Store    repository.Store[T, K]
	Audit    audit.Recorder
	Name     string
	Entity   string
	ParseKey func(string) (K, error)
	KeyOf    func(*T) string
}

func (h *Crud[T, K]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	h.create(w, r, body)
}

func (h *Crud[T, K]) create(w http.ResponseWriter, r *http.Request, body query.Body) (*T, bool) {
	v, err := h.Store.Create(r.Context(), body)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return nil, false
	}
	h.record(r.Context(), audit.ActionCreate, body.Text("created_by"), h.KeyOf(v), v)
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: h.Name + " created successfully", Data: v})
	return v, true
}

func (h *Crud[T, K]) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.Store.List(r.Context(), r.URL.Query())
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{
		Success:    true,
		Data:       res.Data,
		Pagination: res.Pagination,
		Summary:    res.Summary,
	})
}

func (h *Crud[T, K]) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}
	v, err := h.Store.Get(r.Context(), key)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: v})
}

func (h *Crud[T, K]) Update(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}
	body, err := decodeBody(r)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	v, err := h.Store.Update(r.Context(), key, body)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return
	}
	h.record(r.Context(), audit.ActionUpdate, body.Text(query.ModifiedBy), h.KeyOf(v), v)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: h.Name + " updated successfully", Data: v})
}

func (h *Crud[T, K]) Delete(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r)
}

func (h *Crud[T, K]) delete(w http.ResponseWriter, r *http.Request) (*T, bool) {
	key, ok := h.key(w, r)
	if !ok {
		return nil, false
	}
	v, err := h.Store.Delete(r.Context(), key)
	if err != nil {
		h.fail(w, r, h.Name, err)
		return nil, false
	}
	h.record(r.Context(), audit.ActionDelete, r.URL.Query().Get("deleted_by"), h.KeyOf(v), v)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: h.Name + " deleted successfully", Data: v})
	return v, true
}

func (h *Crud[T, K]) key(w http.ResponseWriter, r *http.Request) (K, bool) {
	key, err := h.ParseKey(mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, h.Name, err)
		return key, false
	}
	return key, true
}

// record writes an audit entry. Failures are logged and never fail the request.
func (h *Crud[T, K]) record(ctx context.Context, action audit.Action, user, id string, after any) {
	if h.Audit == nil {
		return
	}
	err := h.Audit.WriteLog(ctx, audit.LogOptions{
		UserName:   user,
		EntityType: h.Entity,
		EntityID:   id,
		Action:     action,
		After:      after,
	})
	if err != nil {
		h.logger().Warn("audit log failed", "entity", h.Entity, "id", id, "error", err)
	}
}

const maxRefLen = 50

// ParseRef validates a purchase order reference taken from the path.
func ParseRef(s string) (string, error) {
	ref := strings.TrimSpace(s)
	if ref == "" {
		return "", &query.ValidationError{Field: "po_ref_no", Message: "PO reference number is required"}
	}
	if utf8.RuneCountInString(ref) > maxRefLen {
		return "", &query.ValidationError{Field: "po_ref_no", Message: fmt.Sprintf("PO reference number must be %d characters or less", maxRefLen)}
	}
	return ref, nil
}

// ParseSno validates a detail row id taken from the path.
func ParseSno(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, &query.ValidationError{Field: "id", Message: "Invalid ID parameter. Must be a positive number."}
	}
	return n, nil
}

func snoKey(sno int64) string {
	return strconv.FormatInt(sno, 10)
}
