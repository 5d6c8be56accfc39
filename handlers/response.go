package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"poadmin/query"
	"poadmin/repository"
)

type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListResponse struct {
	Success    bool             `json:"success"`
	Data       any              `json:"data"`
	Pagination query.Pagination `json:"pagination"`
	Summary    any              `json:"summary,omitempty"`
}

// RefResponse carries every row of one purchase order.
type RefResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
	Summary any  `json:"summary,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Responder turns repository and validation errors into HTTP responses.
type Responder struct {
	Logger     *slog.Logger
	Production bool
}

func (h Responder) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// fail writes err using name ("PO Header") for not-found and duplicate messages.
func (h Responder) fail(w http.ResponseWriter, r *http.Request, name string, err error) {
	var (
		ve       *query.ValidationError
		ce       *repository.ChildRecordsError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.As(err, &ve):
		h.badRequest(w, ve.Message)
	case errors.As(err, &ce):
		h.badRequest(w, ce.Error())
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: name + " not found"})
	case errors.Is(err, repository.ErrDuplicate):
		writeJSON(w, http.StatusConflict, h.withDetails(ErrorResponse{Error: name + " already exists"}, err))
	case errors.Is(err, repository.ErrReferenceMissing):
		h.badRequest(w, "Referenced purchase order does not exist")
	case errors.Is(err, repository.ErrNullViolation):
		writeJSON(w, http.StatusBadRequest, h.withDetails(ErrorResponse{Error: "Required field cannot be null"}, err))
	case errors.Is(err, repository.ErrInvalidDatetime):
		h.badRequest(w, "Invalid date format")
	case errors.Is(err, repository.ErrNumericRange):
		h.badRequest(w, "Numeric value out of range")
	default:
		h.logger().Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", r.Header.Get(RequestIDHeader),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, h.withDetails(ErrorResponse{Error: "Internal server error"}, err))
	}
}

func (h Responder) withDetails(resp ErrorResponse, err error) ErrorResponse {
	if !h.Production {
		resp.Details = err.Error()
	}
	return resp
}

func (h Responder) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// decodeBody reads a JSON object, keeping each member raw.
func decodeBody(r *http.Request) (query.Body, error) {
	var body query.Body
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		if errors.Is(err, io.EOF) {
			return nil, &query.ValidationError{Message: "Request body is required"}
		}
		return nil, &query.ValidationError{Message: "Invalid JSON body"}
	}
	if body == nil {
		return nil, &query.ValidationError{Message: "Request body is required"}
	}
	return body, nil
}

const RequestIDHeader = "X-Request-ID"
