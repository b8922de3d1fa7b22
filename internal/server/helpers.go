package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bobmcallan/greenvest/internal/analytics"
	"github.com/bobmcallan/greenvest/internal/interfaces"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// The body is encoded before the header is sent; an encoding failure becomes a 500.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		buf.Reset()
		statusCode = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{Error: "failed to encode response", Code: "internal"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteErrorWithCode writes a JSON error response with an error code.
func WriteErrorWithCode(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// WriteServiceError maps a service or analytics error to its HTTP status.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, interfaces.ErrFundNotFound):
		WriteErrorWithCode(w, http.StatusNotFound, err.Error(), "not_found")
	case errors.Is(err, analytics.ErrInvalidArgument):
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "invalid_argument")
	case errors.Is(err, analytics.ErrNumericDegenerate):
		WriteErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), "numeric_degenerate")
	case errors.Is(err, context.DeadlineExceeded):
		WriteErrorWithCode(w, http.StatusGatewayTimeout, err.Error(), "timeout")
	default:
		WriteErrorWithCode(w, http.StatusInternalServerError, err.Error(), "internal")
	}
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v, then
// validates any `validate` struct tags on it.
// Returns false and writes a 400 error if either step fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		WriteError(w, http.StatusBadRequest, "Request body is required")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), "invalid_argument")
		return false
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			WriteErrorWithCode(w, http.StatusBadRequest,
				fmt.Sprintf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag()), "invalid_argument")
			return false
		}
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "invalid_argument")
		return false
	}
	return true
}

// QueryInt reads an integer query parameter, returning def when it is absent.
// Returns false and writes a 400 error when it is present but not an integer.
func QueryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, fmt.Sprintf("%s must be an integer", name), "invalid_argument")
		return 0, false
	}
	return v, true
}

// splitList splits a comma separated query value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
