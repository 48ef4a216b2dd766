package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const internalMessage = "internal server error"

// HTTPBody is the JSON error document returned to HTTP clients
type HTTPBody struct {
	Detail string              `json:"detail"`
	Code   Code                `json:"code"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// ToHTTP converts an error to its status code and response body.
// Server-side errors never expose their message or cause.
func ToHTTP(err error) (int, HTTPBody) {
	code := GetCode(err)
	status := code.HTTPStatus()

	if !code.IsClientError() {
		return status, HTTPBody{Detail: internalMessage, Code: code}
	}

	body := HTTPBody{Detail: GetMessage(err), Code: code}
	if fields, ok := GetMeta(err)["validation_errors"].(map[string][]string); ok {
		body.Fields = fields
	}
	return status, body
}

// WriteHTTP logs server-side errors and writes the JSON error response
func WriteHTTP(w http.ResponseWriter, r *http.Request, err error) {
	status, body := ToHTTP(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) // nolint:errcheck // client went away
}
