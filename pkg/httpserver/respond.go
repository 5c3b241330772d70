package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Envelope is the uniform response shape: {"success":true,"data":...} on
// success, {"success":false,"error":"..."} on failure.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListData wraps a page of results with its total row count.
type ListData struct {
	Items    interface{} `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page,omitempty"`
	PageSize int         `json:"page_size,omitempty"`
}

func RespondOK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}

func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: false, Error: message})
}

// ErrorStatus maps a use-case error to an HTTP status. Not-found errors are
// phrased "<entity> not found" by convention; everything else is a 500.
func ErrorStatus(err error) int {
	if strings.HasSuffix(err.Error(), "not found") {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// DecodeBody reads the request body as JSON into dst.
func DecodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
