package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quickblog/app/logger"
	"quickblog/app/services"
)

// messageResponse is the body of every message-only reply, errors included.
type messageResponse struct {
	Message string `json:"message"`
}

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func sendMessage(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, messageResponse{Message: message})
}

// sendError maps service errors to status codes: validation failures are
// 400, missing records 404 and anything else 500 with the raw message.
func sendError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	default:
		logger.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
	}
	sendMessage(w, status, err.Error())
}

// decodeJSON reads a JSON request body into v. Unknown fields are ignored.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
