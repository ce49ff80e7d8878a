package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-subscription-tracker/internal/models"
)

// Error messages returned to clients.
const (
	msgInvalidID      = "Invalid subscription id"
	msgInvalidBody    = "Invalid request body"
	msgIDMismatch     = "ID mismatch"
	msgNotFound       = "Subscription not found"
	msgAlreadySeeded  = "Database already seeded."
	msgNoFile         = "No file uploaded."
	msgUnreadableFile = "Uploaded file could not be read."
	msgFileTooLarge   = "Uploaded file is too large."
	msgInternal       = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// pathID reads the {id} route parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
