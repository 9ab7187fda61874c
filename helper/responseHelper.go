package helper

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/YEHIA060606/backend-ecommerce/models"
)

// ListResponse is the envelope returned by every paginated list endpoint.
type ListResponse struct {
	Page  int64       `json:"page"`
	Limit int64       `json:"limit"`
	Total int64       `json:"total"`
	Data  interface{} `json:"data"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithError writes the JSON error body for an AppError; anything
// else is treated as an unexpected server failure. Internal errors carry
// the underlying error text in a separate field for diagnostics.
func RespondWithError(w http.ResponseWriter, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError("Unexpected server error", err)
	}

	body := map[string]interface{}{"message": appErr.Message}
	if appErr.Status == http.StatusInternalServerError && appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}

	RespondWithJSON(w, appErr.Status, body)
}
