package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/shrimpsizemoose/trekker/logger"
)

type fieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}

// writeDetail mirrors the {"detail": ...} error body the API clients expect
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]interface{}{"detail": detail})
}

// writeValidationError renders field-level failures as a 422 with one
// entry per rejected field
func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldError{
			Field: fe.Field(),
			Error: "failed validation rule " + fe.Tag(),
		})
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"detail": details})
}
