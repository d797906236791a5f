package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "geotransect-api/internal/common/errors"
)

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes a structured error response with its mapped status
func respondError(w http.ResponseWriter, err *apperrors.StandardError) {
	respondJSON(w, err.HTTPStatus(), map[string]interface{}{"error": err})
}

// decodeBody parses a JSON request body into an untyped field mapping, the
// shape schema validation operates on.
func decodeBody(r *http.Request) (map[string]interface{}, *apperrors.StandardError) {
	var input map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return nil, apperrors.NewMalformedBodyError(err)
	}
	return input, nil
}
