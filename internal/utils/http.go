package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// It sets "Content-Type: application/json". If marshaling fails it responds
// with 500 Internal Server Error and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.ShareResult{ID: id, URL: url}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteBody writes an already rendered body with the given content type and
// status code. cacheControl is only set when non-empty.
func WriteBody(w http.ResponseWriter, body []byte, contentType, cacheControl string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(statusCode)

	return w.Write(body)
}
