package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"talenthub/internal/validate"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondToken(w http.ResponseWriter, code int, token string) {
	writeJSON(w, code, map[string]any{
		"success": true,
		"token":   token,
	})
}

func respondData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, map[string]any{
		"success": true,
		"data":    data,
	})
}

func respondError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{
		"success": false,
		"error":   msg,
	})
}

func respondFieldErrors(w http.ResponseWriter, errs validate.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"errors":  errs,
	})
}

// respondServerError logs the cause and returns an opaque 500. Internal
// detail never reaches the response body.
func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v\n", err)
	respondError(w, http.StatusInternalServerError, "server error")
}

// decodeBody maps a type mismatch in the JSON body to a field-level 400
// instead of a generic bad-json error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			respondFieldErrors(w, validate.FieldErrors{
				validate.Field("invalid value type", typeErr.Field),
			})
			return false
		}
		respondError(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}
