package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/notifyhub/sms-relay/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads the request body into v. An empty body decodes as {} so
// the request's own validation reports what is missing. Type mismatches on
// known fields surface as the matching validation error.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case strings.HasPrefix(typeErr.Field, "phoneNumbers"):
			return domain.ErrInvalidDestinations
		case typeErr.Field == "message":
			return domain.ErrInvalidMessage
		}
	}
	return domain.ErrInvalidBody
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrInvalidBody),
		errors.Is(err, domain.ErrInvalidDestinations),
		errors.Is(err, domain.ErrInvalidMessage):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &maxErr):
		respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, domain.ErrMissingCredential),
		errors.Is(err, domain.ErrUpstream):
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
