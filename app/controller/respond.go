package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"storefront-core/repository"
	"storefront-core/service"
)

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, op string, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", op, err)
	}
}

// statusFor maps service and repository errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrProductInactive):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrInsufficientStock), errors.Is(err, repository.ErrInvalidStatus):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidSelection), errors.Is(err, service.ErrEmptySelection):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSwatchSourceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and answers with its mapped status
func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	log.Printf("❌ %s: %v (status=%d)", op, err, status)
	if status == http.StatusInternalServerError {
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// pathSegments returns the non-empty segments after prefix.
// "/products/12/colors" with prefix "/products/" gives ["12", "colors"].
func pathSegments(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

func parseProductID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
