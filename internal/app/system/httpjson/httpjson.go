// internal/app/system/httpjson/httpjson.go
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sjihq/featureboard/internal/app/system/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies. The board only ever receives
// small payloads (titles, descriptions, comments).
const maxBodyBytes = 1 << 20

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError renders err as {"message","statusCode"}. Domain errors keep
// their status; anything else becomes a 500 with a generic message and
// the real cause goes to the log only.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ae, ok := apperr.From(err); ok {
		Write(w, ae.StatusCode, ae)
		return
	}
	if logger != nil {
		logger.Error("request failed", zap.Error(err))
	}
	Write(w, http.StatusInternalServerError, apperr.New(http.StatusInternalServerError, "Something went wrong"))
}

// DecodeBody decodes a JSON request body into dst. A missing or
// malformed body comes back as a 400 domain error.
func DecodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("Request body is required")
		}
		return apperr.Invalid("Invalid JSON request body")
	}
	return nil
}

// NotFoundHandler answers unmatched routes with a generic 404 JSON body.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, http.StatusNotFound, apperr.NotFound("Route not found"))
	}
}

// MethodNotAllowedHandler answers known routes hit with the wrong verb.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, http.StatusMethodNotAllowed, apperr.New(http.StatusMethodNotAllowed, "Method not allowed"))
	}
}

// Recoverer converts handler panics into a 500 JSON response so no
// request ever dies without a body.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logger != nil {
						logger.Error("panic serving request",
							zap.Any("panic", rec),
							zap.String("path", r.URL.Path))
					}
					Write(w, http.StatusInternalServerError,
						apperr.New(http.StatusInternalServerError, "Something went wrong"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}