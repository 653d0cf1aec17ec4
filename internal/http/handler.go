package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// maxBodyBytes caps request bodies read by decodeJSON.
const maxBodyBytes = 1 << 20

// handlerFunc is an HTTP handler that reports failures instead of writing
// them. Service.handle turns the error into a response.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// requestError marks a request that could not be bound: a malformed body or
// path parameter.
type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }

func (e *requestError) Unwrap() error { return e.err }

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var reqErr *requestError
		if errors.As(err, &reqErr) {
			s.handleRequestError(w, r, reqErr.err)
			return
		}
		s.handleResponseError(w, r, err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &requestError{err: fmt.Errorf("decode request body: %w", err)}
	}
	return nil
}

// pathID binds the named chi path parameter.
func pathID(r *http.Request, name string) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return "", &requestError{err: fmt.Errorf("invalid format for parameter %s: %w", name, err)}
	}
	return id, nil
}

// responder writes successful JSON responses.
type responder struct {
	logger *slog.Logger
}

func (rs responder) json(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.logger.WarnContext(r.Context(), "error encoding response", slog.Any("error", err))
	}
}
