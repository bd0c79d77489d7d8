// Package server exposes a keep.Store over HTTP and MCP, for deployments
// where the blob lives on one machine and its consumers elsewhere.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veslov/keep"
)

const maxBlobSize = 10 << 20 // 10MB

// Config carries the handler's knobs.
type Config struct {
	// Token, when non-empty, gates the blob routes behind bearer auth.
	// /health stays open either way.
	Token string
}

// New builds the HTTP handler: HEAD/GET/PUT on /blob mapping to
// Exists/Read/Write on the store, plus /health.
func New(st *keep.Store, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		if cfg.Token != "" {
			r.Use(BearerAuth(cfg.Token))
		}
		r.Head("/blob", handleExists(st))
		r.Get("/blob", handleRead(st))
		r.Put("/blob", handleWrite(st))
	})

	return r
}

func handleExists(st *keep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok, err := st.Exists(r.Context())
		if err != nil {
			w.WriteHeader(storeErrorStatus(err))
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func handleRead(st *keep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := st.Read(r.Context())
		if err != nil {
			httpError(w, storeErrorStatus(err), storeErrorType(err), "%v", err)
			return
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write(data)
	}
}

func handleWrite(st *keep.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBlobSize)
		defer r.Body.Close()

		data, err := io.ReadAll(r.Body)
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "reading body: %v", err)
			return
		}
		if err := st.Write(r.Context(), data); err != nil {
			httpError(w, storeErrorStatus(err), storeErrorType(err), "%v", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// storeErrorStatus maps the store's error taxonomy onto HTTP. A resolution
// failure is server misconfiguration, not a client problem.
func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, keep.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func storeErrorType(err error) string {
	var decodeErr *keep.DecodeError
	switch {
	case errors.Is(err, keep.ErrNotFound):
		return "not_found"
	case errors.Is(err, keep.ErrNoCandidate):
		return "configuration_error"
	case errors.As(err, &decodeErr):
		return "decode_error"
	default:
		return "storage_error"
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
