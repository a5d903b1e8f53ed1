package app

import (
	"net/http"

	"github.com/financeflow/financeflow/internal/config"
	"github.com/financeflow/financeflow/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Request logging
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			log.Debugf("%s %s", req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})

	// Panic recovery: unexpected failures downgrade to a generic 500 instead
	// of propagating a stack trace to the caller.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorf("panic handling %s %s: %v", req.Method, req.URL.Path, rec)
					rest.Error(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, req)
		})
	})
}
