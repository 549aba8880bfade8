// Package server exposes the analysis engine as a read-only JSON API
// over a profile directory. Every request reloads the profile so the
// response always reflects the current snapshot; nothing is cached.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/freedomd-dev/freedomd/internal/cashflow"
	"github.com/freedomd-dev/freedomd/internal/freedom"
	"github.com/freedomd-dev/freedomd/internal/paycheck"
	"github.com/freedomd-dev/freedomd/internal/store"
)

// Server serves analysis results for one profile directory.
type Server struct {
	dir string
	log *logrus.Logger
}

// New creates a Server over a profile directory.
func New(dir string, log *logrus.Logger) *Server {
	return &Server{dir: dir, log: log}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/cashflow", s.handleCashFlow).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{id}/cashflow", s.handleAccountCashFlow).Methods(http.MethodGet)
	api.HandleFunc("/freedom", s.handleFreedom).Methods(http.MethodGet)
	api.HandleFunc("/paycheck/{incomeId}", s.handlePaycheck).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.log.WithField("addr", addr).Info("serving analysis API")
	return srv.ListenAndServe()
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCashFlow(w http.ResponseWriter, r *http.Request) {
	p, err := store.Load(s.dir)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cashflow.AnalyzeAll(p))
}

func (s *Server) handleAccountCashFlow(w http.ResponseWriter, r *http.Request) {
	p, err := store.Load(s.dir)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	acct, ok := p.Account(mux.Vars(r)["id"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown account"})
		return
	}
	writeJSON(w, http.StatusOK, cashflow.AnalyzeAccount(acct, p.IncomeSources, p.Obligations, p.Debts))
}

func (s *Server) handleFreedom(w http.ResponseWriter, r *http.Request) {
	p, err := store.Load(s.dir)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, freedom.Calculate(p))
}

func (s *Server) handlePaycheck(w http.ResponseWriter, r *http.Request) {
	p, err := store.Load(s.dir)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	src, ok := p.IncomeSource(mux.Vars(r)["incomeId"])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown income source"})
		return
	}
	writeJSON(w, http.StatusOK, paycheck.Calculate(src, p))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "profile unavailable"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
