package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/algolab/internal/account"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/playback"
)

// Server exposes a playback controller over HTTP.
type Server struct {
	ctrl   *playback.Controller
	reg    *experiment.Registry
	user   *account.Profile
	logger *slog.Logger
}

// NewServer wires handlers to ctrl. user is the signed-in account reported
// by /user and may be nil.
func NewServer(ctrl *playback.Controller, reg *experiment.Registry, user *account.Profile, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		ctrl:   ctrl,
		reg:    reg,
		user:   user,
		logger: logger.With(slog.String("component", "api")),
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/state", s.getState).Methods("GET")
	r.HandleFunc("/user", s.getUser).Methods("GET")
	r.HandleFunc("/algorithms", s.getAlgorithms).Methods("GET")
	r.HandleFunc("/algorithms/{category}", s.getAlgorithms).Methods("GET")
	r.HandleFunc("/start", s.postStart).Methods("POST")
	r.HandleFunc("/stop", s.postStop).Methods("POST")
	r.HandleFunc("/reset", s.postReset).Methods("POST")
	r.HandleFunc("/config", s.putConfig).Methods("PUT")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}
