// Package server implements the key-intake HTTP endpoint. A running client
// application posts missing translation keys to it and the catalog registers
// them into every configured language's file.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/guilgui51/keyhub"
)

// Status describes the server state machine: stopped or running, plus the
// port the server is (or was last) bound to.
type Status struct {
	Running bool `json:"running"`
	Port    int  `json:"port"`
}

// Server is the key-intake HTTP server. It binds to loopback only and moves
// between exactly two states: stopped and running. The bound port is
// remembered across stop/start cycles.
type Server struct {
	catalog *keyhub.Catalog
	logger  glog.Logger

	mu       sync.Mutex
	running  bool
	port     int
	listener net.Listener
	srv      *http.Server
}

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithLogger sets the request/lifecycle logger.
func WithLogger(logger glog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a key-intake server for the given catalog.
func New(catalog *keyhub.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: catalog,
		port:    keyhub.DefaultServerPort,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start binds the server to the given loopback port and begins serving.
// Starting while already running returns the current status without
// rebinding. A port of 0 reuses the remembered port.
func (s *Server) Start(port int) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return Status{Running: true, Port: s.port}, nil
	}
	if port > 0 {
		s.port = port
	}

	ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(s.port)))
	if err != nil {
		return Status{Running: false, Port: s.port},
			&keyhub.CatalogError{Message: "binding port " + strconv.Itoa(s.port), Cause: err}
	}

	s.listener = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.running = true

	go func(srv *http.Server, ln net.Listener) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.warnf("server stopped unexpectedly", "error", err)
		}
	}(s.srv, ln)

	s.infof("key-intake server listening", "port", s.port)
	return Status{Running: true, Port: s.port}, nil
}

// Stop shuts the server down. Stopping while already stopped is a no-op.
func (s *Server) Stop() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return Status{Running: false, Port: s.port}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		_ = s.srv.Close()
	}

	s.running = false
	s.srv = nil
	s.listener = nil
	s.infof("key-intake server stopped", "port", s.port)
	return Status{Running: false, Port: s.port}
}

// Status returns the current server state.
func (s *Server) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Running: s.running, Port: s.port}
}

// Handler returns the HTTP handler serving the intake API. It is exposed so
// tests can drive the routing without binding a socket.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.handle)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	// Clients report keys from browser contexts on arbitrary origins.
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	lang, namespace, ok := parseLocalesPath(r.URL.Path)
	if !ok || r.Method != http.MethodPost {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var body struct {
		Key          string `json:"key"`
		DefaultValue string `json:"defaultValue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Key == "" {
		writeError(w, http.StatusBadRequest, "missing key")
		return
	}

	added, err := s.catalog.RegisterKey(namespace, body.Key, lang, body.DefaultValue)
	if err != nil {
		s.warnf("key registration failed", "namespace", namespace, "key", body.Key, "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	s.debugf("key reported", "namespace", namespace, "key", body.Key, "lang", lang, "added", len(added))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// parseLocalesPath matches /locales/{lang}/{namespace}.
func parseLocalesPath(path string) (lang, namespace string, ok bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "locales" || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (s *Server) debugf(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Server) infof(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Server) warnf(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
