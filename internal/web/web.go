package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dsipanel/internal/config"
	appLog "dsipanel/internal/log"
	"dsipanel/internal/model"
	"dsipanel/internal/panel"
	"dsipanel/internal/variant"
)

// Panel is the lifecycle surface the API drives. *panel.Guard implements it.
type Panel interface {
	Prepare() error
	Unprepare() error
	Status() model.Status
}

// Server provides the HTTP API for panel status and manual power control.
type Server struct {
	cfg   *config.Config
	panel Panel
	mux   *http.ServeMux
}

// NewServer constructs a new Server.
func NewServer(cfg *config.Config, p Panel) *Server {
	s := &Server{
		cfg:   cfg,
		panel: p,
		mux:   http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

// basicAuthEnabled reports whether HTTP Basic Auth is configured.
func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	return s.cfg.BasicAuth.Username != "" && s.cfg.BasicAuth.Password != ""
}

// basicAuthMiddleware wraps all handlers except /health with HTTP Basic Auth.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="panelctl", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Run serves the API on cfg.Listen until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+s.cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/panel", s.handlePanel)
	s.mux.HandleFunc("POST /api/panel/prepare", s.lifecycle("prepare", s.panel.Prepare))
	s.mux.HandleFunc("POST /api/panel/unprepare", s.lifecycle("unprepare", s.panel.Unprepare))
	s.mux.HandleFunc("GET /api/variants", s.handleVariants)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handlePanel(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.panel.Status())
}

// lifecycleResponse is the JSON response shape for prepare/unprepare.
type lifecycleResponse struct {
	Status model.Status `json:"status"`
	Error  string       `json:"error,omitempty"`
}

// lifecycle runs fn and answers with the resulting status.
//
//   - 200: fn succeeded
//   - 409: the panel is in a state that does not accept the operation
//   - 502: the panel or its supply failed during the operation
func (s *Server) lifecycle(op string, fn func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appLog.Info("api panel request", "op", op, "remote", r.RemoteAddr)
		err := fn()
		resp := lifecycleResponse{Status: s.panel.Status()}
		if err == nil {
			writeJSON(w, http.StatusOK, resp)
			return
		}
		resp.Error = err.Error()
		code := http.StatusBadGateway
		if errors.Is(err, panel.ErrInvalidState) {
			code = http.StatusConflict
		}
		writeJSON(w, code, resp)
	}
}

// variantsResponse is the JSON response shape for /api/variants.
type variantsResponse struct {
	Variants []model.Panel `json:"variants"`
}

func (s *Server) handleVariants(w http.ResponseWriter, _ *http.Request) {
	resp := variantsResponse{Variants: []model.Panel{}}
	for _, id := range variant.IDs() {
		cfg, _ := variant.Lookup(id)
		resp.Variants = append(resp.Variants, panel.Describe(cfg))
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}
