// Package web serves the whitelist client's single-page UI.
package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mar-cial/whitelist"
	"github.com/mar-cial/whitelist/web/templates"
)

// DefaultRefreshSeconds is how often the page polls itself while a join
// confirmation is pending.
const DefaultRefreshSeconds = 3

// Handler serves the client's page and its actions for one session.
type Handler struct {
	session        *whitelist.Session
	lggr           *zap.SugaredLogger
	refreshSeconds int
}

// NewHandler creates a new Handler around session. A nil logger disables
// logging.
func NewHandler(session *whitelist.Session, lggr *zap.SugaredLogger) *Handler {
	if lggr == nil {
		lggr = zap.NewNop().Sugar()
	}

	return &Handler{
		session:        session,
		lggr:           lggr,
		refreshSeconds: DefaultRefreshSeconds,
	}
}

// WithRefreshSeconds sets the page's poll interval while a join confirmation
// is pending.
func (h *Handler) WithRefreshSeconds(seconds int) *Handler {
	if seconds > 0 {
		h.refreshSeconds = seconds
	}

	return h
}

// Register mounts the page and action routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/connect", h.handleConnect)
	r.Post("/join", h.handleJoin)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := h.session.Snapshot().View()

	var buf bytes.Buffer
	if err := templates.Page(view, h.refreshSeconds).Render(r.Context(), &buf); err != nil {
		h.lggr.Errorw("render page", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Session operations run detached from the request context: a navigating
// browser must not abort an in-flight attempt. Failures land in the
// session's alerts, so the handlers log and redirect regardless.
func (h *Handler) handleConnect(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Connect(context.WithoutCancel(r.Context())); err != nil {
		h.lggr.Errorw("connect wallet", "err", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	err := h.session.Join(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, whitelist.ErrJoinInFlight):
		h.lggr.Warnw("join already in flight")
	case err != nil:
		h.lggr.Errorw("join whitelist", "err", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// NewRouter wires the client routes plus the health and metrics endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.lggr))
	r.Use(middleware.Recoverer)

	h.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// NewServer builds an HTTP server with sane defaults for this project.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func requestLogger(lggr *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			lggr.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
