package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler hosts the streamable MCP endpoint and the health probe on a
// chi.Router. It is only used with the http transport.
type Handler struct {
	mcp    http.Handler
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. mcp serves the
// MCP protocol; it is mounted at /mcp.
func NewHandler(mcp http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{mcp: mcp, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/mcp", h.mcp)
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
