package mcpadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"

	"meta-ads-mcp/internal/core/domain"
	"meta-ads-mcp/internal/core/port"
)

// ServerName is the name the MCP server announces to clients.
const ServerName = "meta-ads-mcp-server"

// Handler is the inbound MCP adapter. It registers one tool per use case
// operation on an mcp-go server and translates tool arguments and results.
type Handler struct {
	audiences   port.AudienceUseCase
	campaigns   port.CampaignUseCase
	invocations port.InvocationRepository
	logger      *slog.Logger
	server      *server.MCPServer
}

// Option configures a Handler.
type Option func(*Handler)

// WithInvocations records every tool call in repo.
func WithInvocations(repo port.InvocationRepository) Option {
	return func(h *Handler) {
		h.invocations = repo
	}
}

// NewHandler creates a handler with both tools registered.
func NewHandler(audiences port.AudienceUseCase, campaigns port.CampaignUseCase, logger *slog.Logger, version string, opts ...Option) *Handler {
	h := &Handler{audiences: audiences, campaigns: campaigns, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(createCustomAudienceTool(), h.handleCreateCustomAudience)
	s.AddTool(createAdCampaignTool(), h.handleCreateAdCampaign)
	h.server = s
	return h
}

// Server returns the underlying MCP server.
func (h *Handler) Server() *server.MCPServer {
	return h.server
}

// finish logs the outcome of a tool call and stores it when an invocation
// repository is configured. Storage errors never reach the caller.
func (h *Handler) finish(ctx context.Context, tool, accountID string, started time.Time, err error) {
	inv := domain.Invocation{
		ID:        uuid.New(),
		Tool:      tool,
		AccountID: accountID,
		Outcome:   domain.OutcomeOK,
		Duration:  time.Since(started),
		CreatedAt: started.UTC(),
	}
	if err != nil {
		inv.Outcome = domain.OutcomeError
		inv.ErrorKind = domain.ErrorKind(err)
		inv.ErrorMessage = err.Error()
		h.logger.Error("tool call failed",
			slog.String("tool", tool),
			slog.String("kind", inv.ErrorKind),
			slog.Duration("duration", inv.Duration),
			slog.Any("error", err),
		)
	} else {
		h.logger.Info("tool call", slog.String("tool", tool), slog.Duration("duration", inv.Duration))
	}

	if h.invocations == nil {
		return
	}
	if err = h.invocations.Save(context.WithoutCancel(ctx), inv); err != nil {
		h.logger.Warn("save invocation", slog.String("tool", tool), slog.Any("error", err))
	}
}
