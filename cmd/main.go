package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"meta-ads-mcp/internal/adapter/credential"
	"meta-ads-mcp/internal/adapter/graph"
	httpadapter "meta-ads-mcp/internal/adapter/http"
	mcpadapter "meta-ads-mcp/internal/adapter/mcp"
	"meta-ads-mcp/internal/adapter/postgres"
	"meta-ads-mcp/internal/adapter/usecase"
	"meta-ads-mcp/internal/config"
	"meta-ads-mcp/internal/config/configs"
	"meta-ads-mcp/internal/db"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 5 * time.Second

// main is the entry point of the meta-ads MCP server. The access token
// comes from the --fb-token flag; everything else is read from the
// environment.
func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta-ads-mcp --fb-token <token>",
		Short: "MCP server creating custom audiences and ad campaigns through the Graph API",
		Long: `meta-ads-mcp exposes two MCP tools backed by the Graph API:

  create_custom_audience  create an audience and upload hashed phone numbers
  create_ad_campaign      create a campaign, an ad set and an ad

Tools are served over stdio unless MCP_TRANSPORT=http.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags())
		},
	}
	credential.RegisterFlag(cmd.Flags())
	return cmd
}

// run loads configuration, resolves the credential, wires the adapters and
// serves tools until the transport ends or a termination signal arrives.
func run(ctx context.Context, flags *pflag.FlagSet) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return err
	}

	// stdout belongs to the stdio transport.
	logger := cfg.Log.New(os.Stderr).With(slog.String("env", cfg.Env))

	creds := credential.NewFlagProvider(flags)
	token, err := creds.Resolve()
	if err != nil {
		logger.Error("credential error", slog.Any("error", err))
		return err
	}
	logger.Info("using Facebook token from command line arguments")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient := graph.NewClient(cfg.Graph, logger)
	if cfg.Graph.VerifyToken {
		me, err := graphClient.Me(ctx, token)
		if err != nil {
			logger.Error("token verification failed", slog.Any("error", err))
			return err
		}
		logger.Info("token verified", slog.String("id", me.ID()), slog.Any("name", me["name"]))
	}

	var opts []mcpadapter.Option
	if cfg.Psql.Enabled {
		pool, err := db.NewPostgresPool(ctx, cfg.Psql, logger)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return err
		}
		defer pool.Close()
		opts = append(opts, mcpadapter.WithInvocations(postgres.NewInvocationRepository(pool)))
	}

	handler := mcpadapter.NewHandler(
		usecase.NewAudienceUseCase(graphClient, creds, logger),
		usecase.NewCampaignUseCase(graphClient, creds, logger),
		logger,
		version,
		opts...,
	)

	switch cfg.MCP.NormalizedTransport() {
	case configs.TransportHTTP:
		return serveHTTP(ctx, cfg.HTTP, handler.Server(), logger)
	default:
		return serveStdio(ctx, handler.Server(), logger)
	}
}

func serveStdio(ctx context.Context, s *server.MCPServer, logger *slog.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	logger.Info("serving tools over stdio")
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", slog.Any("error", err))
		return err
	}
	logger.Info("stdio server stopped")
	return nil
}

func serveHTTP(ctx context.Context, cfg configs.HTTP, s *server.MCPServer, logger *slog.Logger) error {
	handler := httpadapter.NewHandler(server.NewStreamableHTTPServer(s), logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
