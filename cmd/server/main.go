// Package main is the entry point for the spotify-mcp server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spotify-tools/spotify-mcp/internal/audit"
	"github.com/spotify-tools/spotify-mcp/internal/auth"
	"github.com/spotify-tools/spotify-mcp/internal/config"
	"github.com/spotify-tools/spotify-mcp/internal/library"
	"github.com/spotify-tools/spotify-mcp/internal/logging"
	"github.com/spotify-tools/spotify-mcp/internal/pathfinder"
	"github.com/spotify-tools/spotify-mcp/internal/session"
	"github.com/spotify-tools/spotify-mcp/internal/tools"
)

const defaultConfigPath = "/config/config.yaml"

func main() {
	// Best-effort .env load for local development.
	_ = godotenv.Load()

	logger := logging.NewLoggerWithService("spotify-mcp")

	cfg := loadConfig(logger)
	config.ApplyEnvOverrides(cfg)

	tokenBefore := cfg.Server.AuthToken
	token, err := config.EnsureAuthToken(cfg)
	if err != nil {
		logger.WithError(err).Warn("could not generate auth token, running without authentication")
	} else if tokenBefore == "" {
		logger.WithField("token", token).Info("generated auth token (set SPOTIFY_MCP_AUTH_TOKEN to persist)")
	}

	// Open audit log writer if enabled.
	var auditLog *audit.Logger
	if cfg.Audit.Enabled {
		f, err := os.OpenFile(cfg.Audit.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logger.WithError(err).WithField("path", cfg.Audit.LogPath).Warn("could not open audit log, audit logging disabled")
		} else {
			auditLog = audit.NewLogger(f)
			defer f.Close()
		}
	}

	// Build the pathfinder client and library manager.
	sess := session.New(cfg.Spotify.AccessToken, cfg.Spotify.ClientToken)
	client, err := pathfinder.NewClient(cfg.Spotify, sess, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create pathfinder client")
	}
	libraryMgr := library.NewManager(client)

	// Build MCP server and register tools.
	mcpServer := server.NewMCPServer(
		"spotify-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	tools.RegisterAll(mcpServer, library.LibraryTools(libraryMgr, auditLog))

	// Build Streamable HTTP server and wrap with auth middleware.
	httpHandler := server.NewStreamableHTTPServer(mcpServer)
	authMiddleware := auth.NewAuthMiddleware(cfg.Server.AuthToken)
	wrappedHandler := authMiddleware(httpHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           wrappedHandler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.WithField("addr", addr).Info("spotify-mcp listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server error")
		}
	}()

	<-stop
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("graceful shutdown error")
	}
	logger.Info("server stopped")
}

// loadConfig attempts to read the config file from the path specified by
// SPOTIFY_MCP_CONFIG_PATH or the default /config/config.yaml. If the file
// cannot be read, DefaultConfig is returned.
func loadConfig(logger logging.Logger) *config.Config {
	path := os.Getenv("SPOTIFY_MCP_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Info("could not load config, using defaults")
		return config.DefaultConfig()
	}

	logger.WithField("path", path).Info("loaded config")
	return cfg
}
