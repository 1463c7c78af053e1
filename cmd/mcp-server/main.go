// cmd/mcp-server/main.go — Standalone HTTP MCP server for gopoly
//
// Exposes gopoly polynomial tools as an HTTP endpoint for AI agent frameworks.
//
// Usage:
//   go run ./cmd/mcp-server -port 8080
//   go run ./cmd/mcp-server -config server.yaml
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-logr/stdr"
	"github.com/uber-go/tally"

	"github.com/njchilds90/gopoly/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	port := flag.Int("port", 0, "Port to listen on (overrides the config addr)")
	verbosity := flag.Int("v", 0, "Log verbosity")
	flag.Parse()

	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("mcp-server")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error(err, "loading config")
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Addr = fmt.Sprintf(":%d", *port)
	}

	scope, closer := tally.NewRootScope(tally.ScopeOptions{
		Prefix:   cfg.MetricsPrefix,
		Reporter: logReporter{log: logger.WithName("metrics")},
	}, cfg.MetricsInterval)
	defer closer.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newServer(logger, scope, cfg.MaxBodyBytes).handler(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	logger.Info("gopoly MCP server listening", "addr", cfg.Addr)
	logger.Info("  POST /tool   — execute a tool call")
	logger.Info("  GET  /schema — tool schema for agent registration")
	logger.Info("  GET  /health — health check")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error(err, "server stopped")
		closer.Close()
		os.Exit(1)
	}
}
