package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/eval-service/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/eval-service/internal/setup"
	applogger "github.com/povarna/generative-ai-agents/eval-service/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging; stdout carries the MCP protocol, so logs go to
	// stderr.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = applogger.New(os.Getenv("LOG_LEVEL"))
	logger := log.Logger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close()

	// The worker drives submitted jobs while the MCP server is up.
	go func() {
		_ = deps.Worker.Run(ctx)
	}()

	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "eval-service",
			Version: "1.0.0",
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "submit_evaluation",
		Description: "Submit a batch of questions with expected outcomes for evaluation against a target agent endpoint. Returns a job_id for polling.",
	}, mcpadapter.NewSubmitHandler(deps.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_job_status",
		Description: "Get the status and progress of an evaluation job.",
	}, mcpadapter.NewStatusHandler(deps.Store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_job_results",
		Description: "Get the detailed per-question, per-scorer results of a completed evaluation job.",
	}, mcpadapter.NewResultsHandler(deps.Store))

	return server
}
