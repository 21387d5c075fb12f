package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pdsutils/internal/adapters/filesystem"
	mcpadapter "pdsutils/internal/adapters/mcp"
	"pdsutils/internal/adapters/sqlite"
	"pdsutils/internal/config"
	"pdsutils/internal/logging"
)

func main() {
	rootFlag := flag.String("root", config.Root(), "results root folder")
	dbFlag := flag.String("db", config.HistoryPath(), "scan history database")
	levelFlag := flag.String("log-level", config.LogLevel(), "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(*levelFlag)
	if err != nil {
		log.Fatalf("pdsutils-mcp: %v", err)
	}
	defer logger.Sync()

	history := sqlite.NewHistory()
	if err := history.Open(*dbFlag); err != nil {
		log.Fatalf("pdsutils-mcp: open history: %v", err)
	}
	defer history.Close()

	mcpServer := server.NewMCPServer(
		"pdsutils-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithToolHandlerMiddleware(func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
			return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return next(logging.WithLogger(ctx, logger), req)
			}
		}),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterScanTools(mcpServer, filesystem.NewTableLoader(), history, *rootFlag)
	mcpadapter.RegisterFileTools(mcpServer, filesystem.NewTextFiles())

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pdsutils-mcp: %v", err)
	}
}
