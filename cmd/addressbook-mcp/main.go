package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "addressbook/internal/adapters/mcp"
	"addressbook/internal/adapters/memory"
	"addressbook/internal/adapters/sqlite"
	"addressbook/internal/application"
	"addressbook/internal/config"
	"addressbook/internal/ports"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("addressbook-mcp: %v", err)
	}

	dbFlag := flag.String("db", cfg.DBPath, "path to the database")
	memoryFlag := flag.Bool("memory", false, "use a throwaway in-memory address book")
	flag.Parse()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("addressbook-mcp: %v", err)
	}
	defer logger.Sync()

	var store ports.AddressBookStore
	if *memoryFlag {
		store, err = memory.NewStore()
		if err != nil {
			logger.Fatal("failed to create store", zap.Error(err))
		}
	} else {
		s := sqlite.NewStore(logger)
		if err := s.Open(*dbFlag); err != nil {
			logger.Fatal("failed to open database", zap.String("path", *dbFlag), zap.Error(err))
		}
		store = s
	}
	defer store.Close()

	session, err := application.LoadModel(context.Background(), store, application.ModelOptions{
		Logger:       logger,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		logger.Fatal("failed to load address book", zap.Error(err))
	}

	mcpServer := server.NewMCPServer(
		"addressbook-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.NewTools(session, logger).Register(mcpServer)

	logger.Info("serving address book over stdio", zap.Int("persons", len(session.Persons())))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
