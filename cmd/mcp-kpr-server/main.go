package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/cloud-ru/mcp-kpr-go/internal/cache"
	"github.com/cloud-ru/mcp-kpr-go/internal/config"
	"github.com/cloud-ru/mcp-kpr-go/internal/logging"
	"github.com/cloud-ru/mcp-kpr-go/internal/tools"
	"github.com/cloud-ru/mcp-kpr-go/internal/tracing"
)

const (
	serverName    = "Mortgage and KPR Assistant"
	serverVersion = "1.0.0"
	instructions  = `This provides tools to calculate monthly installment, remaining balance
and total interest paid of a mortgage application (Kredit Pemilikan Rumah / KPR),
for both fixed rate and tiered rate mortgages.`
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp-kpr-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("конфигурация: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.InitTracing(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("трейсинг: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	resultCache, err := cache.New(cfg)
	if err != nil {
		return err
	}
	if closer, ok := resultCache.(io.Closer); ok {
		defer closer.Close()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})
	tools.New(cfg, tracing.Tracer, resultCache, logger).Register(server)

	logger.Info("starting MCP server",
		zap.String("transport", cfg.Transport),
		zap.String("cache", cfg.CacheBackend),
	)

	switch cfg.Transport {
	case config.TransportHTTP:
		return serveHTTP(ctx, cfg, server, logger)
	default:
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	}
}
