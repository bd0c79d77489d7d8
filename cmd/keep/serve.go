package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/veslov/keep/internal/server"
)

// serveConfig carries the server knobs, loadable from the environment with
// flags taking precedence.
type serveConfig struct {
	Addr     string `env:"KEEP_ADDR"`
	Token    string `env:"KEEP_TOKEN"`
	LogLevel string `env:"KEEP_LOG_LEVEL"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blob over HTTP (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := serveConfig{Addr: "127.0.0.1:4750"}
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("parsing environment: %w", err)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("token") {
			cfg.Token, _ = cmd.Flags().GetString("token")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}

		setupLogging(cfg.LogLevel)

		st, cleanup, err := newStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		handler := server.New(st, server.Config{Token: cfg.Token})
		srv := &http.Server{
			Addr:    cfg.Addr,
			Handler: handler,
		}

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			slog.Info("keep listening", "addr", cfg.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			slog.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the blob over MCP (stdio transport)",
	RunE: func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		setupLogging(logLevel)

		st, cleanup, err := newStore(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		stdioSrv := mcpserver.NewStdioServer(server.NewMCPServer(st))
		if err := stdioSrv.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("mcp server error: %w", err)
		}
		return nil
	},
}

func setupLogging(level string) {
	logLevel := slog.LevelInfo
	if strings.EqualFold(level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:4750", "listen address")
	serveCmd.Flags().String("token", "", "bearer token required on blob routes (empty disables auth)")
	serveCmd.Flags().String("log-level", "info", "log level (info or debug)")
	mcpCmd.Flags().String("log-level", "info", "log level (info or debug)")
}
