package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"litecal/internal/chat"
	"litecal/internal/config"
	"litecal/internal/llm"
	"litecal/internal/logging"
	serverHTTP "litecal/internal/server/http"
)

func main() {
	root := &cobra.Command{
		Use:   "litecal-server",
		Short: "LiteCal chat backend: turns event-shaped messages into calendar files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
		SilenceUsage: true,
	}

	root.Flags().String("host", "", "listen host (default all interfaces)")
	root.Flags().Int("port", 0, "listen port (overrides LITECAL_PORT)")
	root.Flags().String("model", "", "model name (overrides LITECAL_MODEL)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	logger := logging.NewComponentLogger("Main")
	logger.Info("Starting LiteCal server...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	host, _ := cmd.Flags().GetString("host")
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}

	logger.Info("=== Server Configuration ===")
	logger.Info("Model: %s", cfg.Model)
	logger.Info("Port: %d", cfg.Port)
	logger.Info("Request timeout: %s", cfg.RequestTimeout)
	logger.Info("Environment: %s", cfg.Environment)
	logger.Info("===========================")

	client := llm.NewGeminiClient(llm.Config{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	})

	server := serverHTTP.NewServer(chat.New(client), serverHTTP.ServerConfig{
		Host:        host,
		Port:        cfg.Port,
		Environment: cfg.Environment,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Received %s, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
