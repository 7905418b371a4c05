package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/greghughespdx/brain-mcp-server/internal/config"
	"github.com/greghughespdx/brain-mcp-server/internal/logging"
	"github.com/greghughespdx/brain-mcp-server/internal/mcp"
	"github.com/greghughespdx/brain-mcp-server/internal/oauth"
)

func main() {
	root := &cobra.Command{
		Use:   "brain-mcp-server",
		Short: "MCP server for the Brain note service",
		RunE:  run,
	}

	root.PersistentFlags().String("api-base", "", "Brain API base URL")
	root.PersistentFlags().String("api-timeout", "", "Brain API request timeout")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP host")
	root.PersistentFlags().Int("port", 8084, "HTTP port")
	root.PersistentFlags().String("transport", "stdio", "MCP transport (stdio, http, sse)")
	root.PersistentFlags().Bool("oauth", true, "Serve the OAuth discovery surface (network transports only)")
	root.PersistentFlags().String("public-url", "", "Externally visible base URL for discovery documents")
	root.PersistentFlags().String("log-level", "info", "Log level")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// stdio transport owns stdout for JSON-RPC
	log.SetOutput(os.Stderr)

	srv := mcp.New(mcp.DefaultConfig())

	if config.Transport() == config.TransportStdio {
		log.Println("starting brain-mcp-server with stdio transport")
		return server.ServeStdio(srv.MCP)
	}
	return serveNetwork(srv)
}

func serveNetwork(srv *mcp.Server) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())

	mux := http.NewServeMux()
	switch config.Transport() {
	case config.TransportSSE:
		mux.Handle("/", server.NewSSEServer(srv.MCP))
	default:
		mux.Handle("/mcp/jsonrpc", srv.Handler)
	}

	if config.OAuthEnabled() {
		baseLogger := logging.New(logging.DefaultLogger(config.LogLevel()))
		oauth.NewServer(config.PublicBaseURL(), baseLogger).Register(mux)
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("brain-mcp-server listening on %s (%s transport)", addr, config.Transport())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
