package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/mcp"

	"github.com/viant/mcp-tooldesc/mcp/demo"
)

// ServeCmd launches the demo MCP server. The server configuration (port,
// transport, auth) is taken from the server section of the config file.
type ServeCmd struct{}

func (c *ServeCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	mcpServer, err := mcp.NewServer(demo.NewHandler, cfg.Server)
	if err != nil {
		return err
	}

	httpSrv := mcpServer.HTTP(context.Background(), "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server")
		}
	}()

	logger.Info().Str("addr", httpSrv.Addr).Msg("MCP server listening")

	// Wait for SIGINT/SIGTERM
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("shutting down")
	return httpSrv.Close()
}
