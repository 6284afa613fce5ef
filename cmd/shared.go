package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/phuslu/log"

	"github.com/viant/mcp-tooldesc/internal/logging"
	"github.com/viant/mcp-tooldesc/mcp/config"
	"github.com/viant/mcp-tooldesc/mcp/registry"
)

var (
	cfgPath string

	// stdout receives command output.
	stdout io.Writer = os.Stdout

	cfgOnce sync.Once
	cfgInst *config.Config
	cfgErr  error

	svcOnce sync.Once
	svcInst *registry.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// singletons can be created lazily by whichever sub-command is executed.
func setConfigPath(p string) { cfgPath = p }

// configSingleton loads the configuration once; without -f/--config a zero
// value config is used.
func configSingleton() (*config.Config, error) {
	cfgOnce.Do(func() {
		if cfgPath == "" {
			cfgInst = &config.Config{}
			return
		}
		cfgInst, cfgErr = config.Load(context.Background(), cfgPath)
		if cfgErr == nil && os.Getenv("TOOLDESC_DEBUG_CONFIG") == "1" {
			_ = json.NewEncoder(os.Stderr).Encode(cfgInst)
		}
	})
	return cfgInst, cfgErr
}

func newLogger(cfg *config.Config) *log.Logger {
	return logging.New(cfg.Log, os.Stderr)
}

// registrySingleton connects to the configured servers only once per CLI
// invocation.
func registrySingleton() (*registry.Service, error) {
	svcOnce.Do(func() {
		cfg, err := configSingleton()
		if err != nil {
			svcErr = err
			return
		}
		svcInst, svcErr = registry.New(context.Background(),
			registry.WithConfig(cfg),
			registry.WithLogger(newLogger(cfg)),
		)
	})
	return svcInst, svcErr
}
