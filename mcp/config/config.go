package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"

	"github.com/viant/mcp-tooldesc/internal/logging"
	"github.com/viant/mcp-tooldesc/mcp/tool"
	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"
)

type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

type Config struct {
	Server     *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Descriptor *Descriptor        `yaml:"descriptor,omitempty" json:"descriptor,omitempty"`
	// OnError is the default schema error policy: skip or abort.
	OnError string             `yaml:"onError,omitempty" json:"onError,omitempty"`
	Log     logging.Config     `yaml:"log,omitempty" json:"log,omitempty"`
	MCP     *Group[*MCPClient] `yaml:"mcp,omitempty" json:"mcp,omitempty"`
}

// Descriptor controls schema resolution.
type Descriptor struct {
	MaxDepth          *int   `yaml:"maxDepth,omitempty" json:"maxDepth,omitempty"`
	DescriptionSource string `yaml:"descriptionSource,omitempty" json:"descriptionSource,omitempty"`
}

// MCPClient augments mcp.ClientOptions with per server overrides.
type MCPClient struct {
	*mcp.ClientOptions `yaml:",inline" json:",inline"`
	// OnError overrides Config.OnError for this server.
	OnError string `yaml:"onError,omitempty" json:"onError,omitempty"`
}

// Load reads a YAML (or JSON) configuration from a local path or any URL
// supported by afs.
func Load(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Descriptor != nil {
		if c.Descriptor.MaxDepth != nil && *c.Descriptor.MaxDepth < 0 {
			return fmt.Errorf("descriptor.maxDepth must not be negative: %d", *c.Descriptor.MaxDepth)
		}
		if _, err := descriptor.ParseDescriptionSource(c.Descriptor.DescriptionSource); err != nil {
			return fmt.Errorf("descriptor.descriptionSource: %w", err)
		}
	}
	if _, err := tool.ParseErrorPolicy(c.OnError); err != nil {
		return fmt.Errorf("onError: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.MCP == nil {
		return nil
	}
	names := map[string]bool{}
	for i, item := range c.MCP.Items {
		if item == nil || item.ClientOptions == nil {
			return fmt.Errorf("mcp.items[%d]: missing client options", i)
		}
		if _, err := tool.ParseErrorPolicy(item.OnError); err != nil {
			return fmt.Errorf("mcp.items[%d].onError: %w", i, err)
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		if names[name] {
			return fmt.Errorf("mcp.items[%d]: duplicate server name %q", i, name)
		}
		names[name] = true
	}
	return nil
}

// DescriptorOptions maps the descriptor section to resolver options.
func (c *Config) DescriptorOptions() []descriptor.Option {
	var result []descriptor.Option
	if c == nil || c.Descriptor == nil {
		return result
	}
	if c.Descriptor.MaxDepth != nil {
		result = append(result, descriptor.WithMaxDepth(*c.Descriptor.MaxDepth))
	}
	if source, err := descriptor.ParseDescriptionSource(c.Descriptor.DescriptionSource); err == nil {
		result = append(result, descriptor.WithDescriptionSource(source))
	}
	return result
}

// ErrorPolicy returns the effective policy for the named client.
func (c *Config) ErrorPolicy(client *MCPClient) tool.ErrorPolicy {
	if client != nil && client.OnError != "" {
		if policy, err := tool.ParseErrorPolicy(client.OnError); err == nil {
			return policy
		}
	}
	if c == nil {
		return tool.SkipOnError
	}
	policy, _ := tool.ParseErrorPolicy(c.OnError)
	return policy
}
