package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/phuslu/log"
	"github.com/viant/afs"
	"github.com/viant/mcp"
	protocolclient "github.com/viant/mcp-protocol/client"
	mcpclient "github.com/viant/mcp/client"
	"gopkg.in/yaml.v3"

	"github.com/viant/mcp-tooldesc/internal/logging"
	"github.com/viant/mcp-tooldesc/internal/syncmap"
	"github.com/viant/mcp-tooldesc/mcp/config"
	"github.com/viant/mcp-tooldesc/mcp/matcher"
	"github.com/viant/mcp-tooldesc/mcp/tool"
	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"
)

// Entry is one registered tool.
type Entry struct {
	Name       tool.Name
	Server     string
	Descriptor *descriptor.Tool
}

// Service holds the tools of every connected server.
type Service struct {
	config  *config.Config
	logger  *log.Logger
	handler protocolclient.Handler
	// clients supplied by the caller; connected after the configured ones.
	clients map[string]mcpclient.Interface
	proxies *syncmap.Map[*tool.Proxy]
	entries *syncmap.Map[*Entry]
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets the configuration. When omitted a zero value config is
// assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger sets the logger used for discovery warnings.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClient registers an already connected client under name.
func WithClient(name string, cli mcpclient.Interface) Option {
	return func(s *Service) {
		if s.clients == nil {
			s.clients = map[string]mcpclient.Interface{}
		}
		s.clients[name] = cli
	}
}

// WithClientHandler overrides the handler answering server initiated requests
// on outgoing connections.
func WithClientHandler(handler protocolclient.Handler) Option {
	return func(s *Service) {
		s.handler = handler
	}
}

// New connects to every configured server and indexes their tools.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	s := &Service{
		proxies: syncmap.New[*tool.Proxy](),
		entries: syncmap.New[*Entry](),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.handler == nil {
		s.handler = newClientHandler()
	}
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init(ctx context.Context) error {
	clients, err := s.loadMCPClientConfig(ctx)
	if err != nil {
		return err
	}
	for _, client := range clients {
		policy := s.config.ErrorPolicy(client)
		if err := s.Connect(ctx, client); err != nil {
			if policy == tool.AbortOnError {
				return err
			}
			s.logger.Warn().Str("server", client.Name).Err(err).Msg("skipping server")
		}
	}

	names := make([]string, 0, len(s.clients))
	for name := range s.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.Register(ctx, name, s.clients[name], s.config.ErrorPolicy(nil)); err != nil {
			return err
		}
	}
	return nil
}

// Connect opens a client for the given options and registers its tools.
func (s *Service) Connect(ctx context.Context, client *config.MCPClient) error {
	if client == nil || client.ClientOptions == nil {
		return fmt.Errorf("missing client options")
	}
	client.Init()
	cli, err := mcp.NewClient(s.handler, client.ClientOptions)
	if err != nil {
		return fmt.Errorf("create mcp client %q: %w", client.Name, err)
	}
	return s.Register(ctx, client.Name, cli, s.config.ErrorPolicy(client))
}

// Register discovers the tools of cli and indexes them under server. A server
// name can be registered once and must not contain a dash, which separates it
// from the tool name.
func (s *Service) Register(ctx context.Context, server string, cli mcpclient.Interface, policy tool.ErrorPolicy) error {
	if server == "" || strings.Contains(server, "-") || strings.Contains(server, "_") {
		return fmt.Errorf("invalid server name %q", server)
	}
	if _, ok := s.proxies.Get(server); ok {
		return fmt.Errorf("server %q already registered", server)
	}
	proxy, err := tool.NewProxy(ctx, server, cli,
		tool.WithDescriptorOptions(s.config.DescriptorOptions()...),
		tool.WithErrorPolicy(policy),
		tool.WithLogger(s.logger),
	)
	if err != nil {
		return fmt.Errorf("load tools for %q: %w", server, err)
	}
	if !s.proxies.SetIfAbsent(server, proxy) {
		return fmt.Errorf("server %q already registered", server)
	}
	for _, d := range proxy.Tools() {
		name := tool.NewName(server, d.Name)
		entry := &Entry{Name: name, Server: server, Descriptor: d}
		if !s.entries.SetIfAbsent(name.String(), entry) {
			s.logger.Warn().Str("server", server).Str("tool", name.String()).Msg("skipping tool with conflicting name")
		}
	}
	return nil
}

// Servers returns the registered server names in registration order.
func (s *Service) Servers() []string {
	return s.proxies.Keys()
}

// Tools returns every entry sorted by name.
func (s *Service) Tools() []*Entry {
	entries := s.entries.List()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Lookup returns the entry registered under name.
func (s *Service) Lookup(name string) (*Entry, bool) {
	return s.entries.Get(name)
}

// MatchTools returns the entries whose name satisfies pattern, sorted by name.
func (s *Service) MatchTools(pattern string) []*Entry {
	names := s.entries.Keys()
	sort.Strings(names)
	var result []*Entry
	for _, name := range matcher.Filter(pattern, names) {
		if entry, ok := s.entries.Get(name); ok {
			result = append(result, entry)
		}
	}
	return result
}

// Call invokes a registered tool and returns its text output.
func (s *Service) Call(ctx context.Context, name string, input interface{}) (string, error) {
	entry, ok := s.entries.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %v", tool.ErrUnknownTool, name)
	}
	proxy, ok := s.proxies.Get(entry.Name.Server())
	if !ok {
		return "", fmt.Errorf("%w: %v", tool.ErrUnknownTool, name)
	}
	return proxy.Call(ctx, entry.Name.Tool(), input)
}

// loadMCPClientConfig resolves client options either embedded directly in the
// config or referenced via URL.
func (s *Service) loadMCPClientConfig(ctx context.Context) ([]*config.MCPClient, error) {
	if s.config.MCP == nil {
		return nil, nil
	}

	// Inline options take precedence.
	if len(s.config.MCP.Items) > 0 {
		return s.config.MCP.Items, nil
	}

	if s.config.MCP.URL == "" {
		return nil, nil
	}

	data, err := afs.New().DownloadWithURL(ctx, s.config.MCP.URL)
	if err != nil {
		return nil, fmt.Errorf("download mcp clients config %q: %w", s.config.MCP.URL, err)
	}

	var out []*config.MCPClient
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse mcp clients config %q: %w", s.config.MCP.URL, err)
	}
	for i, client := range out {
		if client == nil || client.ClientOptions == nil {
			return nil, fmt.Errorf("mcp clients config %q: item %d has no client options", s.config.MCP.URL, i)
		}
	}
	return out, nil
}
