package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/phuslu/log"
	"github.com/viant/mcp-tooldesc/internal/conv"
	"github.com/viant/mcp-tooldesc/internal/logging"
	"github.com/viant/mcp-tooldesc/mcp/tool/conversion"
	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"
)

var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrMissingArgument = errors.New("missing required argument")
	ErrUnknownArgument = errors.New("unknown argument")
	ErrInvalidEnum     = errors.New("value not in enum")
	ErrToolFailed      = errors.New("tool call failed")
)

// ErrorPolicy decides what happens to a tool whose schema cannot be converted.
type ErrorPolicy string

const (
	// SkipOnError logs the defect and leaves the tool out.
	SkipOnError ErrorPolicy = "skip"
	// AbortOnError fails the whole discovery.
	AbortOnError ErrorPolicy = "abort"
)

// ParseErrorPolicy parses "skip" (default when empty) or "abort".
func ParseErrorPolicy(value string) (ErrorPolicy, error) {
	switch ErrorPolicy(strings.ToLower(value)) {
	case "", SkipOnError:
		return SkipOnError, nil
	case AbortOnError:
		return AbortOnError, nil
	}
	return SkipOnError, fmt.Errorf("invalid error policy: %q", value)
}

// --------------------- Remote tool service --------------------- //

// Proxy exposes the tools of one remote MCP server as descriptors and routes
// calls to it. The set of tools is discovered once by NewProxy.
type Proxy struct {
	name        string
	client      mcpclient.Interface
	tools       []*descriptor.Tool
	index       map[string]*descriptor.Tool
	options     []descriptor.Option
	errorPolicy ErrorPolicy
	logger      *log.Logger
}

// ProxyOption customises a Proxy.
type ProxyOption func(*Proxy)

// WithDescriptorOptions sets the resolver options used for every tool.
func WithDescriptorOptions(opts ...descriptor.Option) ProxyOption {
	return func(p *Proxy) {
		p.options = append(p.options, opts...)
	}
}

// WithErrorPolicy sets the schema error policy.
func WithErrorPolicy(policy ErrorPolicy) ProxyOption {
	return func(p *Proxy) {
		p.errorPolicy = policy
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) ProxyOption {
	return func(p *Proxy) {
		p.logger = logger
	}
}

// NewProxy lists every tool of the remote server (following pagination) and
// converts their input schemas to descriptors.
func NewProxy(ctx context.Context, name string, cli mcpclient.Interface, opts ...ProxyOption) (*Proxy, error) {
	p := &Proxy{name: name, client: cli, errorPolicy: SkipOnError, index: map[string]*descriptor.Tool{}}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.Discard()
	}

	tools := make([]mcpschema.Tool, 0)
	var cursor *string
	for {
		res, err := cli.ListTools(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to list tools of %q: %w", name, err)
		}
		tools = append(tools, res.Tools...)
		if res.NextCursor == nil || *res.NextCursor == "" {
			break
		}
		cursor = res.NextCursor
	}

	skip := p.errorPolicy != AbortOnError
	descriptors, err := conversion.ParseTools(tools, skip, func(tool mcpschema.Tool, err error) {
		p.logger.Warn().Str("server", name).Str("tool", tool.Name).Err(err).Msg("skipping tool with unsupported schema")
	}, p.options...)
	if err != nil {
		return nil, fmt.Errorf("server %q: %w", name, err)
	}
	for _, d := range descriptors {
		if _, dup := p.index[d.Name]; dup {
			p.logger.Warn().Str("server", name).Str("tool", d.Name).Msg("skipping duplicate tool")
			continue
		}
		p.index[d.Name] = d
		p.tools = append(p.tools, d)
	}
	p.logger.Debug().Str("server", name).Int("tools", len(p.tools)).Msg("discovered tools")
	return p, nil
}

// Name returns the server name.
func (p *Proxy) Name() string {
	return p.name
}

// Tools returns descriptors in discovery order.
func (p *Proxy) Tools() []*descriptor.Tool {
	return p.tools
}

// Lookup returns the descriptor of a remote tool.
func (p *Proxy) Lookup(name string) (*descriptor.Tool, bool) {
	d, ok := p.index[name]
	return d, ok
}

// Call validates input against the tool descriptor, coerces it to the declared
// parameter shape and invokes the remote tool. Input may be a map, a struct or
// JSON text. The text content of the result is returned.
func (p *Proxy) Call(ctx context.Context, name string, input interface{}) (string, error) {
	d, ok := p.index[name]
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownTool, name)
	}
	args, err := conv.ToMap(input)
	if err != nil {
		return "", err
	}
	if err := CheckArguments(d, args); err != nil {
		return "", err
	}
	if args, err = conversion.MarshalIn(p.name, d, args); err != nil {
		return "", err
	}

	params := &mcpschema.CallToolRequestParams{
		Name:      d.Name,
		Arguments: mcpschema.CallToolRequestParamsArguments(args),
	}
	res, err := p.client.CallTool(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call %q on %q: %w", name, p.name, err)
	}
	text := resultText(res)
	if conv.Dereference[bool](res.IsError) {
		return "", fmt.Errorf("%w: %v: %v", ErrToolFailed, name, text)
	}
	return text, nil
}

// CheckArguments reports missing required and undeclared arguments and enum
// values, at any nesting level, outside their declared set.
func CheckArguments(d *descriptor.Tool, args map[string]interface{}) error {
	for _, param := range d.Required {
		if value, ok := args[param.Name]; !ok || value == nil {
			return fmt.Errorf("%w: %v.%v", ErrMissingArgument, d.Name, param.Name)
		}
	}
	for key, value := range args {
		param, _ := d.Parameter(key)
		if param == nil {
			return fmt.Errorf("%w: %v.%v", ErrUnknownArgument, d.Name, key)
		}
		if err := checkEnums(d.Name+"."+key, param.Type, value); err != nil {
			return err
		}
	}
	return nil
}

// checkEnums walks JSON shaped values; values of another shape are left to
// conversion.Marshal.
func checkEnums(path string, t descriptor.Type, value interface{}) error {
	switch actual := t.(type) {
	case *descriptor.Enum:
		text, ok := value.(string)
		if !ok {
			return nil
		}
		for _, candidate := range actual.Values {
			if candidate == text {
				return nil
			}
		}
		return fmt.Errorf("%w: %v=%q, expected one of [%v]", ErrInvalidEnum, path, text, strings.Join(actual.Values, ", "))
	case *descriptor.List:
		items, ok := value.([]interface{})
		if !ok {
			return nil
		}
		for i, item := range items {
			if err := checkEnums(fmt.Sprintf("%v[%d]", path, i), actual.Items, item); err != nil {
				return err
			}
		}
	case *descriptor.Object:
		fields, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		for key, item := range fields {
			itemType := actual.AdditionalPropertiesType
			if property := actual.Property(key); property != nil {
				itemType = property.Type
			}
			if itemType == nil {
				continue
			}
			if err := checkEnums(path+"."+key, itemType, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func resultText(res *mcpschema.CallToolResult) string {
	if len(res.Content) == 1 && res.Content[0].Type == "text" {
		return res.Content[0].Text
	}
	var texts []string
	for _, elem := range res.Content {
		if elem.Type == "text" || elem.Type == "" {
			texts = append(texts, elem.Text)
		}
	}
	if len(texts) == len(res.Content) {
		return strings.Join(texts, "\n")
	}
	data, _ := json.Marshal(res.Content)
	return string(data)
}
