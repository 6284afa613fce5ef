package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/viant/afs"

	"github.com/viant/mcp-tooldesc/mcp/tool/conversion"
)

// ParseCmd converts a local or remote MCP tool document (name, description
// and inputSchema) into a descriptor without connecting to any server.
type ParseCmd struct {
	Source string `short:"s" long:"source" description:"tool document path or URL (use - for stdin)" required:"yes"`
	JSON   bool   `long:"json" description:"print result as JSON"`
}

func (c *ParseCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	data, err := c.read(context.Background())
	if err != nil {
		return err
	}
	d, err := conversion.ParseToolJSON(data, cfg.DescriptorOptions()...)
	if err != nil {
		return err
	}
	if c.JSON {
		return printJSON(stdout, d)
	}
	return printTool(stdout, d.Name, d)
}

func (c *ParseCmd) read(ctx context.Context) ([]byte, error) {
	if c.Source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}
	data, err := afs.New().DownloadWithURL(ctx, c.Source)
	if err != nil {
		return nil, fmt.Errorf("download tool document %q: %w", c.Source, err)
	}
	return data, nil
}
