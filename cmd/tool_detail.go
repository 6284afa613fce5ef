package cmd

import (
	"fmt"
)

// ToolCmd prints the descriptor of a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (server-tool)" positional-arg-name:"name" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := registrySingleton()
	if err != nil {
		return err
	}

	entry, ok := svc.Lookup(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}

	if c.JSON {
		return printJSON(stdout, struct {
			Name       string      `json:"name"`
			Server     string      `json:"server"`
			Descriptor interface{} `json:"descriptor"`
		}{entry.Name.String(), entry.Server, entry.Descriptor})
	}
	fmt.Fprintf(stdout, "Server : %s\n", entry.Server)
	return printTool(stdout, entry.Name.String(), entry.Descriptor)
}
