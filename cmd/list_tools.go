package cmd

import (
	"fmt"
	"text/tabwriter"
)

// ListToolsCmd prints every discovered tool in `server-tool` form.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"name pattern: prefix, glob or comma separated list" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := registrySingleton()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, entry := range svc.MatchTools(c.Pattern) {
		fmt.Fprintf(tw, "%s\t%s\n", entry.Name, entry.Descriptor.Description)
	}
	return tw.Flush()
}
