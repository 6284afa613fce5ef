package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/viant/mcp-tooldesc/mcp/tool/descriptor"
)

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTool renders a descriptor as aligned parameter tables.
func printTool(w io.Writer, name string, d *descriptor.Tool) error {
	fmt.Fprintf(w, "Name : %s\n", name)
	fmt.Fprintf(w, "Desc : %s\n", d.Description)
	sections := []struct {
		title  string
		params []*descriptor.Parameter
	}{
		{"Required", d.Required},
		{"Optional", d.Optional},
	}
	for _, section := range sections {
		if len(section.params) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", section.title)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, param := range section.params {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", param.Name, param.Type, param.Description)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
