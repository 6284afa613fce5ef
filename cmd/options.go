package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"service configuration YAML/JSON path or URL"`

	Parse     *ParseCmd     `command:"parse"      description:"Convert a tool document into a descriptor"`
	ListTools *ListToolsCmd `command:"list-tools" description:"List tools of the configured MCP servers"`
	Tool      *ToolCmd      `command:"tool"       description:"Show the descriptor of one tool"`
	Exec      *ExecCmd      `command:"exec"       description:"Call a tool"`
	Serve     *ServeCmd     `command:"serve"      description:"Start the demo MCP server"`
}

// Init instantiates the sub-command referenced by name so that go-flags can
// populate its fields.
func (o *Options) Init(name string) {
	switch name {
	case "parse":
		o.Parse = &ParseCmd{}
	case "list-tools":
		o.ListTools = &ListToolsCmd{}
	case "tool":
		o.Tool = &ToolCmd{}
	case "exec":
		o.Exec = &ExecCmd{}
	case "serve":
		o.Serve = &ServeCmd{}
	}
}
