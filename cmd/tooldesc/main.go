package main

import (
	"os"

	"github.com/viant/mcp-tooldesc/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
