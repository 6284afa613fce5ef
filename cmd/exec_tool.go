package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// ExecCmd calls a discovered tool. Arguments can be supplied either inline via
// -i/--input or loaded from a JSON file via --file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" positional-arg-name:"tool" description:"Tool name (server-tool)" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"120"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := registrySingleton()
	if err != nil {
		return err
	}

	var args []byte
	switch {
	case c.Inline != "":
		args = []byte(c.Inline)
	case c.File != "":
		if args, err = readInput(c.File); err != nil {
			return err
		}
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := svc.Call(ctx, c.Name, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func readInput(location string) ([]byte, error) {
	var rdr io.Reader
	if location == "-" {
		rdr = os.Stdin
	} else {
		f, err := os.Open(location)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		rdr = f
	}
	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
