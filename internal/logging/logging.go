// Package logging builds the structured loggers used across the CLI and the
// tool registry.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phuslu/log"
)

// Config controls log output.
type Config struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // console or json
}

var levels = map[string]bool{"": true, "trace": true, "debug": true, "info": true, "warn": true, "error": true}

// Validate checks level and format names.
func (c *Config) Validate() error {
	if !levels[strings.ToLower(c.Level)] {
		return fmt.Errorf("invalid log level: %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "console", "json":
		return nil
	}
	return fmt.Errorf("invalid log format: %q", c.Format)
}

// New creates a logger writing to w, stderr when w is nil. The level defaults
// to info.
func New(cfg Config, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger := &log.Logger{
		Level:      log.ParseLevel(strings.ToLower(level)),
		TimeFormat: "15:04:05",
	}
	if strings.EqualFold(cfg.Format, "json") {
		logger.TimeFormat = ""
		logger.Writer = &log.IOWriter{Writer: w}
	} else {
		logger.Writer = &log.ConsoleWriter{Writer: w}
	}
	return logger
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return &log.Logger{Level: log.ErrorLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}
