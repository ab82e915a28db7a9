package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/textkit/pkg/config"
	"github.com/dmitrymomot/textkit/pkg/logger"
)

// Config is read from the environment once per process.
type Config struct {
	Output    string `env:"TEXTKIT_OUTPUT" envDefault:"text"`
	LogLevel  string `env:"TEXTKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"TEXTKIT_LOG_FORMAT"`
	Locale    string `env:"TEXTKIT_LOCALE" envDefault:"en"`
}

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func parseOutput(name string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(name)); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be text, json or yaml", name)
	}
}

// logFormat returns the configured format, falling back to text when w is a
// terminal and JSON otherwise.
func logFormat(configured string, w io.Writer) (logger.Format, error) {
	if configured != "" {
		return logger.ParseFormat(configured)
	}
	if isTerminal(w) {
		return logger.FormatText, nil
	}
	return logger.FormatJSON, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
