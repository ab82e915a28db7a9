package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// readText returns arg, or the whole of stdin when arg is "-". A single
// trailing line break from stdin is dropped.
func readText(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := string(data)
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		return t, nil
	}
	return strings.TrimSuffix(s, "\n"), nil
}
