package main

import (
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/grapheme"
)

type lengthResult struct {
	Text     string `json:"text" yaml:"text"`
	Clusters int    `json:"clusters" yaml:"clusters"`
	Runes    int    `json:"runes" yaml:"runes"`
	Bytes    int    `json:"bytes" yaml:"bytes"`
	Width    int    `json:"width" yaml:"width"`
}

func newLenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "len <text|->",
		Short: "Count user-perceived characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			s, err := readText(cmd, args[0])
			if err != nil {
				return err
			}

			res := lengthResult{
				Text:     s,
				Clusters: grapheme.Len(s),
				Runes:    utf8.RuneCountInString(s),
				Bytes:    len(s),
				Width:    grapheme.Width(s),
			}
			a.logDone(cmd.Context(), s, started)
			return a.write(cmd, res, writeLine(res.Clusters))
		},
	}
}

type sliceResult struct {
	Text   string `json:"text" yaml:"text"`
	Start  int    `json:"start" yaml:"start"`
	End    *int   `json:"end,omitempty" yaml:"end,omitempty"`
	Result string `json:"result" yaml:"result"`
}

func newSliceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice <text|-> <start> [end]",
		Short: "Extract a range of grapheme clusters",
		Long: `Extract the grapheme clusters in [start, end).

Negative indices count back from the end. Out of range indices are clamped,
and an empty string is printed when start is not before end.`,
		Example: `  textkit slice "héllo wörld" 0 5
  textkit slice "héllo wörld" -5`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			s, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			start, err := parseIndex("start", args[1])
			if err != nil {
				return err
			}

			res := sliceResult{Text: s, Start: start}
			if len(args) == 3 {
				end, err := parseIndex("end", args[2])
				if err != nil {
					return err
				}
				res.End = &end
				res.Result = grapheme.Slice(s, start, end)
			} else {
				res.Result = grapheme.SliceFrom(s, start)
			}

			a.logDone(cmd.Context(), s, started)
			return a.write(cmd, res, writeLine(res.Result))
		},
	}
	// negative indices must not be taken for flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseIndex(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q: must be an integer", name, value)
	}
	return n, nil
}

type reverseResult struct {
	Text   string `json:"text" yaml:"text"`
	Result string `json:"result" yaml:"result"`
}

func newReverseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse <text|->",
		Short: "Reverse the order of grapheme clusters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			s, err := readText(cmd, args[0])
			if err != nil {
				return err
			}

			res := reverseResult{Text: s, Result: grapheme.Reverse(s)}
			a.logDone(cmd.Context(), s, started)
			return a.write(cmd, res, writeLine(res.Result))
		},
	}
}

type segmentResult struct {
	Text     string             `json:"text" yaml:"text"`
	Clusters []grapheme.Cluster `json:"clusters" yaml:"clusters"`
}

func newSegmentCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "segment <text|->",
		Short: "List grapheme clusters with their code point offsets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			s, err := readText(cmd, args[0])
			if err != nil {
				return err
			}

			clusters := grapheme.Segment(s)
			if clusters == nil {
				clusters = []grapheme.Cluster{}
			}
			res := segmentResult{Text: s, Clusters: clusters}
			a.logDone(cmd.Context(), s, started)

			return a.write(cmd, res, func(w io.Writer) error {
				rows := make([][]string, 0, len(clusters))
				for i, c := range clusters {
					rows = append(rows, []string{
						strconv.Itoa(i),
						strconv.Itoa(c.Start),
						strconv.Itoa(c.End),
						strconv.QuoteToGraphic(c.Text),
						strconv.Itoa(grapheme.Width(c.Text)),
					})
				}
				return writeTable(
					[]string{"#", "Start", "End", "Cluster", "Width"},
					rows,
					[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignRight},
				)(w)
			})
		},
	}
}
