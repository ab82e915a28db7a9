package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/similarity"
)

// errNoMatch is returned by closest when no candidate reaches the threshold.
var errNoMatch = errors.New("no candidate reaches the threshold")

type distanceResult struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Distance int    `json:"distance" yaml:"distance"`
}

func newDistanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Levenshtein edit distance between two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			res := distanceResult{A: args[0], B: args[1], Distance: similarity.Distance(args[0], args[1])}
			a.logDone(cmd.Context(), args[0]+args[1], started)
			return a.write(cmd, res, writeLine(res.Distance))
		},
	}
}

type scoreResult struct {
	A     string  `json:"a" yaml:"a"`
	B     string  `json:"b" yaml:"b"`
	Score float64 `json:"score" yaml:"score"`
}

func newScoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score <a> <b>",
		Short: "Similarity score between 0 and 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			res := scoreResult{A: args[0], B: args[1], Score: similarity.Score(args[0], args[1])}
			a.logDone(cmd.Context(), args[0]+args[1], started)
			return a.write(cmd, res, writeLine(formatScore(res.Score)))
		},
	}
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

type closestFlags struct {
	threshold float64
	fold      bool
	normalize bool
	all       bool
}

func newClosestCommand(a *app) *cobra.Command {
	var flags closestFlags

	cmd := &cobra.Command{
		Use:   "closest <target> <candidate>...",
		Short: "Pick the candidate most similar to target",
		Example: `  textkit closest colr cool colour color
  textkit closest --fold --all COLOR color colour`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			target, candidates := args[0], args[1:]

			opts := []similarity.Option{similarity.WithThreshold(flags.threshold)}
			if flags.fold {
				opts = append(opts, similarity.WithFold())
			}
			if flags.normalize {
				opts = append(opts, similarity.WithNormalization())
			}

			if flags.all {
				matches := similarity.Rank(target, candidates, opts...)
				a.logDone(cmd.Context(), target, started)
				return a.write(cmd, matches, func(w io.Writer) error {
					rows := make([][]string, 0, len(matches))
					for _, m := range matches {
						rows = append(rows, []string{
							m.Value,
							formatScore(m.Score),
							strconv.Itoa(m.Distance),
							strconv.Itoa(m.Index),
						})
					}
					return writeTable(
						[]string{"Candidate", "Score", "Distance", "Index"},
						rows,
						[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
					)(w)
				})
			}

			m, ok := similarity.Closest(target, candidates, opts...)
			a.logDone(cmd.Context(), target, started)
			if !ok {
				return fmt.Errorf("%w %s", errNoMatch, formatScore(flags.threshold))
			}
			return a.write(cmd, m, writeLine(m.Value))
		},
	}

	cmd.Flags().Float64VarP(&flags.threshold, "threshold", "t", 0, "Minimum score a candidate needs, between 0 and 1")
	cmd.Flags().BoolVar(&flags.fold, "fold", false, "Compare case-folded strings")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "Compare NFC-normalized strings")
	cmd.Flags().BoolVar(&flags.all, "all", false, "List every candidate at or above the threshold, best first")

	return cmd
}
