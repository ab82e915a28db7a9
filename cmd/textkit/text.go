package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/slug"
	"github.com/dmitrymomot/textkit/pkg/textnorm"
)

type normalizeResult struct {
	Text   string `json:"text" yaml:"text"`
	Form   string `json:"form" yaml:"form"`
	Result string `json:"result" yaml:"result"`
}

func newNormalizeCommand(a *app) *cobra.Command {
	var form string

	cmd := &cobra.Command{
		Use:   "normalize <text|->",
		Short: "Apply a Unicode normalization form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			f, err := textnorm.ParseForm(form)
			if err != nil {
				return err
			}
			s, err := readText(cmd, args[0])
			if err != nil {
				return err
			}

			out, err := textnorm.Normalize(s, f)
			if err != nil {
				return err
			}
			res := normalizeResult{Text: s, Form: string(f), Result: out}
			a.logDone(cmd.Context(), s, started)
			return a.write(cmd, res, writeLine(res.Result))
		},
	}

	cmd.Flags().StringVarP(&form, "form", "f", string(textnorm.NFC), "Normalization form: NFC, NFD, NFKC or NFKD")
	return cmd
}

type slugFlags struct {
	max      int
	sep      string
	unicode  bool
	keepCase bool
	suffix   int
}

type slugResult struct {
	Text string `json:"text" yaml:"text"`
	Slug string `json:"slug" yaml:"slug"`
}

func newSlugCommand(a *app) *cobra.Command {
	var flags slugFlags

	cmd := &cobra.Command{
		Use:     "slug <text|->",
		Short:   "Build a URL-safe slug",
		Example: `  textkit slug --max 20 "Crème brûlée & café"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			s, err := readText(cmd, args[0])
			if err != nil {
				return err
			}
			if flags.max < 0 {
				return fmt.Errorf("invalid --max %d: must not be negative", flags.max)
			}

			opts := []slug.Option{
				slug.MaxLength(flags.max),
				slug.Separator(flags.sep),
				slug.KeepUnicode(flags.unicode),
				slug.Lowercase(!flags.keepCase),
				slug.CustomReplace(map[string]string{"&": " and ", "@": " at "}),
			}
			if flags.suffix > 0 {
				opts = append(opts, slug.WithSuffix(flags.suffix))
			}

			res := slugResult{Text: s, Slug: slug.Make(s, opts...)}
			a.logDone(cmd.Context(), s, started)
			return a.write(cmd, res, writeLine(res.Slug))
		},
	}

	cmd.Flags().IntVar(&flags.max, "max", 0, "Maximum length in grapheme clusters, 0 for no limit")
	cmd.Flags().StringVar(&flags.sep, "sep", "-", "Word separator")
	cmd.Flags().BoolVar(&flags.unicode, "unicode", false, "Keep letters and digits of every script")
	cmd.Flags().BoolVar(&flags.keepCase, "keep-case", false, "Do not lowercase")
	cmd.Flags().IntVar(&flags.suffix, "suffix", 0, "Append a random suffix of this length")
	return cmd
}

type sortResult struct {
	Locale string   `json:"locale" yaml:"locale"`
	Values []string `json:"values" yaml:"values"`
}

func newSortCommand(a *app) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "sort <value>... | -",
		Short: "Sort strings with locale-aware collation",
		Long: `Sort strings with locale-aware collation.

With "-" as the only argument values are read from stdin, one per line.
The locale defaults to TEXTKIT_LOCALE.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			if locale == "" {
				locale = a.cfg.Locale
			}

			var values []string
			if len(args) == 1 && args[0] == "-" {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				values = lines
			} else {
				values = append(values, args...)
			}

			if err := textnorm.Sort(values, locale); err != nil {
				return err
			}
			res := sortResult{Locale: locale, Values: values}
			a.logDone(cmd.Context(), strings.Join(values, "\n"), started)

			return a.write(cmd, res, func(w io.Writer) error {
				for _, v := range values {
					if _, err := fmt.Fprintln(w, v); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "BCP 47 language tag used for collation")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
