package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/logger"
)

type commandKey struct{}

// app carries state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	outputFlag string

	cfg    Config
	output string
	log    *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "textkit",
		Short:         "Grapheme-aware string utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.outputFlag, "output", "o", "", "Output format: text, json or yaml")

	rootCmd.AddCommand(
		newLenCommand(a),
		newSliceCommand(a),
		newReverseCommand(a),
		newSegmentCommand(a),
		newDistanceCommand(a),
		newScoreCommand(a),
		newClosestCommand(a),
		newNormalizeCommand(a),
		newSlugCommand(a),
		newSortCommand(a),
	)

	return rootCmd
}

func commandFromContext(ctx context.Context) (slog.Attr, bool) {
	name, ok := ctx.Value(commandKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Command(name), true
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output := cfg.Output
	if a.outputFlag != "" {
		output = a.outputFlag
	}
	if a.output, err = parseOutput(output); err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logFormat(cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithContextExtractors(commandFromContext),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, commandKey{}, cmd.Name()))
	return nil
}
