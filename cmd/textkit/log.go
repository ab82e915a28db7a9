package main

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/dmitrymomot/textkit/pkg/grapheme"
	"github.com/dmitrymomot/textkit/pkg/logger"
)

// logDone writes a debug record describing the processed input.
func (a *app) logDone(ctx context.Context, input string, started time.Time, attrs ...slog.Attr) {
	if !a.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs,
		logger.InputSize(len(input), utf8.RuneCountInString(input), grapheme.Len(input)),
		logger.Duration(time.Since(started)),
	)
	a.log.LogAttrs(ctx, slog.LevelDebug, "command finished", attrs...)
}
