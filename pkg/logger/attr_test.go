package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCommand(t *testing.T) {
	attr := logger.Command("distance")
	require.Equal(t, "command", attr.Key)
	assert.Equal(t, "distance", attr.Value.String())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(2 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())
}

func TestInputSize(t *testing.T) {
	attr := logger.InputSize(12, 3, 2)
	require.Equal(t, "input", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "bytes", g[0].Key)
	assert.Equal(t, int64(12), g[0].Value.Int64())
	assert.Equal(t, "runes", g[1].Key)
	assert.Equal(t, int64(3), g[1].Value.Int64())
	assert.Equal(t, "clusters", g[2].Key)
	assert.Equal(t, int64(2), g[2].Value.Int64())
}
