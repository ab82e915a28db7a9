package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/textkit/pkg/config"
	"github.com/dmitrymomot/textkit/pkg/grapheme"
	"github.com/dmitrymomot/textkit/pkg/similarity"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestLenCommand(t *testing.T) {
	t.Run("counts clusters", func(t *testing.T) {
		out, _, err := runCLI(t, "", "len", "\u00e9\U0001F44D\U0001F3FD")
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})

	t.Run("json output", func(t *testing.T) {
		out, _, err := runCLI(t, "", "len", "-o", "json", "\U0001F1FA\U0001F1F8")
		require.NoError(t, err)

		var res lengthResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 1, res.Clusters)
		assert.Equal(t, 2, res.Runes)
		assert.Equal(t, 8, res.Bytes)
	})

	t.Run("yaml output", func(t *testing.T) {
		out, _, err := runCLI(t, "", "len", "--output", "yaml", "abc")
		require.NoError(t, err)

		var res lengthResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &res))
		assert.Equal(t, 3, res.Clusters)
		assert.Equal(t, "abc", res.Text)
	})

	t.Run("reads stdin", func(t *testing.T) {
		out, _, err := runCLI(t, "hello\n", "len", "-")
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, _, err := runCLI(t, "", "len")
		assert.Error(t, err)
	})
}

func TestSliceCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"range", []string{"slice", "hello", "1", "3"}, "el\n"},
		{"from start index", []string{"slice", "hello", "2"}, "llo\n"},
		{"negative start", []string{"slice", "hello", "-3"}, "llo\n"},
		{"negative end", []string{"slice", "hello", "0", "-1"}, "hell\n"},
		{"clamped", []string{"slice", "hello", "3", "100"}, "lo\n"},
		{"empty range", []string{"slice", "hello", "4", "2"}, "\n"},
		{"keeps clusters", []string{"slice", "e\u0301a", "0", "1"}, "e\u0301\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	t.Run("invalid index", func(t *testing.T) {
		_, _, err := runCLI(t, "", "slice", "hello", "one")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid start index")
	})
}

func TestReverseCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "reverse", "ab\U0001F1FA\U0001F1F8")
	require.NoError(t, err)
	assert.Equal(t, "\U0001F1FA\U0001F1F8ba\n", out)
}

func TestSegmentCommand(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		out, _, err := runCLI(t, "", "segment", "-o", "json", "ae\u0301")
		require.NoError(t, err)

		var res segmentResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, []grapheme.Cluster{
			{Text: "a", Start: 0, End: 1},
			{Text: "e\u0301", Start: 1, End: 3},
		}, res.Clusters)
	})

	t.Run("empty input", func(t *testing.T) {
		out, _, err := runCLI(t, "", "segment", "-o", "json", "")
		require.NoError(t, err)

		var res segmentResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.NotNil(t, res.Clusters)
		assert.Empty(t, res.Clusters)
	})

	t.Run("table output", func(t *testing.T) {
		out, _, err := runCLI(t, "", "segment", "ab")
		require.NoError(t, err)
		assert.Contains(t, out, "Cluster")
		assert.Contains(t, out, `"a"`)
		assert.Contains(t, out, `"b"`)
	})
}

func TestDistanceAndScoreCommands(t *testing.T) {
	out, _, err := runCLI(t, "", "distance", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = runCLI(t, "", "score", "hello", "hallo")
	require.NoError(t, err)
	assert.Equal(t, "0.8\n", out)

	out, _, err = runCLI(t, "", "score", "", "")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, _, err = runCLI(t, "", "distance", "only-one")
	assert.Error(t, err)
}

func TestClosestCommand(t *testing.T) {
	t.Run("best candidate", func(t *testing.T) {
		out, _, err := runCLI(t, "", "closest", "colr", "cool", "colour", "color", "--threshold", "0.5")
		require.NoError(t, err)
		assert.Equal(t, "color\n", out)
	})

	t.Run("no match", func(t *testing.T) {
		_, _, err := runCLI(t, "", "closest", "COLOR", "color", "-t", "0.5")
		assert.ErrorIs(t, err, errNoMatch)
	})

	t.Run("fold", func(t *testing.T) {
		out, _, err := runCLI(t, "", "closest", "--fold", "-t", "0.5", "COLOR", "color")
		require.NoError(t, err)
		assert.Equal(t, "color\n", out)
	})

	t.Run("all as json", func(t *testing.T) {
		out, _, err := runCLI(t, "", "closest", "--all", "-o", "json", "colr", "cool", "colour", "color", "banana")
		require.NoError(t, err)

		var matches []similarity.Match
		require.NoError(t, json.Unmarshal([]byte(out), &matches))
		require.Len(t, matches, 4)
		assert.Equal(t, "color", matches[0].Value)
		assert.Equal(t, "banana", matches[3].Value)
	})
}

func TestNormalizeCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "normalize", "e\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\u00e9\n", out)

	out, _, err = runCLI(t, "\u00e9\n", "normalize", "--form", "nfd", "-")
	require.NoError(t, err)
	assert.Equal(t, "e\u0301\n", out)

	_, _, err = runCLI(t, "", "normalize", "--form", "nfx", "a")
	assert.Error(t, err)
}

func TestSlugCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "slug", "Fish & Chips")
	require.NoError(t, err)
	assert.Equal(t, "fish-and-chips\n", out)

	out, _, err = runCLI(t, "", "slug", "--sep", "_", "--max", "9", "Cr\u00e8me Br\u00fbl\u00e9e")
	require.NoError(t, err)
	assert.Equal(t, "creme_bru\n", out)

	_, _, err = runCLI(t, "", "slug", "--max", "-1", "x")
	assert.Error(t, err)
}

func TestSortCommand(t *testing.T) {
	out, _, err := runCLI(t, "", "sort", "--locale", "de", "zebra", "\u00e4pfel", "birne")
	require.NoError(t, err)
	assert.Equal(t, "\u00e4pfel\nbirne\nzebra\n", out)

	out, _, err = runCLI(t, "b\na\n", "sort", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	_, _, err = runCLI(t, "", "sort", "--locale", "not a tag!", "a")
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Run("output from env", func(t *testing.T) {
		t.Setenv("TEXTKIT_OUTPUT", "json")
		out, _, err := runCLI(t, "", "distance", "a", "b")
		require.NoError(t, err)

		var res distanceResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 1, res.Distance)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("TEXTKIT_OUTPUT", "json")
		out, _, err := runCLI(t, "", "-o", "text", "distance", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	})

	t.Run("invalid output", func(t *testing.T) {
		_, _, err := runCLI(t, "", "-o", "xml", "len", "a")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("locale from env", func(t *testing.T) {
		t.Setenv("TEXTKIT_LOCALE", "sv")
		out, _, err := runCLI(t, "", "-o", "json", "sort", "b", "a")
		require.NoError(t, err)

		var res sortResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "sv", res.Locale)
		assert.Equal(t, []string{"a", "b"}, res.Values)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Setenv("TEXTKIT_LOG_LEVEL", "debug")
		t.Setenv("TEXTKIT_LOG_FORMAT", "json")
		out, errOut, err := runCLI(t, "", "len", "abc")
		require.NoError(t, err)
		assert.Equal(t, "3\n", out)
		assert.Contains(t, errOut, `"msg":"command finished"`)
		assert.Contains(t, errOut, `"command":"len"`)
		assert.Contains(t, errOut, `"clusters":3`)
	})

	t.Run("quiet by default", func(t *testing.T) {
		_, errOut, err := runCLI(t, "", "len", "abc")
		require.NoError(t, err)
		assert.Empty(t, errOut)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("TEXTKIT_LOG_LEVEL", "loud")
		_, _, err := runCLI(t, "", "len", "abc")
		assert.Error(t, err)
	})
}
