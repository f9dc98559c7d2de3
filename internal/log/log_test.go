package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("not initialised is a no-op", func(t *testing.T) {
		Close()
		Event("search:find", "search").Detail("query", "icms").Write(nil)
	})

	t.Run("success entry", func(t *testing.T) {
		var buf bytes.Buffer
		Open(&buf, slog.LevelInfo)
		defer Close()

		Event("search:find", "search").
			Detail("query", "cassação").
			Detail("count", 3).
			Write(nil)

		out := buf.String()
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "source=search:find")
		assert.Contains(t, out, "action=search")
		assert.Contains(t, out, "query=cassação")
		assert.Contains(t, out, "count=3")
		assert.NotContains(t, out, "error=")
	})

	t.Run("error entry", func(t *testing.T) {
		var buf bytes.Buffer
		Open(&buf, slog.LevelInfo)
		defer Close()

		Event("index:open", "open").Path("/tmp/x.db").Write(errors.New("boom"))

		out := buf.String()
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "path=/tmp/x.db")
		assert.Contains(t, out, "error=boom")
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		Open(&buf, slog.LevelWarn)
		defer Close()

		Event("search:find", "search").Write(nil)
		assert.Empty(t, buf.String())

		Event("search:find", "search").Write(errors.New("failed"))
		assert.NotEmpty(t, buf.String())
	})

	t.Run("details sorted", func(t *testing.T) {
		var buf bytes.Buffer
		Open(&buf, slog.LevelDebug)
		defer Close()

		Event("x", "y").Detail("zeta", 1).Detail("alpha", 2).Write(nil)

		out := buf.String()
		assert.Less(t, bytes.Index([]byte(out), []byte("alpha=")), bytes.Index([]byte(out), []byte("zeta=")))
	})
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
