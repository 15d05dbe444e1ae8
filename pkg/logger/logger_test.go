package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLogLevel(in), "level %q", in)
	}
}

func TestAppLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("warn", &buf)

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line", "pdf_id", 42)
	l.Error("error line", errors.New("boom"), "step", "upload")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, `level=WARN msg="warn line" pdf_id=42`)
	assert.Contains(t, out, `level=ERROR msg="error line" error=boom step=upload`)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestAppLogger_QuotesValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("debug", &buf)

	l.Debug("selected", "filename", "board rev 2.pdf")

	assert.Contains(t, buf.String(), `filename="board rev 2.pdf"`)
}

func TestAppLogger_FlagsDanglingKey(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("debug", &buf)

	l.Debug("odd fields", "a", 1, "dangling")

	assert.Contains(t, buf.String(), `msg="odd fields" a=1 !BADKEY=dangling`)
}
