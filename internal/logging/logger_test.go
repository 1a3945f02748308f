package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"info":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), "ParseLevel(%q)", input)
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	logger.Debug().Str("query", "!g").Msg("filtered")

	assert.Contains(t, buf.String(), `"query":"!g"`)
	assert.Contains(t, buf.String(), `"message":"filtered"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "search")
	ctx = WithQuery(ctx, "yt")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"search"`)
	assert.Contains(t, buf.String(), `"query":"yt"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	// zerolog returns a disabled logger; logging must not panic
	logger.Info().Msg("dropped")
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNew_ConsoleToBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.InfoLevel, Format: "console", Output: &buf})

	logger.Info().Str("bang", "gh").Msg("resolved")

	assert.Contains(t, buf.String(), "resolved")
	assert.Contains(t, buf.String(), "bang=gh")
	assert.NotContains(t, buf.String(), "\x1b[")
}
