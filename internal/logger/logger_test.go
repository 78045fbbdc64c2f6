package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_DebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "debug-role")

	l.Debug().Msg("debug line")

	assert.NotEmpty(t, buf.String())
}

func TestForProfile(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		wantDebug  bool
	}{
		{name: "development keeps debug", production: false, wantDebug: true},
		{name: "production drops debug", production: true, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, "server").ForProfile("some-profile", tt.production)

			l.Debug().Msg("debug line")
			if tt.wantDebug {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}

			buf.Reset()
			l.Info().Msg("info line")
			entry := decodeEntry(t, &buf)
			assert.Equal(t, "some-profile", entry["profile"])
			assert.Equal(t, "server", entry["role"])
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NoLoggerAttached verifies that a bare context yields a
// usable logger that writes nothing.
func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-value", entry["req-key"])
}
