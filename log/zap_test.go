package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel).Named("trackfile")
	l.Debug("hidden")
	l.Info("decoded", String("track", "Monaco"), Int("sections", 12))
	require.NoError(t, l.Sync())

	obj, err := oj.ParseString(buf.String())
	require.NoError(t, err)
	m, ok := obj.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "decoded", m["msg"])
	assert.Equal(t, "trackfile", m["logger"])
	assert.Equal(t, "Monaco", m["track"])
	assert.EqualValues(t, 12, m["sections"])
}

func TestWithFilter(t *testing.T) {
	var buf bytes.Buffer
	opt, err := WithFilter("warn+:*")
	require.NoError(t, err)
	l := New(&buf, DebugLevel, opt)
	l.Info("dropped")
	l.Warn("kept")
	require.NoError(t, l.Sync())
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Level
		wantErr bool
	}{
		{name: "debug", text: "debug", want: DebugLevel},
		{name: "warn", text: "warn", want: WarnLevel},
		{name: "unknown", text: "chatty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	assert.Same(t, Default(), GetFromContext(context.Background()))

	l := New(&bytes.Buffer{}, DebugLevel)
	ctx := AddToContext(context.Background(), l)
	assert.Same(t, l, GetFromContext(ctx))
}
