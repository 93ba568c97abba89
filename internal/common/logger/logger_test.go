package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter(&buf, "trading-test", false)
	t.Cleanup(func() { initWithWriter(&bytes.Buffer{}, "trading-test", false) })

	Info().Str("request_id", "abc").Msg("Request processed")
	Error().Msg("boom")

	out := buf.String()
	assert.Contains(t, out, "| Request processed")
	assert.Contains(t, out, "service:trading-test")
	assert.Contains(t, out, "request_id:abc")
	assert.Contains(t, out, "| boom")
}

func TestDebugLevelOnlyInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter(&buf, "trading-test", false)
	assert.NotContains(t, buf.String(), "Logger initialized")

	buf.Reset()
	initWithWriter(&buf, "trading-test", true)
	assert.Contains(t, buf.String(), "Logger initialized")
}

func TestNewZap(t *testing.T) {
	for _, debug := range []bool{false, true} {
		l, err := NewZap(debug)
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
}
