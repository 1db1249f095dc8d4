package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(cfg LogConfig) *bytes.Buffer {
	var buf bytes.Buffer
	cfg.Writer = &buf
	SetupLogging(cfg)
	return &buf
}

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	buf := captureLog(LogConfig{})
	Info("test")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	Info("hello")
	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "hello")
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, out, "output should not start with a timestamp")
}

func TestSetupLogging_VerboseForcesTimestampsOn(t *testing.T) {
	buf := captureLog(LogConfig{Verbose: true, Timestamps: BoolPtr(false)})
	Debug("verbose-msg")
	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "verbose-msg", "debug message should appear in verbose mode")
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, out, "verbose should force timestamps on")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	buf := captureLog(LogConfig{})
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestGeneratorLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	l := GeneratorLogger("docker")
	assert.Contains(t, l.GetPrefix(), "docker")
}

func TestGeneratorLogger_InheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, GeneratorLogger("poetry").GetLevel())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
