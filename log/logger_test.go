package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tessellated-io/nolus-wallet/log"
)

func TestLogging_NoPrefix(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLoggerWithWriter("info", buffer, []string{})

	assert.Equal(t, "level=INFO msg=test\n", logAndRead(buffer, logger, "test"))
	assert.Equal(t, "level=INFO msg=test key=value foo=bar\n", logAndRead(buffer, logger, "test", "key", "value", "foo", "bar"))

	logger = logger.With("key", "value", "foo", "bar")
	assert.Equal(t, "level=INFO msg=test key=value foo=bar\n", logAndRead(buffer, logger, "test"))
}

func TestLogging_ApplyPrefix(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLoggerWithWriter("info", buffer, []string{})

	logger = logger.ApplyPrefix("[wallet]")
	assert.Equal(t, "level=INFO msg=\"[wallet] test\"\n", logAndRead(buffer, logger, "test"))
	assert.Equal(t, "level=INFO msg=\"[wallet] test\" key=value\n", logAndRead(buffer, logger, "test", "key", "value"))

	logger = logger.With("key", "value")
	assert.Equal(t, "level=INFO msg=\"[wallet] test\" key=value\n", logAndRead(buffer, logger, "test"))

	logger = logger.ApplyPrefix("[signer]")
	assert.Equal(t, "level=INFO msg=\"[wallet][signer] test\" key=value\n", logAndRead(buffer, logger, "test"))
	assert.Equal(t, "level=INFO msg=\"[wallet][signer] test\" key=value foo=bar\n", logAndRead(buffer, logger, "test", "foo", "bar"))
}

func TestLogging_DefaultPrefix(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLoggerWithWriter("info", buffer, []string{"[wallet]"})

	assert.Equal(t, "level=INFO msg=\"[wallet] test\"\n", logAndRead(buffer, logger, "test"))

	logger = logger.ApplyPrefix("[simulate]")
	assert.Equal(t, "level=INFO msg=\"[wallet][simulate] test\"\n", logAndRead(buffer, logger, "test"))
}

func TestLogging_SiblingPrefixesDoNotLeak(t *testing.T) {
	buffer := &bytes.Buffer{}
	parent := log.NewLoggerWithWriter("info", buffer, []string{"[wallet]"})

	first := parent.ApplyPrefix("[a]")
	second := parent.ApplyPrefix("[b]")

	assert.Equal(t, "level=INFO msg=\"[wallet][a] test\"\n", logAndRead(buffer, first, "test"))
	assert.Equal(t, "level=INFO msg=\"[wallet][b] test\"\n", logAndRead(buffer, second, "test"))
}

func TestLogging_LevelFiltering(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := log.NewLoggerWithWriter("warn", buffer, []string{})

	logger.Info("hidden")
	assert.Equal(t, "", buffer.String())

	logger.Warn("shown")
	assert.Equal(t, "level=WARN msg=shown\n", buffer.String())
}

func logAndRead(buffer *bytes.Buffer, logger *log.Logger, msg string, vals ...any) string {
	buffer.Reset()
	logger.Info(msg, vals...)
	return buffer.String()
}
