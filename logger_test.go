package iothubsas

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLogger(t *testing.T) {
	logger := &DefaultLogger{}

	// Test that the logger methods don't panic
	logger.Debugf("debug message: %s", "test")
	logger.Infof("info message: %s", "test")
	logger.Warnf("warn message: %s", "test")
	logger.Errorf("error message: %s", "test")
}

func TestZapLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core).Sugar())

	logger.Debugf("issuing token for %s", "myhub")
	require.Equal(t, 1, recorded.Len())
	assert.Equal(t, "issuing token for myhub", recorded.All()[0].Message)

	logger.Infof("info message: %s", "test")
	logger.Warnf("warn message: %s", "test")
	logger.Errorf("error message: %s", "test")
	assert.Equal(t, 4, recorded.Len())
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Debugf("debug message: %s", "test")
	logger.Infof("info message: %s", "test")
	logger.Warnf("warn message: %s", "test")
	logger.Errorf("error message: %s", "test")

	logOutput := buf.String()
	assert.Contains(t, logOutput, "debug message: test")
	assert.Contains(t, logOutput, "info message: test")
	assert.Contains(t, logOutput, "warn message: test")
	assert.Contains(t, logOutput, "error message: test")
}

func TestLogrusLogger(t *testing.T) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.Out = &buf
	logrusLogger.Level = logrus.InfoLevel

	logger := NewLogrusLogger(logrusLogger)

	logger.Debugf("debug message: %s", "test")
	logger.Infof("info message: %s", "test")

	output := buf.String()
	assert.NotContains(t, output, "debug message: test", "Debug messages should not be logged at Info level")
	assert.Contains(t, output, "info message: test")
}

func TestCredentialsLogIssuance(t *testing.T) {
	var buf bytes.Buffer
	creds, err := New(hubProperties(),
		WithSigner(&mockSigner{}),
		WithLogger(NewZerologLogger(zerolog.New(&buf))),
	)
	require.NoError(t, err)

	_, err = creds.GetToken(context.Background(), "", "", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "token issued")
	assert.Contains(t, buf.String(), "mode=key")
}
