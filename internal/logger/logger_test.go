package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathery/internal/config"
	"github.com/katalvlaran/pathery/internal/logger"
)

func TestNew_Level(t *testing.T) {
	l := logger.New(config.Log{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l = logger.New(config.Log{Level: "loud"})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(config.Log{Level: "info", Format: "json"}, &buf)
	l.WithField("steps", 4).Info("solved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "solved", entry["msg"])
	assert.Equal(t, float64(4), entry["steps"])
}

func TestNewWithOutput_TextFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(config.Log{Level: "info", Format: "text"}, &buf)
	l.Debug("hidden")
	assert.Zero(t, buf.Len())
	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
