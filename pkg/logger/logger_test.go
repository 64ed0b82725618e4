package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/code7-adrianomartins/beanie/pkg/logger"
)

func TestZerologHandler(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.NewWriter(buff)

	log.Info("initializing document", "model", "users")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
	require.Equal(t, "info", line["level"])
	require.Equal(t, "initializing document", line["message"])
	require.Equal(t, "users", line["model"])
	require.Contains(t, line, "time")
}

func TestZerologHandlerLevels(t *testing.T) {
	buff := bytes.NewBuffer([]byte{})
	log := logger.NewWriter(buff)

	methods := map[string]func(msg string, args ...any){
		"error": log.Error,
		"warn":  log.Warn,
		"info":  log.Info,
		"debug": log.Debug,
	}

	for level, fn := range methods {
		t.Run(level, func(t *testing.T) {
			buff.Reset()
			fn("some event", "key", "value")

			var line map[string]any
			require.NoError(t, json.Unmarshal(buff.Bytes(), &line))
			require.Equal(t, level, line["level"])
			require.Equal(t, "value", line["key"])
		})
	}
}

func TestNop(t *testing.T) {
	var log logger.Logger = logger.Nop{}
	// Must accept any arg shape without output or panic.
	log.Error("boom", "key", "value")
	log.Warn("boom")
	log.Info("boom", "dangling-key")
	log.Debug("boom", 42, "non-string-key")
}
