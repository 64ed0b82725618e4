package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	rawslog "log/slog"

	"github.com/stretchr/testify/require"

	"github.com/code7-adrianomartins/beanie/pkg/logger"
)

func TestSlogHandler(t *testing.T) {
	buffer := bytes.NewBuffer([]byte{})

	// level needs to be set to debug for log all
	handler := rawslog.NewJSONHandler(buffer, &rawslog.HandlerOptions{Level: rawslog.LevelDebug})
	log := logger.NewSlog(handler)

	methods := map[string]func(msg string, args ...any){
		rawslog.LevelError.String(): log.Error,
		rawslog.LevelWarn.String():  log.Warn,
		rawslog.LevelInfo.String():  log.Info,
		rawslog.LevelDebug.String(): log.Debug,
	}

	for level, fn := range methods {
		t.Run(level, func(t *testing.T) {
			buffer.Reset()
			fn("initializing view", "model", "daily_clicks")

			var line struct {
				Level string `json:"level"`
				Msg   string `json:"msg"`
				Model string `json:"model"`
			}
			require.NoError(t, json.Unmarshal(buffer.Bytes(), &line))
			require.Equal(t, level, line.Level)
			require.Equal(t, "initializing view", line.Msg)
			require.Equal(t, "daily_clicks", line.Model)
		})
	}
}
