package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologHandler adapts a zerolog.Logger to the Logger interface.
type ZerologHandler struct {
	logger zerolog.Logger
}

// New wraps an existing zerolog logger.
func New(l zerolog.Logger) *ZerologHandler {
	return &ZerologHandler{logger: l}
}

// NewWriter builds a timestamped zerolog logger writing to w.
func NewWriter(w io.Writer) *ZerologHandler {
	return New(zerolog.New(w).With().Timestamp().Logger())
}

func (h *ZerologHandler) Error(msg string, args ...any) {
	h.logger.Error().Fields(fields(args)).Msg(msg)
}

func (h *ZerologHandler) Warn(msg string, args ...any) {
	h.logger.Warn().Fields(fields(args)).Msg(msg)
}

func (h *ZerologHandler) Info(msg string, args ...any) {
	h.logger.Info().Fields(fields(args)).Msg(msg)
}

func (h *ZerologHandler) Debug(msg string, args ...any) {
	h.logger.Debug().Fields(fields(args)).Msg(msg)
}
