package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log lines.
type LogHandler struct {
	logger zerolog.Logger
}

// NewLogHandler returns a handler logging to stderr.
func NewLogHandler() *LogHandler {
	return &LogHandler{
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// NewLogHandlerWith returns a handler using the provided logger, so hosts
// can route engine errors into their own logging pipeline.
func NewLogHandlerWith(logger zerolog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// HandleError logs a structured Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	h.logger.Error().
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err).
		Msg("styling engine error")
}
