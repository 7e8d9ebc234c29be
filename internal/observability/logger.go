package observability

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Verbose mode uses zap's development
// configuration (debug level, console encoding); otherwise the production JSON logger.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// MustLogger is NewLogger that falls back to a no-op logger when construction fails.
func MustLogger(verbose bool) *zap.Logger {
	logger, err := NewLogger(verbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
