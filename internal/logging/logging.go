// Package logging constructs the application logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger. In debug mode the logger uses the human-readable
// development encoder at debug level; otherwise it logs at warn level so the
// terminal stays clear for the rendered storefront output.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
