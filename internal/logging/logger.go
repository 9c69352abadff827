// Package logging holds the process-wide zap logger used by lencoder packages.
package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the configured logger, or a no-op logger if none was set.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return zap.NewNop()
}

// SetLogger replaces the package logger. A nil logger restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// Named returns a child of the package logger scoped to component.
func Named(component string) *zap.Logger {
	return Logger().Named(component)
}
