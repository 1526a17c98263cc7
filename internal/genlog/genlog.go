// Package genlog holds the logger shared by the example programs.
package genlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the shared logger instance.
// It uses a no-op logger unless SetLogger was called first.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l as the shared logger. It must be called before the
// first use of Logger.
func SetLogger(l *zap.Logger) {
	logger = l
}
