package badgerfx

import (
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// zapLogger routes badger's printf-style logs to zap. Badger is chatty at
// info level, so its info messages are logged at debug.
type zapLogger struct {
	logger *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		logger: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

// Debugf implements badger.Logger.
func (l *zapLogger) Debugf(format string, a ...any) {
	l.logger.Debugf(format, a...)
}

// Errorf implements badger.Logger.
func (l *zapLogger) Errorf(format string, a ...any) {
	l.logger.Errorf(format, a...)
}

// Infof implements badger.Logger.
func (l *zapLogger) Infof(format string, a ...any) {
	l.logger.Debugf(format, a...)
}

// Warningf implements badger.Logger.
func (l *zapLogger) Warningf(format string, a ...any) {
	l.logger.Warnf(format, a...)
}

var _ badger.Logger = (*zapLogger)(nil)
