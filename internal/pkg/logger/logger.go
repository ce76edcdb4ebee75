package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init replaces the global logger. Safe to call once at startup; everything
// before that falls back to a production config.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func log() *zap.SugaredLogger {
	once.Do(func() {
		if global == nil {
			l, _ := zap.NewProduction()
			global = l.Sugar()
		}
	})
	return global
}

func Debugf(_ context.Context, format string, args ...any) {
	log().Debugf(format, args...)
}

func Info(_ context.Context, msg string) {
	log().Info(msg)
}

func Infof(_ context.Context, format string, args ...any) {
	log().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...any) {
	log().Warnf(format, args...)
}

func Error(_ context.Context, msg string) {
	log().Error(msg)
}

func Errorf(_ context.Context, format string, args ...any) {
	log().Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	if err != nil {
		log().Fatal(err.Error())
	}
}
