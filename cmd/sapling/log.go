package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logger struct {
	*zap.SugaredLogger
}

// newLogger returns a logger writing to STDERR, at info level
// if verbose and only warnings and errors otherwise.
func newLogger(verbose bool) (logger, error) {
	cfg := zap.NewDevelopmentConfig()
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	l, err := cfg.Build()
	if err != nil {
		return logger{}, err
	}
	return logger{l.Sugar()}, nil
}

func (l logger) Logf(format string, a ...interface{}) {
	if l.SugaredLogger == nil {
		return
	}
	l.Infof(format, a...)
}

func (l logger) Sync() {
	if l.SugaredLogger == nil {
		return
	}
	l.SugaredLogger.Sync()
}
