package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
newLogger returns a logger writing human-readable messages on STDERR, at
info level when verbose and warn level otherwise. If logFile is not empty,
every message from debug level up is also appended to it as JSON.
*/
func newLogger(verbose bool, logFile string) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.InfoLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %v", logFile, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(f), zapcore.DebugLevel))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}

// Logf logs a progress message at info level
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	rcc.Logger().Sugar().Infof(format, a...)
}
