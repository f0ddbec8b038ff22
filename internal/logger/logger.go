package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

// Init builds the global logger. Release mode gets the JSON production
// config, everything else the human-readable development config.
func Init(ginMode string) error {
	var err error
	if ginMode == "release" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	return err
}

// L returns the global logger.
func L() *zap.Logger {
	return log
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = log.Sync()
}
