package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger
	once sync.Once
)

// Init builds the global logger. Development encoding unless ENV=production.
func Init() {
	once.Do(func() {
		var err error
		if os.Getenv("ENV") == "production" {
			log, err = zap.NewProduction()
		} else {
			log, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
}

// L returns the global logger.
func L() *zap.Logger {
	if log == nil {
		Init()
	}
	return log
}

// Sync flushes buffered entries. Call on shutdown.
func Sync() {
	_ = L().Sync()
}
