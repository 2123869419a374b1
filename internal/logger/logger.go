// Package logger 提供基于 zerolog 的日志工具
package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var initOnce sync.Once

// Init 初始化全局 logger
func Init(debug bool) {
	initOnce.Do(func() {
		lvl := zerolog.InfoLevel
		if debug {
			lvl = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(lvl)

		console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.TimeFormat = time.Kitchen
		})

		log.Logger = zerolog.New(console).With().Timestamp().Logger()
	})
}
