package logx

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log 全局共享日志
var Log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	level := os.Getenv("WA_LOG_LEVEL")
	if strings.ToLower(os.Getenv("DEBUG")) == "true" {
		level = "debug"
	}
	Configure(level)
}

// Configure 设置全局日志级别，无法识别时回落到 info
func Configure(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "all", "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "none", "off", "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
