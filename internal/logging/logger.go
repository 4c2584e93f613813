package logging

import (
	"io"
	"os"
	"strings"

	"purelift/server/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logrus logger from config: level, optional JSON
// output, and optional rotated log file alongside stdout.
func Setup(cfg config.LoggingConfig) {
	if cfg.JSONFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetLevel(parseLevel(cfg.Level))

	if cfg.File == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	fileName := cfg.File
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	fileLogger := &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, fileLogger))
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}
