package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global logrus logger from the service config.
// The sentry DSN is passed separately since it is a secret and never lives in config.toml.
func Setup(cfg *config.Config, sentryDSN, serverName string) {
	if cfg.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.SentryEnabled {
		setupSentry(cfg, sentryDSN, serverName)
	}

	logrus.SetLevel(GetLevel(cfg.LogLevel))

	out := newOutput(cfg)
	logrus.SetOutput(out)
	if out == os.Stdout {
		logrus.Println("writing logs only to STDOUT")
	} else {
		logrus.Printf("writing logs to [%s], stdout: %t", logFilePath(cfg.LogsPath), cfg.LogToStdout)
	}
}

func setupSentry(cfg *config.Config, dsn, serverName string) {
	if dsn == "" {
		logrus.Warnln("sentry enabled but no DSN given, skipping")
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Environment:      cfg.Environment,
		Dsn:              dsn,
		TracesSampleRate: cfg.SentryTracesSampleRate,
		ServerName:       serverName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

// newOutput picks stdout, a rotated log file, or both.
func newOutput(cfg *config.Config) io.Writer {
	if cfg.LogsPath == "" {
		return os.Stdout
	}

	fileLogger := &lumberjack.Logger{
		Filename:  logFilePath(cfg.LogsPath),
		MaxSize:   cfg.LogMaxSizeMB, // megabytes
		MaxAge:    cfg.LogMaxAgeDays,
		LocalTime: false, // UTC file names, same as the day boundaries
		Compress:  true,
	}

	if cfg.LogToStdout {
		return pkg.NewCombinedWriter(os.Stdout, fileLogger)
	}
	return fileLogger
}

func logFilePath(path string) string {
	if filepath.Ext(path) != ".log" {
		return path + ".log"
	}
	return path
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
