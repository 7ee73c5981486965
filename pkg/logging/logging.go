package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds logging configuration
type Config struct {
	// AuditLogPath is where authentication and admin operations are
	// recorded; empty disables the audit trail
	AuditLogPath string
	// AuditMaxSize is the rotation threshold for the audit log in bytes;
	// 0 uses a default of 10 MiB
	AuditMaxSize int64
	// Level is the app log level (debug, info, warn, error)
	Level string
}

var (
	// App is the global application logger
	App = newDefaultApp()
	// Audit is the global audit logger
	Audit AuditLogger = newAuditLogger(io.Discard)
)

func newDefaultApp() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Initialize sets up the global loggers
func Initialize(config *Config) error {
	level := config.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	App.SetLevel(parsed)

	if config.AuditLogPath != "" {
		maxSize := config.AuditMaxSize
		if maxSize == 0 {
			maxSize = 10 * 1024 * 1024
		}
		writer, err := NewRotatingWriter(config.AuditLogPath, maxSize)
		if err != nil {
			return fmt.Errorf("opening audit log: %w", err)
		}
		Audit = newAuditLogger(writer)
	}

	return nil
}
