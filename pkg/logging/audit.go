package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// AuditLogger records security-relevant operations in logfmt lines
type AuditLogger interface {
	// LogAuth logs a login/logout attempt and its outcome
	LogAuth(operation string, user string, status string, details ...interface{})
	// LogAdmin logs a user-management mutation by an acting admin
	LogAdmin(operation string, actor string, status string, details ...interface{})
}

type auditLogger struct {
	logger *log.Logger
}

func newAuditLogger(w io.Writer) AuditLogger {
	return &auditLogger{
		logger: log.New(w, "", 0), // no flags, we format the line ourselves
	}
}

// formatValue formats a value for logfmt, quoting if necessary
func formatValue(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if strings.ContainsAny(s, " =\"") {
		s = strings.ReplaceAll(s, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}

func (l *auditLogger) write(parts []string, details []interface{}) {
	for i := 0; i+1 < len(details); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%s", details[i], formatValue(details[i+1])))
	}
	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05 -0700")
	l.logger.Printf("%s %s", timestamp, strings.Join(parts, " "))
}

func (l *auditLogger) LogAuth(operation string, user string, status string, details ...interface{}) {
	parts := []string{fmt.Sprintf("op=%s", formatValue(operation))}
	if user != "" {
		parts = append(parts, fmt.Sprintf("user=%s", formatValue(user)))
	}
	parts = append(parts, fmt.Sprintf("status=%s", formatValue(status)))
	l.write(parts, details)
}

func (l *auditLogger) LogAdmin(operation string, actor string, status string, details ...interface{}) {
	parts := []string{fmt.Sprintf("op=%s", formatValue(operation))}
	if actor != "" {
		parts = append(parts, fmt.Sprintf("actor=%s", formatValue(actor)))
	}
	parts = append(parts, fmt.Sprintf("status=%s", formatValue(status)))
	l.write(parts, details)
}
