package audit

import (
	"io"
	"os"
	"strings"
	"time"

	"boatworks/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Logger writes the audit trail as structured zerolog events. Audit is
// best-effort by contract: Log never fails and never blocks a domain write.
//
// Supported env vars:
//   - AUDIT_LOG_FORMAT: "json" (default) or "console"
type Logger struct {
	zlog zerolog.Logger
}

var _ interfaces.IAuditLogger = (*Logger)(nil)

func NewLogger() *Logger {
	var writer io.Writer = os.Stdout
	if strings.EqualFold(os.Getenv("AUDIT_LOG_FORMAT"), "console") {
		writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	zlog := zerolog.New(writer).With().
		Timestamp().
		Str("component", "audit").
		Logger()
	return &Logger{zlog: zlog}
}

func (l *Logger) Log(event interfaces.AuditEvent) {
	entry := l.zlog.Info()
	if event.Severity == interfaces.AuditSeverityElevated {
		entry = l.zlog.Warn()
	}
	entry = entry.
		Str("action", event.Action).
		Str("entity_type", event.EntityType).
		Str("entity_id", event.EntityID).
		Str("actor", event.Actor).
		Str("severity", string(event.Severity))
	if event.Before != nil {
		entry = entry.Interface("before", event.Before)
	}
	if event.After != nil {
		entry = entry.Interface("after", event.After)
	}
	entry.Msg(event.Description)
}
