package interfaces

// AuditSeverity distinguishes routine domain operations from exceptional
// administrative escapes (emergency unlock) in the audit trail.
type AuditSeverity string

const (
	AuditSeverityNormal   AuditSeverity = "normal"
	AuditSeverityElevated AuditSeverity = "elevated"
)

// AuditEvent is emitted from use cases to capture key actions. Transport
// agnostic so sinks can fan out.
type AuditEvent struct {
	Actor       string
	Action      string
	EntityType  string
	EntityID    string
	Description string
	Severity    AuditSeverity
	Before      any
	After       any
}

// IAuditLogger records audit events. Fire-and-forget from the caller's
// perspective: a failing sink must never roll back the domain write, so Log
// returns nothing.
type IAuditLogger interface {
	Log(event AuditEvent)
}
