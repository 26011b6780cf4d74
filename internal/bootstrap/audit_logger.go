package bootstrap

import "context"

// AuditLog is one lifecycle event worth keeping for operators.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
