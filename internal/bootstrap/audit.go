package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that must not get lost in the
// regular log stream, e.g. the shutdown entry.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
