package ports

import (
	"context"

	"github.com/epms/payroll-system/internal/core/domain"
)

// AuditRecorder persists a single audit entry.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

// AuditSink accepts audit entries for asynchronous recording. Enqueue must
// not block the caller beyond channel buffering.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}
