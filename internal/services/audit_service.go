package services

import (
	"context"

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type AuditService interface {
	// Record appends one audit entry. Failures are logged and swallowed so
	// an audit outage never blocks a financial operation.
	Record(ctx context.Context, entry models.AuditLogEntry)
	// RecordError appends a failure entry for the given action and resource.
	RecordError(ctx context.Context, action, resourceType, resourceID string, opErr error, metadata map[string]any)
	ListByResource(ctx context.Context, resourceType, resourceID string, limit, offset uint64) ([]models.AuditLogEntry, error)
}

type audit service

var _ AuditService = (*audit)(nil)

func (a audit) Record(ctx context.Context, entry models.AuditLogEntry) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish()

	if err := a.srv.sqlRepo.GetAuditRepository().Insert(ctx, &entry); err != nil {
		log.Error(ctx, "[AUDIT.INSERT_FAILED]",
			log.String("action", entry.Action),
			log.String("resourceId", entry.ResourceID),
			log.Err(err))
	}
}

func (a audit) RecordError(ctx context.Context, action, resourceType, resourceID string, opErr error, metadata map[string]any) {
	a.Record(ctx, models.AuditLogEntry{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Error:        opErr.Error(),
		Metadata:     metadata,
	})
}

func (a audit) ListByResource(ctx context.Context, resourceType, resourceID string, limit, offset uint64) (res []models.AuditLogEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = a.srv.sqlRepo.GetAuditRepository().ListByResource(ctx, resourceType, resourceID, limit, offset)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}
