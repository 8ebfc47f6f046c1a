package repositories

import (
	"context"

	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *models.AuditLogEntry) error
	ListByResource(ctx context.Context, resourceType, resourceID string, limit, offset uint64) ([]models.AuditLogEntry, error)
}

type auditRepository sqlRepo

var _ AuditRepository = (*auditRepository)(nil)

func (aur *auditRepository) Insert(ctx context.Context, entry *models.AuditLogEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := aur.r.extractTxWrite(ctx)

	stateBefore, err := marshalMetadata(entry.StateBefore)
	if err != nil {
		return err
	}
	stateAfter, err := marshalMetadata(entry.StateAfter)
	if err != nil {
		return err
	}
	metadata, err := marshalMetadata(entry.Metadata)
	if err != nil {
		return err
	}

	err = db.
		QueryRowContext(ctx, queryInsertAuditLog,
			entry.Action,
			entry.ResourceType,
			entry.ResourceID,
			nullString(entry.OrganizationID),
			nullString(entry.UserID),
			stateBefore,
			stateAfter,
			nullString(entry.Error),
			metadata,
		).
		Scan(&entry.ID, &entry.CreatedAt)

	return err
}

func (aur *auditRepository) ListByResource(ctx context.Context, resourceType, resourceID string, limit, offset uint64) (res []models.AuditLogEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := aur.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryListAuditByResource, resourceType, resourceID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry                            models.AuditLogEntry
			orgID, userID, errMsg            *string
			stateBefore, stateAfter, rawMeta []byte
		)
		if err = rows.Scan(
			&entry.ID,
			&entry.Action,
			&entry.ResourceType,
			&entry.ResourceID,
			&orgID,
			&userID,
			&stateBefore,
			&stateAfter,
			&errMsg,
			&rawMeta,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		if orgID != nil {
			entry.OrganizationID = *orgID
		}
		if userID != nil {
			entry.UserID = *userID
		}
		if errMsg != nil {
			entry.Error = *errMsg
		}
		if entry.StateBefore, err = unmarshalMetadata(stateBefore); err != nil {
			return nil, err
		}
		if entry.StateAfter, err = unmarshalMetadata(stateAfter); err != nil {
			return nil, err
		}
		if entry.Metadata, err = unmarshalMetadata(rawMeta); err != nil {
			return nil, err
		}

		res = append(res, entry)
	}

	return res, rows.Err()
}
