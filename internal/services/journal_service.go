package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
	"github.com/svnhec/qoda-sub003/internal/repositories"
)

type JournalService interface {
	// RecordTransaction writes one balanced group atomically. When the
	// request carries an idempotency key that was already used, the
	// previously written group is returned instead of a new one.
	RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) ([]models.JournalEntry, error)
	// ReverseTransaction writes a mirror group that cancels the original.
	// The original entries stay untouched; entries are never edited.
	ReverseTransaction(ctx context.Context, transactionGroupID, description string) ([]models.JournalEntry, error)
	GetGroup(ctx context.Context, transactionGroupID string) ([]models.JournalEntry, error)
	AdvanceGroupStatus(ctx context.Context, transactionGroupID string, status models.PostingStatus) error
	List(ctx context.Context, opts models.JournalFilterOptions) ([]models.JournalEntry, error)
	TrialBalance(ctx context.Context) ([]models.TrialBalanceRow, error)
}

type journal service

var _ JournalService = (*journal)(nil)

func (j journal) RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = models.ValidateBalanced(req.Lines); err != nil {
		return nil, fmt.Errorf("%w: %v", models.GetErrMap(models.ErrKeyUnbalancedEntry), err)
	}

	repoJournal := j.srv.sqlRepo.GetJournalRepository()

	// fast path only; concurrent writers racing past this read are
	// arbitrated by the unique index when the insert runs
	if req.IdempotencyKey != "" {
		existing, getErr := repoJournal.GetGroupByIdempotencyKey(ctx, req.IdempotencyKey)
		if getErr != nil {
			return nil, checkDatabaseError(getErr)
		}
		if len(existing) > 0 {
			log.Info(ctx, "[JOURNAL.RECORD.IDEMPOTENT_REPLAY]",
				log.String("idempotencyKey", req.IdempotencyKey),
				log.String("transactionGroupId", existing[0].TransactionGroupID))
			return existing, nil
		}
	}

	groupID := j.srv.idgenerator.Generate(models.TransactionGroupIDPrefix)
	entries := buildJournalEntries(groupID, req)

	err = j.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if txErr := r.GetJournalRepository().CreateGroup(ctx, entries); txErr != nil {
			return txErr
		}

		return r.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
			Action:         models.AuditActionJournalRecorded,
			ResourceType:   models.AuditResourceJournalGroup,
			ResourceID:     groupID,
			OrganizationID: req.OrganizationID,
			StateAfter: map[string]any{
				"lines":          len(entries),
				"description":    req.Description,
				"idempotencyKey": req.IdempotencyKey,
			},
		})
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEvent) && req.IdempotencyKey != "" {
			return j.replayGroup(ctx, req.IdempotencyKey)
		}
		return nil, checkDatabaseError(err)
	}

	for _, en := range entries {
		res = append(res, *en)
	}

	return res, nil
}

func (j journal) ReverseTransaction(ctx context.Context, transactionGroupID, description string) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	repoJournal := j.srv.sqlRepo.GetJournalRepository()

	original, err := repoJournal.GetGroup(ctx, transactionGroupID)
	if err != nil {
		return nil, checkDatabaseError(err, models.ErrKeyJournalGroupNotFound)
	}

	if maxAge := j.srv.conf.Ledger.ReversalTimeRangeDays; maxAge > 0 {
		oldest := original[0].CreatedAt
		if oldest.Before(common.Now().AddDate(0, 0, -maxAge)) {
			return nil, fmt.Errorf("%w: group %s is older than %d days",
				common.ErrValidation, transactionGroupID, maxAge)
		}
	}

	// one reversal per group, enforced by the idempotency key
	reversalKey := fmt.Sprintf("reversal:%s", transactionGroupID)
	existing, err := repoJournal.GetGroupByIdempotencyKey(ctx, reversalKey)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	reversalGroupID := j.srv.idgenerator.Generate(models.TransactionGroupIDPrefix, "REV")

	entries := make([]*models.JournalEntry, 0, len(original))
	for _, en := range original {
		entries = append(entries, &models.JournalEntry{
			TransactionGroupID: reversalGroupID,
			AccountCode:        en.AccountCode,
			AmountCents:        en.AmountCents.Neg(),
			PostingStatus:      models.PostingStatusPending,
			Description:        description,
			Metadata:           map[string]any{"reversalOf": transactionGroupID},
			IdempotencyKey:     reversalKey,
			OrganizationID:     en.OrganizationID,
		})
	}

	err = j.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if txErr := r.GetJournalRepository().CreateGroup(ctx, entries); txErr != nil {
			return txErr
		}

		return r.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
			Action:         models.AuditActionJournalReversed,
			ResourceType:   models.AuditResourceJournalGroup,
			ResourceID:     transactionGroupID,
			OrganizationID: original[0].OrganizationID,
			StateAfter: map[string]any{
				"reversalGroupId": reversalGroupID,
				"description":     description,
			},
		})
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEvent) {
			return j.replayGroup(ctx, reversalKey)
		}
		return nil, checkDatabaseError(err)
	}

	for _, en := range entries {
		res = append(res, *en)
	}

	return res, nil
}

// replayGroup serves the group a concurrent writer committed under the same
// idempotency key. The unique index decided the winner; the loser's caller
// gets the winner's entries, matching what a later retry would see.
func (j journal) replayGroup(ctx context.Context, key string) ([]models.JournalEntry, error) {
	existing, err := j.srv.sqlRepo.GetJournalRepository().GetGroupByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, checkDatabaseError(err)
	}
	if len(existing) == 0 {
		return nil, checkDatabaseError(common.ErrDataNotFound)
	}

	log.Info(ctx, "[JOURNAL.RECORD.IDEMPOTENT_REPLAY]",
		log.String("idempotencyKey", key),
		log.String("transactionGroupId", existing[0].TransactionGroupID))

	return existing, nil
}

func (j journal) GetGroup(ctx context.Context, transactionGroupID string) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = j.srv.sqlRepo.GetJournalRepository().GetGroup(ctx, transactionGroupID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyJournalGroupNotFound)
		return
	}

	return
}

func (j journal) AdvanceGroupStatus(ctx context.Context, transactionGroupID string, status models.PostingStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	err = j.srv.sqlRepo.GetJournalRepository().UpdateGroupStatus(ctx, transactionGroupID, status)
	if err != nil {
		if errors.Is(err, common.ErrInvalidStatus) || errors.Is(err, common.ErrNoRowsAffected) {
			return fmt.Errorf("%w: group %s to %s", common.ErrInvalidStatus, transactionGroupID, status)
		}
		return checkDatabaseError(err, models.ErrKeyJournalGroupNotFound)
	}

	return nil
}

func (j journal) List(ctx context.Context, opts models.JournalFilterOptions) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = j.srv.sqlRepo.GetJournalRepository().List(ctx, opts)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (j journal) TrialBalance(ctx context.Context) (res []models.TrialBalanceRow, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = j.srv.sqlRepo.GetJournalRepository().TrialBalance(ctx)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func buildJournalEntries(groupID string, req models.RecordTransactionRequest) []*models.JournalEntry {
	entries := make([]*models.JournalEntry, 0, len(req.Lines))
	for _, line := range req.Lines {
		entries = append(entries, &models.JournalEntry{
			TransactionGroupID: groupID,
			AccountCode:        line.AccountCode,
			AmountCents:        line.SignedAmount(),
			PostingStatus:      models.PostingStatusPending,
			Description:        req.Description,
			Metadata:           req.Metadata,
			IdempotencyKey:     req.IdempotencyKey,
			OrganizationID:     req.OrganizationID,
		})
	}
	return entries
}
