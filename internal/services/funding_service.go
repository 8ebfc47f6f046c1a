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

type FundingService interface {
	// TopUp adds funds to an organization's issuing balance. The funding
	// transaction is recorded pending first; the balance increment, the
	// deposit journal group and the status flip to succeeded share one tx.
	TopUp(ctx context.Context, req models.TopUpRequest) (models.TopUpResult, error)
	// MaybeAutoTopUp tops up from the organization's own configuration when
	// the balance has fallen below the threshold. Runs after settlements
	// commit, never inside their transaction.
	MaybeAutoTopUp(ctx context.Context, organizationID string) (bool, error)
	ListByOrganization(ctx context.Context, organizationID string, limit, offset uint64) ([]models.FundingTransaction, error)
}

type funding service

var _ FundingService = (*funding)(nil)

func (f funding) TopUp(ctx context.Context, req models.TopUpRequest) (res models.TopUpResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = common.ValidateStruct(req); err != nil {
		return res, err
	}

	return f.topUp(ctx, req, models.AuditActionFundsAdded)
}

func (f funding) MaybeAutoTopUp(ctx context.Context, organizationID string) (toppedUp bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	org, err := f.srv.sqlRepo.GetOrganizationRepository().GetByID(ctx, organizationID)
	if err != nil {
		return false, checkDatabaseError(err, models.ErrKeyOrganizationNotFound)
	}

	if !org.NeedsAutoTopup() {
		return false, nil
	}

	_, err = f.topUp(ctx, models.TopUpRequest{
		OrganizationID: organizationID,
		AmountCents:    org.AutoTopupAmountCents.Cents(),
		Description:    "auto top-up",
	}, models.AuditActionAutoTopup)
	if err != nil {
		return false, err
	}

	return true, nil
}

func (f funding) ListByOrganization(ctx context.Context, organizationID string, limit, offset uint64) (res []models.FundingTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = f.srv.sqlRepo.GetFundingRepository().ListByOrganization(ctx, organizationID, limit, offset)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (f funding) topUp(ctx context.Context, req models.TopUpRequest, auditAction string) (res models.TopUpResult, err error) {
	amount := models.NewMoney(req.AmountCents)

	ft := &models.FundingTransaction{
		ID:                 f.srv.idgenerator.Generate(models.FundingIDPrefix),
		OrganizationID:     req.OrganizationID,
		AmountCents:        amount,
		ExternalTransferID: req.ExternalTransferID,
		Status:             models.FundingStatusPending,
		Description:        req.Description,
	}

	if err = f.srv.sqlRepo.GetFundingRepository().Create(ctx, ft); err != nil {
		return res, checkDatabaseError(err)
	}

	groupID := f.srv.idgenerator.Generate(models.TransactionGroupIDPrefix)

	var newBalance models.Money
	err = f.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var txErr error
		newBalance, txErr = r.GetOrganizationRepository().AddIssuingBalance(ctx, req.OrganizationID, amount)
		if txErr != nil {
			return txErr
		}

		entries := buildJournalEntries(groupID, models.RecordTransactionRequest{
			OrganizationID: req.OrganizationID,
			Description:    fmt.Sprintf("funding %s", ft.ID),
			Metadata:       map[string]any{"fundingTransactionId": ft.ID},
			IdempotencyKey: fmt.Sprintf("funding:%s", ft.ID),
			Lines: []models.EntryLine{
				{AccountCode: models.AccountPlatformCash, Debit: amount},
				{AccountCode: models.AccountAgencyDeposits, Credit: amount},
			},
		})
		if txErr = r.GetJournalRepository().CreateGroup(ctx, entries); txErr != nil {
			return txErr
		}

		if txErr = r.GetFundingRepository().UpdateStatus(ctx, ft.ID, models.FundingStatusSucceeded); txErr != nil {
			return txErr
		}

		return r.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
			Action:         auditAction,
			ResourceType:   models.AuditResourceFunding,
			ResourceID:     ft.ID,
			OrganizationID: req.OrganizationID,
			StateAfter: map[string]any{
				"amountCents":  amount.Cents(),
				"balanceCents": newBalance.Cents(),
				"journalGroup": groupID,
			},
		})
	})
	if err != nil {
		f.markFailed(ctx, ft, auditAction, err)
		if errors.Is(err, common.ErrOrganizationNotFound) {
			return res, models.GetErrMap(models.ErrKeyOrganizationNotFound)
		}
		return res, checkDatabaseError(err)
	}

	(*balance)(&f).invalidate(ctx, req.OrganizationID)

	return models.TopUpResult{
		FundingTransactionID: ft.ID,
		BalanceCents:         newBalance,
	}, nil
}

// markFailed flips the pending row so failed fundings stay visible. Best
// effort only; the causing error is what the caller gets.
func (f funding) markFailed(ctx context.Context, ft *models.FundingTransaction, auditAction string, cause error) {
	if err := f.srv.sqlRepo.GetFundingRepository().UpdateStatus(ctx, ft.ID, models.FundingStatusFailed); err != nil {
		log.Error(ctx, "[FUNDING.MARK_FAILED]", log.String("fundingTransactionId", ft.ID), log.Err(err))
	}

	if err := f.srv.sqlRepo.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
		Action:         auditAction,
		ResourceType:   models.AuditResourceFunding,
		ResourceID:     ft.ID,
		OrganizationID: ft.OrganizationID,
		Error:          cause.Error(),
		StateAfter:     map[string]any{"status": string(models.FundingStatusFailed)},
	}); err != nil {
		log.Error(ctx, "[FUNDING.AUDIT_FAILED]", log.String("fundingTransactionId", ft.ID), log.Err(err))
	}
}
