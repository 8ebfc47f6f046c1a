package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
	"github.com/svnhec/qoda-sub003/internal/repositories"
)

type BalanceService interface {
	// GetBalance serves the issuing balance from redis when fresh, falling
	// back to the organization row. The cache is invalidated on every
	// funding mutation, so staleness is bounded by the configured TTL.
	GetBalance(ctx context.Context, organizationID string) (models.Money, error)
	GetOrganization(ctx context.Context, organizationID string) (models.Organization, error)
	// DeductFunds withdraws from the issuing balance. The decrement is
	// guarded in SQL so the balance can never go negative, no matter how
	// many settlements or withdrawals race it.
	DeductFunds(ctx context.Context, req models.DeductFundsRequest) (models.DeductFundsResult, error)
}

type balance service

var _ BalanceService = (*balance)(nil)

func (b balance) GetBalance(ctx context.Context, organizationID string) (res models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	cacheKey := getCacheKeyOrganizationBalance(organizationID)

	cached, cacheErr := b.srv.cacheRepo.Get(ctx, cacheKey)
	if cacheErr == nil {
		cents, parseErr := strconv.ParseInt(cached, 10, 64)
		if parseErr == nil {
			return models.NewMoney(cents), nil
		}
		log.Warn(ctx, "[BALANCE.CACHE.CORRUPT]", log.String("key", cacheKey), log.Err(parseErr))
	}

	org, err := b.srv.sqlRepo.GetOrganizationRepository().GetByID(ctx, organizationID)
	if err != nil {
		return 0, checkDatabaseError(err, models.ErrKeyOrganizationNotFound)
	}

	if setErr := b.srv.cacheRepo.Set(ctx, cacheKey, org.IssuingBalanceCents.Cents(), b.srv.conf.Ledger.BalanceTTL); setErr != nil {
		log.Warn(ctx, "[BALANCE.CACHE.SET_FAILED]", log.String("key", cacheKey), log.Err(setErr))
	}

	return org.IssuingBalanceCents, nil
}

func (b balance) GetOrganization(ctx context.Context, organizationID string) (res models.Organization, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = b.srv.sqlRepo.GetOrganizationRepository().GetByID(ctx, organizationID)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyOrganizationNotFound)
		return
	}

	return
}

func (b balance) DeductFunds(ctx context.Context, req models.DeductFundsRequest) (res models.DeductFundsResult, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = common.ValidateStruct(req); err != nil {
		return res, err
	}

	amount := models.NewMoney(req.AmountCents)

	// the withdrawal is recorded as a negative funding row so the funding
	// history of an organization reads as one signed stream
	ft := &models.FundingTransaction{
		ID:                 b.srv.idgenerator.Generate(models.FundingIDPrefix),
		OrganizationID:     req.OrganizationID,
		AmountCents:        amount.Neg(),
		ExternalTransferID: req.ExternalTransferID,
		Status:             models.FundingStatusPending,
		Description:        req.Description,
	}

	if err = b.srv.sqlRepo.GetFundingRepository().Create(ctx, ft); err != nil {
		return res, checkDatabaseError(err)
	}

	groupID := b.srv.idgenerator.Generate(models.TransactionGroupIDPrefix)

	var newBalance models.Money
	err = b.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		var txErr error
		newBalance, txErr = r.GetOrganizationRepository().DeductIssuingBalance(ctx, req.OrganizationID, amount)
		if txErr != nil {
			return txErr
		}

		entries := buildJournalEntries(groupID, models.RecordTransactionRequest{
			OrganizationID: req.OrganizationID,
			Description:    fmt.Sprintf("withdrawal %s", ft.ID),
			Metadata:       map[string]any{"fundingTransactionId": ft.ID},
			IdempotencyKey: fmt.Sprintf("deduction:%s", ft.ID),
			Lines: []models.EntryLine{
				{AccountCode: models.AccountAgencyDeposits, Debit: amount},
				{AccountCode: models.AccountPlatformCash, Credit: amount},
			},
		})
		if txErr = r.GetJournalRepository().CreateGroup(ctx, entries); txErr != nil {
			return txErr
		}

		if txErr = r.GetFundingRepository().UpdateStatus(ctx, ft.ID, models.FundingStatusSucceeded); txErr != nil {
			return txErr
		}

		return r.GetAuditRepository().Insert(ctx, &models.AuditLogEntry{
			Action:         models.AuditActionFundsDeducted,
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
		(*funding)(&b).markFailed(ctx, ft, models.AuditActionFundsDeducted, err)
		switch {
		case errors.Is(err, common.ErrInsufficientFunds):
			return res, models.GetErrMap(models.ErrKeyInsufficientFunds)
		case errors.Is(err, common.ErrOrganizationNotFound):
			return res, models.GetErrMap(models.ErrKeyOrganizationNotFound)
		}
		return res, checkDatabaseError(err)
	}

	b.invalidate(ctx, req.OrganizationID)

	return models.DeductFundsResult{
		FundingTransactionID: ft.ID,
		BalanceCents:         newBalance,
	}, nil
}

func (b balance) invalidate(ctx context.Context, organizationID string) {
	if err := b.srv.cacheRepo.Del(ctx, getCacheKeyOrganizationBalance(organizationID)); err != nil {
		log.Warn(ctx, "[BALANCE.CACHE.INVALIDATE_FAILED]",
			log.String("organizationId", organizationID), log.Err(err))
	}
}
