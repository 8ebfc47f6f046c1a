package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
	// AddIssuingBalance and DeductIssuingBalance mutate the balance in a
	// single statement and return the post-operation balance. The deduct
	// guard makes overdraft impossible regardless of concurrency.
	AddIssuingBalance(ctx context.Context, id string, amount models.Money) (models.Money, error)
	DeductIssuingBalance(ctx context.Context, id string, amount models.Money) (models.Money, error)
}

type organizationRepository sqlRepo

var _ OrganizationRepository = (*organizationRepository)(nil)

func (or *organizationRepository) GetByID(ctx context.Context, id string) (res models.Organization, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := or.r.extractTxWrite(ctx)

	var balance, threshold, topupAmount int64
	err = db.
		QueryRowContext(ctx, queryGetOrganizationByID, id).
		Scan(
			&res.ID,
			&res.Name,
			&balance,
			&res.MarkupBasisPoints,
			&res.AutoTopupEnabled,
			&threshold,
			&topupAmount,
			&res.CreatedAt,
			&res.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, common.ErrOrganizationNotFound
		}
		return res, err
	}

	res.IssuingBalanceCents = models.Money(balance)
	res.AutoTopupThresholdCents = models.Money(threshold)
	res.AutoTopupAmountCents = models.Money(topupAmount)

	return res, nil
}

func (or *organizationRepository) Create(ctx context.Context, org *models.Organization) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := or.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, queryCreateOrganization,
			org.ID,
			org.Name,
			int64(org.IssuingBalanceCents),
			org.MarkupBasisPoints,
			org.AutoTopupEnabled,
			int64(org.AutoTopupThresholdCents),
			int64(org.AutoTopupAmountCents),
		).
		Scan(&org.CreatedAt, &org.UpdatedAt)

	return err
}

func (or *organizationRepository) AddIssuingBalance(ctx context.Context, id string, amount models.Money) (res models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if !amount.IsPositive() {
		return 0, common.ErrInvalidAmount
	}

	db := or.r.extractTxWrite(ctx)

	var balance int64
	err = db.
		QueryRowContext(ctx, queryAddIssuingBalance, int64(amount), id).
		Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrOrganizationNotFound
		}
		return 0, err
	}

	return models.Money(balance), nil
}

func (or *organizationRepository) DeductIssuingBalance(ctx context.Context, id string, amount models.Money) (res models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if !amount.IsPositive() {
		return 0, common.ErrInvalidAmount
	}

	db := or.r.extractTxWrite(ctx)

	var balance int64
	err = db.
		QueryRowContext(ctx, queryDeductIssuingBalance, int64(amount), id).
		Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// either the organization is unknown or the guard rejected the
			// deduction; disambiguate for the caller
			if _, getErr := or.GetByID(ctx, id); getErr != nil {
				return 0, getErr
			}
			return 0, common.ErrInsufficientFunds
		}
		return 0, err
	}

	return models.Money(balance), nil
}
