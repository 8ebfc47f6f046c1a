package repositories

import (
	"context"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type FundingRepository interface {
	Create(ctx context.Context, ft *models.FundingTransaction) error
	UpdateStatus(ctx context.Context, id string, status models.FundingStatus) error
	ListByOrganization(ctx context.Context, organizationID string, limit, offset uint64) ([]models.FundingTransaction, error)
}

type fundingRepository sqlRepo

var _ FundingRepository = (*fundingRepository)(nil)

func (fr *fundingRepository) Create(ctx context.Context, ft *models.FundingTransaction) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fr.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, queryCreateFundingTransaction,
			ft.ID,
			ft.OrganizationID,
			int64(ft.AmountCents),
			nullString(ft.ExternalTransferID),
			string(ft.Status),
			ft.Description,
		).
		Scan(&ft.CreatedAt, &ft.UpdatedAt)

	return err
}

func (fr *fundingRepository) UpdateStatus(ctx context.Context, id string, status models.FundingStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fr.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryUpdateFundingStatus, string(status), id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}

func (fr *fundingRepository) ListByOrganization(ctx context.Context, organizationID string, limit, offset uint64) (res []models.FundingTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := fr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryListFundingByOrganization, organizationID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ft         models.FundingTransaction
			amount     int64
			externalID *string
			status     string
		)
		if err = rows.Scan(
			&ft.ID,
			&ft.OrganizationID,
			&amount,
			&externalID,
			&status,
			&ft.Description,
			&ft.CreatedAt,
			&ft.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ft.AmountCents = models.Money(amount)
		ft.Status = models.FundingStatus(status)
		if externalID != nil {
			ft.ExternalTransferID = *externalID
		}
		res = append(res, ft)
	}

	return res, rows.Err()
}
