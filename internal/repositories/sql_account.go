package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type AccountRepository interface {
	GetByCode(ctx context.Context, code string) (models.Account, error)
	GetList(ctx context.Context) ([]models.Account, error)
	Seed(ctx context.Context, accounts []models.Account) error
}

type accountRepository sqlRepo

var _ AccountRepository = (*accountRepository)(nil)

func (ar *accountRepository) GetByCode(ctx context.Context, code string) (res models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	err = db.
		QueryRowContext(ctx, queryGetAccountByCode, code).
		Scan(&res.Code, &res.Name, &res.Type, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, common.ErrAccountNotFound
		}
		return res, err
	}

	return res, nil
}

func (ar *accountRepository) GetList(ctx context.Context) (res []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryGetAccountList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var acc models.Account
		if err = rows.Scan(&acc.Code, &acc.Name, &acc.Type, &acc.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, acc)
	}

	return res, rows.Err()
}

// Seed writes the fixed chart of accounts, skipping codes that already exist.
func (ar *accountRepository) Seed(ctx context.Context, accounts []models.Account) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ar.r.extractTxWrite(ctx)

	for _, acc := range accounts {
		if _, err = db.ExecContext(ctx, querySeedAccount, acc.Code, acc.Name, acc.Type); err != nil {
			return err
		}
	}

	return nil
}
