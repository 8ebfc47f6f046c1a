package services

import (
	"context"

	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type AccountService interface {
	GetChart(ctx context.Context) ([]models.Account, error)
	GetByCode(ctx context.Context, code string) (models.Account, error)
	// SeedChart writes the fixed chart of accounts. Existing codes are left
	// untouched, so it is safe to run on every startup.
	SeedChart(ctx context.Context) error
}

type account service

var _ AccountService = (*account)(nil)

func (a account) GetChart(ctx context.Context) (res []models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = a.srv.sqlRepo.GetAccountRepository().GetList(ctx)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (a account) GetByCode(ctx context.Context, code string) (res models.Account, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	res, err = a.srv.sqlRepo.GetAccountRepository().GetByCode(ctx, code)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyDataNotFound)
		return
	}

	return
}

func (a account) SeedChart(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return a.srv.sqlRepo.GetAccountRepository().Seed(ctx, models.SeedAccounts())
}
