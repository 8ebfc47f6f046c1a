package services

import (
	"github.com/svnhec/qoda-sub003/internal/common/billing"
	"github.com/svnhec/qoda-sub003/internal/common/cache"
	"github.com/svnhec/qoda-sub003/internal/common/idgenerator"
	"github.com/svnhec/qoda-sub003/internal/common/metrics"
	"github.com/svnhec/qoda-sub003/internal/common/publisher"
	"github.com/svnhec/qoda-sub003/internal/common/retry"
	"github.com/svnhec/qoda-sub003/internal/config"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository
	cardCache cache.Client[models.CardResolution]

	settlementPub publisher.Publisher
	billingClient billing.Client
	idgenerator   idgenerator.Generator
	retryer       retry.Retryer
	metrics       metrics.Metrics

	common service

	Account    *account
	Journal    *journal
	Balance    *balance
	Funding    *funding
	Settlement *settlement
	Billing    *billingService
	Audit      *audit
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	cardCache cache.Client[models.CardResolution],
	settlementPub publisher.Publisher,
	billingClient billing.Client,
	idgenerator idgenerator.Generator,
	retryer retry.Retryer,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		sqlRepo:       sqlRepo,
		cacheRepo:     cacheRepo,
		cardCache:     cardCache,
		settlementPub: settlementPub,
		billingClient: billingClient,
		idgenerator:   idgenerator,
		retryer:       retryer,
		metrics:       metrics,
	}
	srv.common.srv = srv
	srv.Account = (*account)(&srv.common)
	srv.Journal = (*journal)(&srv.common)
	srv.Balance = (*balance)(&srv.common)
	srv.Funding = (*funding)(&srv.common)
	srv.Settlement = (*settlement)(&srv.common)
	srv.Billing = (*billingService)(&srv.common)
	srv.Audit = (*audit)(&srv.common)

	return srv
}
