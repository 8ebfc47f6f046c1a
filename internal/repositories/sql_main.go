package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	ar  *accountRepository
	jr  *journalRepository
	or  *organizationRepository
	agr *agentRepository
	sr  *settlementRepository
	fr  *fundingRepository
	aur *auditRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.ar = (*accountRepository)(&rtx.common)
	rtx.jr = (*journalRepository)(&rtx.common)
	rtx.or = (*organizationRepository)(&rtx.common)
	rtx.agr = (*agentRepository)(&rtx.common)
	rtx.sr = (*settlementRepository)(&rtx.common)
	rtx.fr = (*fundingRepository)(&rtx.common)
	rtx.aur = (*auditRepository)(&rtx.common)

	return rtx
}

type SQLRepository interface {
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetAccountRepository() AccountRepository
	GetJournalRepository() JournalRepository
	GetOrganizationRepository() OrganizationRepository
	GetAgentRepository() AgentRepository
	GetSettlementRepository() SettlementRepository
	GetFundingRepository() FundingRepository
	GetAuditRepository() AuditRepository
}

var _ SQLRepository = (*Repository)(nil)

// Atomic runs steps inside one database transaction. The tx rides the
// context, so every repository call made through the injected SQLRepository
// joins it automatically.
func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	log.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			log.Error(ctx, "[DATABASE.TRANSACTION.PANIC]", log.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			log.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", log.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					log.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", log.Err(err))
					err = nil
				}
			}

			log.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetAccountRepository() AccountRepository {
	return r.ar
}

func (r *Repository) GetJournalRepository() JournalRepository {
	return r.jr
}

func (r *Repository) GetOrganizationRepository() OrganizationRepository {
	return r.or
}

func (r *Repository) GetAgentRepository() AgentRepository {
	return r.agr
}

func (r *Repository) GetSettlementRepository() SettlementRepository {
	return r.sr
}

func (r *Repository) GetFundingRepository() FundingRepository {
	return r.fr
}

func (r *Repository) GetAuditRepository() AuditRepository {
	return r.aur
}
