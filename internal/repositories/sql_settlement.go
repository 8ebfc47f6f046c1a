package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type SettlementRepository interface {
	// Claim inserts the settlement row. When the stripe transaction id is
	// already taken it returns created=false plus the existing row, so the
	// caller can resume whatever processing the earlier delivery left undone.
	Claim(ctx context.Context, s *models.TransactionSettlement) (created bool, existing models.TransactionSettlement, err error)
	GetByStripeID(ctx context.Context, stripeTransactionID string) (models.TransactionSettlement, error)
	GetByID(ctx context.Context, id string) (models.TransactionSettlement, error)
	SetSpendJournalRef(ctx context.Context, id, transactionGroupID string) error
	SetMarkupJournalRef(ctx context.Context, id, transactionGroupID string) error
	ListUnbilledGroupedByClient(ctx context.Context, cutoff time.Time) ([]models.UnbilledClientGroup, error)
	MarkBilled(ctx context.Context, ids []string, billedAt time.Time) error
}

type settlementRepository sqlRepo

var _ SettlementRepository = (*settlementRepository)(nil)

func (sr *settlementRepository) Claim(ctx context.Context, s *models.TransactionSettlement) (created bool, existing models.TransactionSettlement, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxWrite(ctx)

	err = db.
		QueryRowContext(ctx, queryClaimSettlement,
			s.ID,
			s.StripeTransactionID,
			s.CardID,
			s.AgentID,
			s.OrganizationID,
			nullString(s.ClientID),
			int64(s.AmountCents),
			int64(s.MarkupFeeCents),
			s.MerchantName,
			s.MerchantCategory,
		).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	if err == nil {
		return true, models.TransactionSettlement{}, nil
	}

	if !isUniqueViolation(err) {
		return false, models.TransactionSettlement{}, err
	}

	// lost the claim; hand back the winner's row
	existing, err = sr.GetByStripeID(ctx, s.StripeTransactionID)
	if err != nil {
		return false, models.TransactionSettlement{}, err
	}

	return false, existing, nil
}

func (sr *settlementRepository) GetByStripeID(ctx context.Context, stripeTransactionID string) (res models.TransactionSettlement, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxWrite(ctx)

	return scanSettlementRow(db.QueryRowContext(ctx, queryGetSettlementByStripeID, stripeTransactionID))
}

func (sr *settlementRepository) GetByID(ctx context.Context, id string) (res models.TransactionSettlement, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	return scanSettlementRow(db.QueryRowContext(ctx, queryGetSettlementByID, id))
}

func (sr *settlementRepository) SetSpendJournalRef(ctx context.Context, id, transactionGroupID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return sr.setJournalRef(ctx, querySetSpendJournalRef, id, transactionGroupID)
}

func (sr *settlementRepository) SetMarkupJournalRef(ctx context.Context, id, transactionGroupID string) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return sr.setJournalRef(ctx, querySetMarkupJournalRef, id, transactionGroupID)
}

func (sr *settlementRepository) setJournalRef(ctx context.Context, query, id, transactionGroupID string) error {
	db := sr.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, query, transactionGroupID, id)
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

// ListUnbilledGroupedByClient rolls up every fully-processed, unbilled,
// client-attached settlement created before the cutoff.
func (sr *settlementRepository) ListUnbilledGroupedByClient(ctx context.Context, cutoff time.Time) (res []models.UnbilledClientGroup, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryListUnbilledGroupedByClient, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			g             models.UnbilledClientGroup
			spend, markup int64
			ids           pq.StringArray
		)
		if err = rows.Scan(&g.ClientID, &ids, &spend, &markup); err != nil {
			return nil, err
		}
		g.SettlementIDs = ids
		g.SpendCents = models.Money(spend)
		g.MarkupCents = models.Money(markup)
		res = append(res, g)
	}

	return res, rows.Err()
}

func (sr *settlementRepository) MarkBilled(ctx context.Context, ids []string, billedAt time.Time) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(ids) == 0 {
		return nil
	}

	db := sr.r.extractTxWrite(ctx)

	result, err := db.ExecContext(ctx, queryMarkSettlementsBilled, billedAt, pq.Array(ids))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(ids)) {
		return common.ErrSettlementBilled
	}

	return nil
}

type rowScanner interface {
	Scan(...interface{}) error
}

func scanSettlementRow(row rowScanner) (res models.TransactionSettlement, err error) {
	var (
		clientID, spendRef, markupRef *string
		amount, markup                int64
		billedAt                      *time.Time
	)

	err = row.Scan(
		&res.ID,
		&res.StripeTransactionID,
		&res.CardID,
		&res.AgentID,
		&res.OrganizationID,
		&clientID,
		&amount,
		&markup,
		&res.MerchantName,
		&res.MerchantCategory,
		&spendRef,
		&markupRef,
		&billedAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, common.ErrSettlementNotFound
		}
		return res, err
	}

	if clientID != nil {
		res.ClientID = *clientID
	}
	if spendRef != nil {
		res.SpendJournalEntryID = *spendRef
	}
	if markupRef != nil {
		res.MarkupJournalEntryID = *markupRef
	}
	res.AmountCents = models.Money(amount)
	res.MarkupFeeCents = models.Money(markup)
	res.BilledAt = billedAt

	return res, nil
}
