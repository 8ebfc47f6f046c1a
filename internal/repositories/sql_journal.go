package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type JournalRepository interface {
	CreateGroup(ctx context.Context, entries []*models.JournalEntry) error
	GetGroup(ctx context.Context, transactionGroupID string) ([]models.JournalEntry, error)
	GetGroupByIdempotencyKey(ctx context.Context, key string) ([]models.JournalEntry, error)
	UpdateGroupStatus(ctx context.Context, transactionGroupID string, status models.PostingStatus) error
	List(ctx context.Context, opts models.JournalFilterOptions) ([]models.JournalEntry, error)
	TrialBalance(ctx context.Context) ([]models.TrialBalanceRow, error)
}

type journalRepository sqlRepo

var _ JournalRepository = (*journalRepository)(nil)

// CreateGroup writes every line of a balanced group in one statement, so a
// group is never partially visible.
func (jr *journalRepository) CreateGroup(ctx context.Context, entries []*models.JournalEntry) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(entries) == 0 {
		return common.ErrEmptyEntrySet
	}

	db := jr.r.extractTxWrite(ctx)

	valueStrings := []string{}
	valueArgs := []interface{}{}

	for _, en := range entries {
		metadata, mErr := marshalMetadata(en.Metadata)
		if mErr != nil {
			return mErr
		}

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs, en.TransactionGroupID)
		valueArgs = append(valueArgs, en.AccountCode)
		valueArgs = append(valueArgs, int64(en.AmountCents))
		valueArgs = append(valueArgs, string(en.PostingStatus))
		valueArgs = append(valueArgs, en.Description)
		valueArgs = append(valueArgs, metadata)
		valueArgs = append(valueArgs, nullString(en.IdempotencyKey))
		valueArgs = append(valueArgs, en.OrganizationID)
	}

	query := fmt.Sprintf(`INSERT INTO "journal_entry"
		("transaction_group_id", "account_code", "amount_cents", "posting_status", "description", "metadata", "idempotency_key", "organization_id")
		VALUES %s`, strings.Join(valueStrings, ","))

	sqlStr := common.ReplaceSQL(query, "?")

	if _, err = db.ExecContext(ctx, sqlStr, valueArgs...); err != nil {
		// a unique index on (idempotency_key, account_code) arbitrates
		// concurrent writers carrying the same key; the loser lands here
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: idempotency key %q", common.ErrDuplicateEvent, entries[0].IdempotencyKey)
		}
		return err
	}

	return nil
}

func (jr *journalRepository) GetGroup(ctx context.Context, transactionGroupID string) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryGetJournalGroup, transactionGroupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res, err = scanJournalEntries(rows)
	if err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return nil, common.ErrDataNotFound
	}

	return res, nil
}

func (jr *journalRepository) GetGroupByIdempotencyKey(ctx context.Context, key string) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryGetJournalGroupByIdempotencyKey, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJournalEntries(rows)
}

// UpdateGroupStatus advances every line of the group. The status list in the
// WHERE clause enforces the forward-only state machine at the database.
func (jr *journalRepository) UpdateGroupStatus(ctx context.Context, transactionGroupID string, status models.PostingStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxWrite(ctx)

	var allowedFrom []string
	for _, s := range []models.PostingStatus{models.PostingStatusPending, models.PostingStatusCommitted} {
		if s.CanAdvanceTo(status) {
			allowedFrom = append(allowedFrom, string(s))
		}
	}
	if len(allowedFrom) == 0 {
		return common.ErrInvalidStatus
	}

	result, err := db.ExecContext(ctx, queryUpdateJournalGroupStatus,
		string(status), transactionGroupID, "{"+strings.Join(allowedFrom, ",")+"}")
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

func (jr *journalRepository) List(ctx context.Context, opts models.JournalFilterOptions) (res []models.JournalEntry, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxRead(ctx)

	query, args, err := buildFilteredJournalQuery(journalEntryCols, opts).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJournalEntries(rows)
}

// TrialBalance sums signed amounts per account. Every row set it returns
// must itself sum to zero; the setup command uses it as a consistency check.
func (jr *journalRepository) TrialBalance(ctx context.Context) (res []models.TrialBalanceRow, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := jr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryTrialBalance)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row models.TrialBalanceRow
		var cents int64
		if err = rows.Scan(&row.AccountCode, &cents); err != nil {
			return nil, err
		}
		row.NetCents = models.Money(cents)
		res = append(res, row)
	}

	return res, rows.Err()
}

func scanJournalEntries(rows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
}) (res []models.JournalEntry, err error) {
	for rows.Next() {
		var (
			en             models.JournalEntry
			cents          int64
			status         string
			metadata       []byte
			idempotencyKey *string
			createdAt      time.Time
		)

		if err = rows.Scan(
			&en.ID,
			&en.TransactionGroupID,
			&en.AccountCode,
			&cents,
			&status,
			&en.Description,
			&metadata,
			&idempotencyKey,
			&en.OrganizationID,
			&createdAt,
		); err != nil {
			return nil, err
		}

		en.AmountCents = models.Money(cents)
		en.PostingStatus = models.PostingStatus(status)
		en.CreatedAt = createdAt
		if idempotencyKey != nil {
			en.IdempotencyKey = *idempotencyKey
		}
		if en.Metadata, err = unmarshalMetadata(metadata); err != nil {
			return nil, err
		}

		res = append(res, en)
	}

	return res, rows.Err()
}
