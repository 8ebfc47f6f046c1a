package repositories

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/svnhec/qoda-sub003/internal/models"
)

const (
	journalEntryColumns = `
		"id",
		"transaction_group_id",
		"account_code",
		"amount_cents",
		"posting_status",
		"description",
		"metadata",
		"idempotency_key",
		"organization_id",
		"created_at"`

	queryGetJournalGroup = `
		SELECT ` + journalEntryColumns + `
		FROM "journal_entry"
		WHERE "transaction_group_id" = $1
		ORDER BY "id"`

	queryGetJournalGroupByIdempotencyKey = `
		SELECT ` + journalEntryColumns + `
		FROM "journal_entry"
		WHERE "idempotency_key" = $1
		ORDER BY "id"`

	queryUpdateJournalGroupStatus = `
		UPDATE "journal_entry"
		SET "posting_status" = $1
		WHERE "transaction_group_id" = $2
		  AND "posting_status" = ANY($3::text[])`

	queryTrialBalance = `
		SELECT "account_code", COALESCE(SUM("amount_cents"), 0)
		FROM "journal_entry"
		GROUP BY "account_code"
		ORDER BY "account_code"`
)

var journalEntryCols = []string{
	`"id"`,
	`"transaction_group_id"`,
	`"account_code"`,
	`"amount_cents"`,
	`"posting_status"`,
	`"description"`,
	`"metadata"`,
	`"idempotency_key"`,
	`"organization_id"`,
	`"created_at"`,
}

func buildFilteredJournalQuery(cols []string, opts models.JournalFilterOptions) sq.SelectBuilder {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(cols...).From(`"journal_entry"`)

	if opts.OrganizationID != "" {
		query = query.Where(sq.Eq{`"organization_id"`: opts.OrganizationID})
	}

	if opts.AccountCode != "" {
		query = query.Where(sq.Eq{`"account_code"`: opts.AccountCode})
	}

	if opts.PostingStatus != "" {
		query = query.Where(sq.Eq{`"posting_status"`: string(opts.PostingStatus)})
	}

	if !opts.StartDate.IsZero() {
		query = query.Where(sq.GtOrEq{`"created_at"`: opts.StartDate})
	}

	if !opts.EndDate.IsZero() {
		query = query.Where(sq.LtOrEq{`"created_at"`: opts.EndDate})
	}

	query = query.OrderBy(`"id" DESC`)

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	return query
}
