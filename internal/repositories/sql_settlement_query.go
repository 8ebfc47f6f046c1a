package repositories

const (
	settlementColumns = `
		"id",
		"stripe_transaction_id",
		"card_id",
		"agent_id",
		"organization_id",
		"client_id",
		"amount_cents",
		"markup_fee_cents",
		"merchant_name",
		"merchant_category",
		"spend_journal_entry_id",
		"markup_journal_entry_id",
		"billed_at",
		"created_at",
		"updated_at"`

	queryClaimSettlement = `
		INSERT INTO "transaction_settlement"
			("id", "stripe_transaction_id", "card_id", "agent_id", "organization_id", "client_id", "amount_cents", "markup_fee_cents", "merchant_name", "merchant_category")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING "created_at", "updated_at"`

	queryGetSettlementByStripeID = `
		SELECT ` + settlementColumns + `
		FROM "transaction_settlement"
		WHERE "stripe_transaction_id" = $1`

	queryGetSettlementByID = `
		SELECT ` + settlementColumns + `
		FROM "transaction_settlement"
		WHERE "id" = $1`

	querySetSpendJournalRef = `
		UPDATE "transaction_settlement"
		SET
			"spend_journal_entry_id" = $1,
			"updated_at" = now()
		WHERE "id" = $2
		  AND "spend_journal_entry_id" IS NULL`

	querySetMarkupJournalRef = `
		UPDATE "transaction_settlement"
		SET
			"markup_journal_entry_id" = $1,
			"updated_at" = now()
		WHERE "id" = $2
		  AND "markup_journal_entry_id" IS NULL`

	queryListUnbilledGroupedByClient = `
		SELECT
			"client_id",
			ARRAY_AGG("id" ORDER BY "created_at"),
			COALESCE(SUM("amount_cents"), 0),
			COALESCE(SUM("markup_fee_cents"), 0)
		FROM "transaction_settlement"
		WHERE "billed_at" IS NULL
		  AND "client_id" IS NOT NULL
		  AND "spend_journal_entry_id" IS NOT NULL
		  AND ("markup_fee_cents" = 0 OR "markup_journal_entry_id" IS NOT NULL)
		  AND "created_at" < $1
		GROUP BY "client_id"
		ORDER BY "client_id"`

	queryMarkSettlementsBilled = `
		UPDATE "transaction_settlement"
		SET
			"billed_at" = $1,
			"updated_at" = now()
		WHERE "id" = ANY($2)
		  AND "billed_at" IS NULL`
)
