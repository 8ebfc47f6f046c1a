package repositories

const (
	queryCreateFundingTransaction = `
		INSERT INTO "funding_transaction"
			("id", "organization_id", "amount_cents", "external_transfer_id", "status", "description")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING "created_at", "updated_at"`

	queryUpdateFundingStatus = `
		UPDATE "funding_transaction"
		SET
			"status" = $1,
			"updated_at" = now()
		WHERE "id" = $2`

	queryListFundingByOrganization = `
		SELECT
			"id",
			"organization_id",
			"amount_cents",
			"external_transfer_id",
			"status",
			"description",
			"created_at",
			"updated_at"
		FROM "funding_transaction"
		WHERE "organization_id" = $1
		ORDER BY "created_at" DESC
		LIMIT $2 OFFSET $3`
)
