package repositories

const (
	queryGetOrganizationByID = `
		SELECT
			"id",
			"name",
			"issuing_balance_cents",
			"markup_basis_points",
			"auto_topup_enabled",
			"auto_topup_threshold_cents",
			"auto_topup_amount_cents",
			"created_at",
			"updated_at"
		FROM "organization"
		WHERE "id" = $1`

	queryCreateOrganization = `
		INSERT INTO "organization"
			("id", "name", "issuing_balance_cents", "markup_basis_points", "auto_topup_enabled", "auto_topup_threshold_cents", "auto_topup_amount_cents")
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING "created_at", "updated_at"`

	queryAddIssuingBalance = `
		UPDATE "organization"
		SET
			"issuing_balance_cents" = "issuing_balance_cents" + $1,
			"updated_at" = now()
		WHERE "id" = $2
		RETURNING "issuing_balance_cents"`

	queryDeductIssuingBalance = `
		UPDATE "organization"
		SET
			"issuing_balance_cents" = "issuing_balance_cents" - $1,
			"updated_at" = now()
		WHERE "id" = $2
		  AND "issuing_balance_cents" >= $1
		RETURNING "issuing_balance_cents"`
)
