package repositories

const (
	queryInsertAuditLog = `
		INSERT INTO "audit_log"
			("action", "resource_type", "resource_id", "organization_id", "user_id", "state_before", "state_after", "error", "metadata")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING "id", "created_at"`

	queryListAuditByResource = `
		SELECT
			"id",
			"action",
			"resource_type",
			"resource_id",
			"organization_id",
			"user_id",
			"state_before",
			"state_after",
			"error",
			"metadata",
			"created_at"
		FROM "audit_log"
		WHERE "resource_type" = $1
		  AND "resource_id" = $2
		ORDER BY "id" DESC
		LIMIT $3 OFFSET $4`
)
