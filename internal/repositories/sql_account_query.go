package repositories

const (
	queryGetAccountByCode = `
		SELECT "code", "name", "type", "created_at"
		FROM "account"
		WHERE "code" = $1`

	queryGetAccountList = `
		SELECT "code", "name", "type", "created_at"
		FROM "account"
		ORDER BY "code"`

	querySeedAccount = `
		INSERT INTO "account" ("code", "name", "type")
		VALUES ($1, $2, $3)
		ON CONFLICT ("code") DO NOTHING`
)
