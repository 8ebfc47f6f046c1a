package repositories

const (
	queryResolveCard = `
		SELECT
			card."id",
			agent."id",
			agent."organization_id",
			agent."client_id"
		FROM "card"
		JOIN "agent" ON agent."id" = card."agent_id"
		WHERE card."id" = $1`

	queryGetAgentByID = `
		SELECT
			"id",
			"organization_id",
			"client_id",
			"monthly_budget_cents",
			"current_spend_cents",
			"daily_limit_cents",
			"status",
			"created_at",
			"updated_at"
		FROM "agent"
		WHERE "id" = $1`

	queryIncrementAgentSpend = `
		UPDATE "agent"
		SET
			"current_spend_cents" = "current_spend_cents" + $1,
			"updated_at" = now()
		WHERE "id" = $2
		RETURNING "current_spend_cents"`
)
