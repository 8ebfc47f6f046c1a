package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/monitoring"
)

type AgentRepository interface {
	ResolveCard(ctx context.Context, cardID string) (models.CardResolution, error)
	GetByID(ctx context.Context, id string) (models.Agent, error)
	// IncrementSpend adds to the agent's running spend in one statement and
	// returns the new total so the caller can detect budget drift.
	IncrementSpend(ctx context.Context, id string, amount models.Money) (models.Money, error)
}

type agentRepository sqlRepo

var _ AgentRepository = (*agentRepository)(nil)

// ResolveCard maps a card to its agent, organization and optional client.
func (agr *agentRepository) ResolveCard(ctx context.Context, cardID string) (res models.CardResolution, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := agr.r.extractTxWrite(ctx)

	var clientID *string
	err = db.
		QueryRowContext(ctx, queryResolveCard, cardID).
		Scan(&res.CardID, &res.AgentID, &res.OrganizationID, &clientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, common.ErrUnknownCard
		}
		return res, err
	}

	if clientID != nil {
		res.ClientID = *clientID
	}

	return res, nil
}

func (agr *agentRepository) GetByID(ctx context.Context, id string) (res models.Agent, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := agr.r.extractTxRead(ctx)

	var clientID *string
	var budget, spend, daily int64
	err = db.
		QueryRowContext(ctx, queryGetAgentByID, id).
		Scan(
			&res.ID,
			&res.OrganizationID,
			&clientID,
			&budget,
			&spend,
			&daily,
			&res.Status,
			&res.CreatedAt,
			&res.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, common.ErrUnknownAgent
		}
		return res, err
	}

	if clientID != nil {
		res.ClientID = *clientID
	}
	res.MonthlyBudgetCents = models.Money(budget)
	res.CurrentSpendCents = models.Money(spend)
	res.DailyLimitCents = models.Money(daily)

	return res, nil
}

func (agr *agentRepository) IncrementSpend(ctx context.Context, id string, amount models.Money) (res models.Money, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if amount.IsNegative() {
		return 0, common.ErrInvalidAmount
	}

	db := agr.r.extractTxWrite(ctx)

	var spend int64
	err = db.
		QueryRowContext(ctx, queryIncrementAgentSpend, int64(amount), id).
		Scan(&spend)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrUnknownAgent
		}
		return 0, err
	}

	return models.Money(spend), nil
}
