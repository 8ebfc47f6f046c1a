package models

import (
	"time"
)

const SettlementIDPrefix = "STL"

// TransactionSettlement is the idempotent record of one external card
// transaction. The unique constraint on StripeTransactionID is the sole
// concurrency arbiter against double-processing a redelivered event.
// Rows are never deleted and become immutable once BilledAt is set.
type TransactionSettlement struct {
	ID                   string     `json:"id"`
	StripeTransactionID  string     `json:"stripeTransactionId"`
	CardID               string     `json:"cardId"`
	AgentID              string     `json:"agentId"`
	OrganizationID       string     `json:"organizationId"`
	ClientID             string     `json:"clientId,omitempty"`
	AmountCents          Money      `json:"amountCents"`
	MarkupFeeCents       Money      `json:"markupFeeCents"`
	MerchantName         string     `json:"merchantName"`
	MerchantCategory     string     `json:"merchantCategory"`
	SpendJournalEntryID  string     `json:"spendJournalEntryId,omitempty"`
	MarkupJournalEntryID string     `json:"markupJournalEntryId,omitempty"`
	BilledAt             *time.Time `json:"billedAt,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// TotalRebillCents is the amount rebilled to the client: raw spend plus markup.
func (s TransactionSettlement) TotalRebillCents() (Money, error) {
	return s.AmountCents.Add(s.MarkupFeeCents)
}

// FullyProcessed reports whether every journal leg this settlement requires
// has been written. Settlements without a client never get a markup leg.
func (s TransactionSettlement) FullyProcessed() bool {
	if s.SpendJournalEntryID == "" {
		return false
	}
	if s.ClientID != "" && s.MarkupFeeCents.IsPositive() && s.MarkupJournalEntryID == "" {
		return false
	}
	return true
}

func (s TransactionSettlement) IsBilled() bool {
	return s.BilledAt != nil
}

// SettlementEvent is the inbound card-network webhook payload. Amount arrives
// negative for purchases and is normalized with Abs before processing.
type SettlementEvent struct {
	ID           string       `json:"id" validate:"required"`
	Amount       int64        `json:"amount" validate:"required"`
	Card         string       `json:"card" validate:"required"`
	MerchantData MerchantData `json:"merchant_data"`
}

type MerchantData struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ProcessSettlementResult reports what a single webhook delivery did.
type ProcessSettlementResult struct {
	SettlementID         string `json:"settlementId"`
	StripeTransactionID  string `json:"stripeTransactionId"`
	AmountCents          Money  `json:"amountCents"`
	MarkupFeeCents       Money  `json:"markupFeeCents"`
	TotalRebillCents     Money  `json:"totalRebillCents"`
	SpendJournalEntryID  string `json:"spendJournalEntryId,omitempty"`
	MarkupJournalEntryID string `json:"markupJournalEntryId,omitempty"`
	AlreadyProcessed     bool   `json:"alreadyProcessed"`
}

// SettlementNotification is published fire-and-forget after the core
// transaction commits; its failure never affects ledger correctness.
type SettlementNotification struct {
	SettlementID        string    `json:"settlementId"`
	StripeTransactionID string    `json:"stripeTransactionId"`
	OrganizationID      string    `json:"organizationId"`
	AgentID             string    `json:"agentId"`
	AmountCents         Money     `json:"amountCents"`
	MarkupFeeCents      Money     `json:"markupFeeCents"`
	MerchantName        string    `json:"merchantName"`
	SettledAt           time.Time `json:"settledAt"`
}

// UnbilledClientGroup is one client's unbilled settlements as of a cutoff.
type UnbilledClientGroup struct {
	ClientID      string
	SettlementIDs []string
	SpendCents    Money
	MarkupCents   Money
}

func (g UnbilledClientGroup) TotalRebillCents() (Money, error) {
	return g.SpendCents.Add(g.MarkupCents)
}

// BillingRunSummary is the per-run audit rollup of the billing aggregator.
type BillingRunSummary struct {
	Cutoff            time.Time `json:"cutoff"`
	ClientsProcessed  int       `json:"clientsProcessed"`
	ClientsFailed     int       `json:"clientsFailed"`
	SettlementsBilled int       `json:"settlementsBilled"`
	SpendCents        Money     `json:"spendCents"`
	MarkupCents       Money     `json:"markupCents"`
	TotalRebillCents  Money     `json:"totalRebillCents"`
}
