package models

import "time"

// Audit actions recorded by the engine.
const (
	AuditActionTransactionSettled = "transaction.settled"
	AuditActionSettlementResumed  = "settlement.resumed"
	AuditActionSettlementRejected = "settlement.rejected"
	AuditActionJournalRecorded    = "journal.recorded"
	AuditActionJournalReversed    = "journal.reversed"
	AuditActionFundsAdded         = "balance.funds_added"
	AuditActionFundsDeducted      = "balance.funds_deducted"
	AuditActionAutoTopup          = "balance.auto_topup"
	AuditActionAgentSpendDrift    = "agent.spend_drift"
	AuditActionBillingRun         = "billing.run"
	AuditActionBillingClientFail  = "billing.client_failed"
)

// Audit resource types.
const (
	AuditResourceSettlement   = "transaction_settlement"
	AuditResourceJournalGroup = "journal_group"
	AuditResourceOrganization = "organization"
	AuditResourceAgent        = "agent"
	AuditResourceFunding      = "funding_transaction"
	AuditResourceBillingRun   = "billing_run"
)

// AuditLogEntry is the append-only record of every financial operation and
// failure. Writing it never blocks the primary operation.
type AuditLogEntry struct {
	ID             uint64         `json:"id"`
	Action         string         `json:"action"`
	ResourceType   string         `json:"resourceType"`
	ResourceID     string         `json:"resourceId"`
	OrganizationID string         `json:"organizationId,omitempty"`
	UserID         string         `json:"userId,omitempty"`
	StateBefore    map[string]any `json:"stateBefore,omitempty"`
	StateAfter     map[string]any `json:"stateAfter,omitempty"`
	Error          string         `json:"error,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}
