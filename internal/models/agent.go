package models

import "time"

type AgentStatus string

const (
	AgentStatusActive    AgentStatus = "active"
	AgentStatusPaused    AgentStatus = "paused"
	AgentStatusSuspended AgentStatus = "suspended"
)

// Agent is the spending identity a card is issued to. CurrentSpendCents is
// incremented exclusively by the settlement processor through the agent
// repository's atomic increment.
type Agent struct {
	ID                 string      `json:"id"`
	OrganizationID     string      `json:"organizationId"`
	ClientID           string      `json:"clientId,omitempty"`
	MonthlyBudgetCents Money       `json:"monthlyBudgetCents"`
	CurrentSpendCents  Money       `json:"currentSpendCents"`
	DailyLimitCents    Money       `json:"dailyLimitCents"`
	Status             AgentStatus `json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// CardResolution is the read-only lookup the settlement processor depends on:
// card -> agent -> organization (+ optional client for rebilling).
type CardResolution struct {
	CardID         string `json:"cardId"`
	AgentID        string `json:"agentId"`
	OrganizationID string `json:"organizationId"`
	ClientID       string `json:"clientId,omitempty"`
}

func (r CardResolution) HasClient() bool {
	return r.ClientID != ""
}
