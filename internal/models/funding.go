package models

import "time"

const FundingIDPrefix = "FND"

type FundingStatus string

const (
	FundingStatusPending   FundingStatus = "pending"
	FundingStatusSucceeded FundingStatus = "succeeded"
	FundingStatusFailed    FundingStatus = "failed"
)

// FundingTransaction records money added to an organization's issuing
// balance, either by an operator top-up or by auto top-up.
type FundingTransaction struct {
	ID                 string        `json:"id"`
	OrganizationID     string        `json:"organizationId"`
	AmountCents        Money         `json:"amountCents"`
	ExternalTransferID string        `json:"externalTransferId,omitempty"`
	Status             FundingStatus `json:"status"`
	Description        string        `json:"description"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// TopUpRequest is the operator-facing funding payload.
type TopUpRequest struct {
	OrganizationID     string `json:"organizationId" validate:"required"`
	AmountCents        int64  `json:"amountCents" validate:"required,gt=0"`
	ExternalTransferID string `json:"externalTransferId"`
	Description        string `json:"description"`
}

// TopUpResult reports the funding transaction and the resulting balance.
type TopUpResult struct {
	FundingTransactionID string `json:"fundingTransactionId"`
	BalanceCents         Money  `json:"balanceCents"`
}

// DeductFundsRequest is the operator-facing withdrawal payload.
type DeductFundsRequest struct {
	OrganizationID     string `json:"organizationId" validate:"required"`
	AmountCents        int64  `json:"amountCents" validate:"required,gt=0"`
	ExternalTransferID string `json:"externalTransferId"`
	Description        string `json:"description"`
}

// DeductFundsResult reports the withdrawal row and the resulting balance.
type DeductFundsResult struct {
	FundingTransactionID string `json:"fundingTransactionId"`
	BalanceCents         Money  `json:"balanceCents"`
}
