package models

import (
	"fmt"
	"time"

	"github.com/svnhec/qoda-sub003/internal/common"
)

const TransactionGroupIDPrefix = "JRN"

type PostingStatus string

const (
	PostingStatusPending   PostingStatus = "pending"
	PostingStatusCommitted PostingStatus = "committed"
	PostingStatusSettled   PostingStatus = "settled"
)

// postingStatusRank orders the forward-only posting state machine.
var postingStatusRank = map[PostingStatus]int{
	PostingStatusPending:   0,
	PostingStatusCommitted: 1,
	PostingStatusSettled:   2,
}

// CanAdvanceTo reports whether the posting status may move to next.
// Posting status only moves forward; everything else about an entry is
// immutable after creation.
func (s PostingStatus) CanAdvanceTo(next PostingStatus) bool {
	from, ok := postingStatusRank[s]
	if !ok {
		return false
	}
	to, ok := postingStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// JournalEntry is one signed line of a balanced transaction group.
// Debits are stored positive, credits negative, so every group sums to zero.
type JournalEntry struct {
	ID                 uint64         `json:"id"`
	TransactionGroupID string         `json:"transactionGroupId"`
	AccountCode        string         `json:"accountCode"`
	AmountCents        Money          `json:"amountCents"`
	PostingStatus      PostingStatus  `json:"postingStatus"`
	Description        string         `json:"description"`
	Metadata           map[string]any `json:"metadata,omitempty"`
	IdempotencyKey     string         `json:"idempotencyKey,omitempty"`
	OrganizationID     string         `json:"organizationId"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// EntryLine is the caller-facing debit/credit pair for one account.
// Exactly one side must be non-zero and both sides must be non-negative.
type EntryLine struct {
	AccountCode string `json:"accountCode"`
	Debit       Money  `json:"debit"`
	Credit      Money  `json:"credit"`
}

func (l EntryLine) Validate() error {
	if l.AccountCode == "" {
		return fmt.Errorf("%w: missing account code", common.ErrInvalidEntryLine)
	}
	if l.Debit.IsNegative() || l.Credit.IsNegative() {
		return fmt.Errorf("%w: debit and credit must be non-negative", common.ErrInvalidEntryLine)
	}
	if l.Debit.IsZero() == l.Credit.IsZero() {
		return fmt.Errorf("%w: account %s", common.ErrInvalidEntryLine, l.AccountCode)
	}
	return nil
}

// SignedAmount maps the line onto the zero-sum convention.
func (l EntryLine) SignedAmount() Money {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit.Neg()
}

// ValidateBalanced checks the conservation invariant for a batch of lines
// before anything is written: sum(debit) == sum(credit).
func ValidateBalanced(lines []EntryLine) error {
	if len(lines) < 2 {
		return common.ErrEmptyEntrySet
	}

	var debits, credits Money
	var err error
	for _, l := range lines {
		if err = l.Validate(); err != nil {
			return err
		}
		if debits, err = debits.Add(l.Debit); err != nil {
			return err
		}
		if credits, err = credits.Add(l.Credit); err != nil {
			return err
		}
	}

	if debits != credits {
		return fmt.Errorf("%w: debits=%s credits=%s", common.ErrUnbalancedEntry, debits, credits)
	}

	return nil
}

// TrialBalanceRow is the net signed amount posted to one account. A healthy
// ledger's rows always sum to zero.
type TrialBalanceRow struct {
	AccountCode string `json:"accountCode"`
	NetCents    Money  `json:"netCents"`
}

// JournalFilterOptions narrows a journal listing. Zero-valued fields are
// not applied.
type JournalFilterOptions struct {
	OrganizationID string
	AccountCode    string
	PostingStatus  PostingStatus
	StartDate      time.Time
	EndDate        time.Time
	Limit          uint64
	Offset         uint64
}

// RecordTransactionRequest carries one balanced group into the journal.
type RecordTransactionRequest struct {
	OrganizationID string
	Description    string
	Metadata       map[string]any
	IdempotencyKey string
	Lines          []EntryLine
}

// DoRecordJournalRequest is the REST payload for recording a group.
type DoRecordJournalRequest struct {
	OrganizationID string               `json:"organizationId" validate:"required"`
	Description    string               `json:"description"`
	Metadata       map[string]any       `json:"metadata"`
	IdempotencyKey string               `json:"idempotencyKey"`
	Lines          []DoEntryLineRequest `json:"lines" validate:"required,min=2,dive"`
}

type DoEntryLineRequest struct {
	AccountCode string `json:"accountCode" validate:"required"`
	DebitCents  int64  `json:"debitCents" validate:"gte=0"`
	CreditCents int64  `json:"creditCents" validate:"gte=0"`
}

func (r DoRecordJournalRequest) ToRecordTransactionRequest() RecordTransactionRequest {
	lines := make([]EntryLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, EntryLine{
			AccountCode: l.AccountCode,
			Debit:       NewMoney(l.DebitCents),
			Credit:      NewMoney(l.CreditCents),
		})
	}

	return RecordTransactionRequest{
		OrganizationID: r.OrganizationID,
		Description:    r.Description,
		Metadata:       r.Metadata,
		IdempotencyKey: r.IdempotencyKey,
		Lines:          lines,
	}
}

// DoReverseJournalRequest is the REST payload for reversing a group.
type DoReverseJournalRequest struct {
	Description string `json:"description"`
}

// DoAdvanceStatusRequest moves a group forward in the posting state machine.
type DoAdvanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending committed settled"`
}
