package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected       = errors.New("no rows affected")
	ErrValidation           = errors.New("validation failed")
	ErrDataNotFound         = errors.New("data not found")
	ErrInternalServerError  = errors.New("internal server error")
	ErrAuthentication       = errors.New("webhook signature verification failed")
	ErrUnknownCard          = errors.New("card is not mapped to any agent")
	ErrUnknownAgent         = errors.New("agent not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrDuplicateEvent       = errors.New("transaction already fully processed")
	ErrUnbalancedEntry      = errors.New("journal entries do not balance: total debits must equal total credits")
	ErrInsufficientFunds    = errors.New("insufficient issuing balance")
	ErrPartialProcessing    = errors.New("settlement claimed but a later step failed; safe to retry")
	ErrAmountOutOfRange     = errors.New("amount out of range")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrEmptyEntrySet        = errors.New("a transaction group requires at least two entries")
	ErrInvalidEntryLine     = errors.New("an entry line must carry exactly one of debit or credit")
	ErrAccountNotFound      = errors.New("account code not seeded in chart of accounts")
	ErrSettlementNotFound   = errors.New("transaction settlement not found")
	ErrSettlementBilled     = errors.New("settlement already billed and immutable")
	ErrInvalidStatus        = errors.New("invalid status transition")
	ErrNoRows               = sql.ErrNoRows
)

// PermanentError marks failures that must not be retried by the webhook
// transport (bad signature, unknown card). Everything else is surfaced so
// the transport redelivers and the idempotent claim resumes processing.
func PermanentError(err error) bool {
	return errors.Is(err, ErrAuthentication) ||
		errors.Is(err, ErrUnknownCard) ||
		errors.Is(err, ErrUnknownAgent) ||
		errors.Is(err, ErrValidation)
}

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
