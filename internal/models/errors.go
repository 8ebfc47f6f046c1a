package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

const (
	ErrKeyDataNotFound         = "DATA_NOT_FOUND"
	ErrKeyDatabaseError        = "DATABASE_ERROR"
	ErrKeyOrganizationNotFound = "ORGANIZATION_NOT_FOUND"
	ErrKeyAgentNotFound        = "AGENT_NOT_FOUND"
	ErrKeyCardNotFound         = "CARD_NOT_FOUND"
	ErrKeySettlementNotFound   = "SETTLEMENT_NOT_FOUND"
	ErrKeyJournalGroupNotFound = "JOURNAL_GROUP_NOT_FOUND"
	ErrKeyInsufficientFunds    = "INSUFFICIENT_FUNDS"
	ErrKeyUnbalancedEntry      = "UNBALANCED_ENTRY"
	ErrKeyInvalidSignature     = "INVALID_SIGNATURE"
)

var MapErrors = MapErrs{
	ErrKeyDataNotFound:         {Code: ErrKeyDataNotFound, ErrorMessage: errors.New("data not found")},
	ErrKeyDatabaseError:        {Code: ErrKeyDatabaseError, ErrorMessage: errors.New("database error")},
	ErrKeyOrganizationNotFound: {Code: ErrKeyOrganizationNotFound, ErrorMessage: errors.New("organization not found")},
	ErrKeyAgentNotFound:        {Code: ErrKeyAgentNotFound, ErrorMessage: errors.New("agent not found")},
	ErrKeyCardNotFound:         {Code: ErrKeyCardNotFound, ErrorMessage: errors.New("card not found")},
	ErrKeySettlementNotFound:   {Code: ErrKeySettlementNotFound, ErrorMessage: errors.New("transaction settlement not found")},
	ErrKeyJournalGroupNotFound: {Code: ErrKeyJournalGroupNotFound, ErrorMessage: errors.New("journal group not found")},
	ErrKeyInsufficientFunds:    {Code: ErrKeyInsufficientFunds, ErrorMessage: errors.New("insufficient issuing balance")},
	ErrKeyUnbalancedEntry:      {Code: ErrKeyUnbalancedEntry, ErrorMessage: errors.New("journal entries do not balance")},
	ErrKeyInvalidSignature:     {Code: ErrKeyInvalidSignature, ErrorMessage: errors.New("invalid webhook signature")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
