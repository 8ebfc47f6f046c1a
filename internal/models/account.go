package models

import "time"

type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account is one entry in the chart of accounts. The set is seeded once and
// immutable; accounts are referenced by code and never deleted.
type Account struct {
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Chart of accounts codes.
const (
	AccountPlatformCash        = "1000"
	AccountReceivableClients   = "1100"
	AccountReceivableAgencies  = "1200"
	AccountAgencyDeposits      = "2000"
	AccountMarkupRevenue       = "4000"
	AccountInterchangeRevenue  = "4100"
	AccountSubscriptionRevenue = "4200"
	AccountAPICostOfServices   = "5000"
	AccountProcessingExpense   = "5100"
	AccountOperatingExpense    = "5200"
)

// SeedAccounts is the fixed chart of accounts written at startup.
func SeedAccounts() []Account {
	return []Account{
		{Code: AccountPlatformCash, Name: "Platform Cash", Type: AccountTypeAsset},
		{Code: AccountReceivableClients, Name: "Accounts Receivable - Clients", Type: AccountTypeAsset},
		{Code: AccountReceivableAgencies, Name: "Accounts Receivable - Agencies", Type: AccountTypeAsset},
		{Code: AccountAgencyDeposits, Name: "Agency Deposits", Type: AccountTypeLiability},
		{Code: AccountMarkupRevenue, Name: "Markup Revenue", Type: AccountTypeRevenue},
		{Code: AccountInterchangeRevenue, Name: "Interchange Revenue", Type: AccountTypeRevenue},
		{Code: AccountSubscriptionRevenue, Name: "Subscription Revenue", Type: AccountTypeRevenue},
		{Code: AccountAPICostOfServices, Name: "API Cost of Services", Type: AccountTypeExpense},
		{Code: AccountProcessingExpense, Name: "Processing Expense", Type: AccountTypeExpense},
		{Code: AccountOperatingExpense, Name: "Operating Expense", Type: AccountTypeExpense},
	}
}
