package billing

const SERVICE_NAME = "billing-system"

type (
	// UsageRecord is one client's rebill for a billing day, pushed to the
	// external billing system as a draft invoice line set.
	UsageRecord struct {
		IdempotencyKey string      `json:"idempotency_key"`
		ClientID       string      `json:"client_id"`
		BillingDate    string      `json:"billing_date"`
		TotalCents     int64       `json:"total_cents"`
		Currency       string      `json:"currency"`
		LineItems      []UsageLine `json:"line_items"`
	}

	UsageLine struct {
		Description string `json:"description"`
		AmountCents int64  `json:"amount_cents"`
	}

	UsageRecordResult struct {
		InvoiceRef string `json:"invoice_ref"`
		Status     string `json:"status"`
		Duplicate  bool   `json:"duplicate"`
	}

	pushUsageResponse struct {
		InvoiceRef string `json:"invoice_ref"`
		Status     string `json:"status"`
	}
)
