package models

import "time"

// Organization holds the issuing balance and rebilling configuration for one
// agency. The balance is mutated only through the balance repository's atomic
// increment/decrement; application code never read-modify-writes it.
type Organization struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	IssuingBalanceCents     Money     `json:"issuingBalanceCents"`
	MarkupBasisPoints       int64     `json:"markupBasisPoints"`
	AutoTopupEnabled        bool      `json:"autoTopupEnabled"`
	AutoTopupThresholdCents Money     `json:"autoTopupThresholdCents"`
	AutoTopupAmountCents    Money     `json:"autoTopupAmountCents"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// EffectiveMarkupBasisPoints falls back to the configured platform default
// when the organization has no markup of its own, and to the built-in
// default when neither is set.
func (o Organization) EffectiveMarkupBasisPoints(platformDefault int64) int64 {
	if o.MarkupBasisPoints > 0 {
		return o.MarkupBasisPoints
	}
	if platformDefault > 0 {
		return platformDefault
	}
	return DefaultMarkupBasisPoints
}

// NeedsAutoTopup reports whether the configured threshold has been crossed.
func (o Organization) NeedsAutoTopup() bool {
	return o.AutoTopupEnabled &&
		o.AutoTopupAmountCents.IsPositive() &&
		o.IssuingBalanceCents < o.AutoTopupThresholdCents
}
