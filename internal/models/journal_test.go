package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
)

func TestValidateBalanced(t *testing.T) {
	t.Run("balanced pair accepted", func(t *testing.T) {
		err := models.ValidateBalanced([]models.EntryLine{
			{AccountCode: models.AccountAPICostOfServices, Debit: 10000},
			{AccountCode: models.AccountPlatformCash, Credit: 10000},
		})
		assert.NoError(t, err)
	})

	t.Run("multi-line group accepted", func(t *testing.T) {
		err := models.ValidateBalanced([]models.EntryLine{
			{AccountCode: models.AccountReceivableClients, Debit: 1500},
			{AccountCode: models.AccountMarkupRevenue, Credit: 1000},
			{AccountCode: models.AccountInterchangeRevenue, Credit: 500},
		})
		assert.NoError(t, err)
	})

	t.Run("unbalanced rejected", func(t *testing.T) {
		err := models.ValidateBalanced([]models.EntryLine{
			{AccountCode: models.AccountAPICostOfServices, Debit: 10000},
			{AccountCode: models.AccountPlatformCash, Credit: 9999},
		})
		assert.ErrorIs(t, err, common.ErrUnbalancedEntry)
	})

	t.Run("single line rejected", func(t *testing.T) {
		err := models.ValidateBalanced([]models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: 100},
		})
		assert.ErrorIs(t, err, common.ErrEmptyEntrySet)
	})

	t.Run("line with both sides rejected", func(t *testing.T) {
		err := models.ValidateBalanced([]models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: 100, Credit: 100},
			{AccountCode: models.AccountMarkupRevenue, Credit: 0},
		})
		assert.ErrorIs(t, err, common.ErrInvalidEntryLine)
	})

	t.Run("negative side rejected", func(t *testing.T) {
		err := models.ValidateBalanced([]models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: -100},
			{AccountCode: models.AccountMarkupRevenue, Credit: -100},
		})
		assert.ErrorIs(t, err, common.ErrInvalidEntryLine)
	})
}

func TestEntryLine_SignedAmount(t *testing.T) {
	debit := models.EntryLine{AccountCode: models.AccountPlatformCash, Debit: 250}
	credit := models.EntryLine{AccountCode: models.AccountPlatformCash, Credit: 250}

	assert.Equal(t, models.NewMoney(250), debit.SignedAmount())
	assert.Equal(t, models.NewMoney(-250), credit.SignedAmount())

	// a balanced group of signed amounts sums to zero
	sum, err := models.SumMoney(debit.SignedAmount(), credit.SignedAmount())
	assert.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestPostingStatus_CanAdvanceTo(t *testing.T) {
	assert.True(t, models.PostingStatusPending.CanAdvanceTo(models.PostingStatusCommitted))
	assert.True(t, models.PostingStatusPending.CanAdvanceTo(models.PostingStatusSettled))
	assert.True(t, models.PostingStatusCommitted.CanAdvanceTo(models.PostingStatusSettled))

	assert.False(t, models.PostingStatusSettled.CanAdvanceTo(models.PostingStatusCommitted))
	assert.False(t, models.PostingStatusCommitted.CanAdvanceTo(models.PostingStatusPending))
	assert.False(t, models.PostingStatusCommitted.CanAdvanceTo(models.PostingStatusCommitted))
	assert.False(t, models.PostingStatus("bogus").CanAdvanceTo(models.PostingStatusSettled))
}

func TestTransactionSettlement_FullyProcessed(t *testing.T) {
	base := models.TransactionSettlement{
		StripeTransactionID: "ipi_1",
		AmountCents:         10000,
		MarkupFeeCents:      1500,
	}

	t.Run("no journal refs", func(t *testing.T) {
		assert.False(t, base.FullyProcessed())
	})

	t.Run("spend leg only without client", func(t *testing.T) {
		s := base
		s.SpendJournalEntryID = "JRN-1"
		assert.True(t, s.FullyProcessed())
	})

	t.Run("spend leg only with client pending markup", func(t *testing.T) {
		s := base
		s.ClientID = "client_1"
		s.SpendJournalEntryID = "JRN-1"
		assert.False(t, s.FullyProcessed())
	})

	t.Run("both legs with client", func(t *testing.T) {
		s := base
		s.ClientID = "client_1"
		s.SpendJournalEntryID = "JRN-1"
		s.MarkupJournalEntryID = "JRN-2"
		assert.True(t, s.FullyProcessed())
	})

	t.Run("zero markup with client needs no markup leg", func(t *testing.T) {
		s := base
		s.ClientID = "client_1"
		s.MarkupFeeCents = 0
		s.SpendJournalEntryID = "JRN-1"
		assert.True(t, s.FullyProcessed())
	})
}

func TestOrganization_Defaults(t *testing.T) {
	assert.Equal(t, models.DefaultMarkupBasisPoints, models.Organization{}.EffectiveMarkupBasisPoints(0))
	assert.Equal(t, int64(1200), models.Organization{}.EffectiveMarkupBasisPoints(1200))
	assert.Equal(t, int64(2000), models.Organization{MarkupBasisPoints: 2000}.EffectiveMarkupBasisPoints(1200))

	org := models.Organization{
		IssuingBalanceCents:     8000,
		AutoTopupEnabled:        true,
		AutoTopupThresholdCents: 10000,
		AutoTopupAmountCents:    100000,
	}
	assert.True(t, org.NeedsAutoTopup())

	org.IssuingBalanceCents = 10000
	assert.False(t, org.NeedsAutoTopup())

	org.IssuingBalanceCents = 8000
	org.AutoTopupEnabled = false
	assert.False(t, org.NeedsAutoTopup())
}
