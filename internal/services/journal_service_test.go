package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
)

func TestRecordTransaction(t *testing.T) {
	testHelper := serviceTestHelper(t)

	req := models.RecordTransactionRequest{
		OrganizationID: "org_1",
		Description:    "subscription revenue",
		IdempotencyKey: "sub_2026_08",
		Lines: []models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: models.NewMoney(9900)},
			{AccountCode: models.AccountSubscriptionRevenue, Credit: models.NewMoney(9900)},
		},
	}

	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "sub_2026_08").
		Return(nil, nil)
	testHelper.mockIDGenerator.EXPECT().
		Generate(models.TransactionGroupIDPrefix).
		Return("JRN-10")

	passthroughAtomic(testHelper)
	testHelper.mockJournalRepository.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*models.JournalEntry) error {
			require.Len(t, entries, 2)

			var sum models.Money
			for _, en := range entries {
				assert.Equal(t, "JRN-10", en.TransactionGroupID)
				assert.Equal(t, models.PostingStatusPending, en.PostingStatus)
				sum += en.AmountCents
			}
			assert.True(t, sum.IsZero())
			return nil
		})
	testHelper.mockAuditRepository.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.AuditLogEntry) error {
			assert.Equal(t, models.AuditActionJournalRecorded, entry.Action)
			assert.Equal(t, "JRN-10", entry.ResourceID)
			return nil
		})

	entries, err := testHelper.journalService.RecordTransaction(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecordTransaction_IdempotentReplay(t *testing.T) {
	testHelper := serviceTestHelper(t)

	req := models.RecordTransactionRequest{
		OrganizationID: "org_1",
		IdempotencyKey: "sub_2026_08",
		Lines: []models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: models.NewMoney(9900)},
			{AccountCode: models.AccountSubscriptionRevenue, Credit: models.NewMoney(9900)},
		},
	}

	previous := []models.JournalEntry{
		{TransactionGroupID: "JRN-EXISTING", AccountCode: models.AccountPlatformCash, AmountCents: models.NewMoney(9900)},
		{TransactionGroupID: "JRN-EXISTING", AccountCode: models.AccountSubscriptionRevenue, AmountCents: models.NewMoney(-9900)},
	}
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "sub_2026_08").
		Return(previous, nil)

	entries, err := testHelper.journalService.RecordTransaction(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "JRN-EXISTING", entries[0].TransactionGroupID)
}

func TestRecordTransaction_LostInsertRaceReplaysWinner(t *testing.T) {
	testHelper := serviceTestHelper(t)

	req := models.RecordTransactionRequest{
		OrganizationID: "org_1",
		IdempotencyKey: "sub_2026_08",
		Lines: []models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: models.NewMoney(9900)},
			{AccountCode: models.AccountSubscriptionRevenue, Credit: models.NewMoney(9900)},
		},
	}

	// the key is unseen when this writer checks, but a concurrent writer
	// commits first and the insert loses at the unique index
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "sub_2026_08").
		Return(nil, nil)
	testHelper.mockIDGenerator.EXPECT().
		Generate(models.TransactionGroupIDPrefix).
		Return("JRN-LOSER")

	passthroughAtomic(testHelper)
	testHelper.mockJournalRepository.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: idempotency key %q", common.ErrDuplicateEvent, "sub_2026_08"))

	winner := []models.JournalEntry{
		{TransactionGroupID: "JRN-WINNER", AccountCode: models.AccountPlatformCash, AmountCents: models.NewMoney(9900)},
		{TransactionGroupID: "JRN-WINNER", AccountCode: models.AccountSubscriptionRevenue, AmountCents: models.NewMoney(-9900)},
	}
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "sub_2026_08").
		Return(winner, nil)

	entries, err := testHelper.journalService.RecordTransaction(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "JRN-WINNER", entries[0].TransactionGroupID)
}

func TestRecordTransaction_RejectsUnbalanced(t *testing.T) {
	testHelper := serviceTestHelper(t)

	req := models.RecordTransactionRequest{
		OrganizationID: "org_1",
		Lines: []models.EntryLine{
			{AccountCode: models.AccountPlatformCash, Debit: models.NewMoney(100)},
			{AccountCode: models.AccountSubscriptionRevenue, Credit: models.NewMoney(99)},
		},
	}

	_, err := testHelper.journalService.RecordTransaction(context.Background(), req)

	require.Error(t, err)
	var detail models.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, models.ErrKeyUnbalancedEntry, detail.Code)
}

func TestReverseTransaction(t *testing.T) {
	testHelper := serviceTestHelper(t)

	original := []models.JournalEntry{
		{
			TransactionGroupID: "JRN-1",
			AccountCode:        models.AccountAPICostOfServices,
			AmountCents:        models.NewMoney(5000),
			OrganizationID:     "org_1",
			CreatedAt:          time.Now().UTC().Add(-24 * time.Hour),
		},
		{
			TransactionGroupID: "JRN-1",
			AccountCode:        models.AccountPlatformCash,
			AmountCents:        models.NewMoney(-5000),
			OrganizationID:     "org_1",
			CreatedAt:          time.Now().UTC().Add(-24 * time.Hour),
		},
	}

	testHelper.mockJournalRepository.EXPECT().
		GetGroup(gomock.Any(), "JRN-1").
		Return(original, nil)
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "reversal:JRN-1").
		Return(nil, nil)
	testHelper.mockIDGenerator.EXPECT().
		Generate(models.TransactionGroupIDPrefix, "REV").
		Return("JRN-REV-1")

	passthroughAtomic(testHelper)
	testHelper.mockJournalRepository.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entries []*models.JournalEntry) error {
			require.Len(t, entries, 2)
			assert.Equal(t, models.NewMoney(-5000), entries[0].AmountCents)
			assert.Equal(t, models.NewMoney(5000), entries[1].AmountCents)
			assert.Equal(t, "JRN-1", entries[0].Metadata["reversalOf"])
			return nil
		})
	testHelper.mockAuditRepository.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	entries, err := testHelper.journalService.ReverseTransaction(context.Background(), "JRN-1", "merchant refund")

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "JRN-REV-1", entries[0].TransactionGroupID)
}

func TestReverseTransaction_AlreadyReversed(t *testing.T) {
	testHelper := serviceTestHelper(t)

	original := []models.JournalEntry{
		{TransactionGroupID: "JRN-1", AmountCents: models.NewMoney(5000), CreatedAt: time.Now().UTC()},
		{TransactionGroupID: "JRN-1", AmountCents: models.NewMoney(-5000), CreatedAt: time.Now().UTC()},
	}
	reversal := []models.JournalEntry{
		{TransactionGroupID: "JRN-REV-1", AmountCents: models.NewMoney(-5000)},
		{TransactionGroupID: "JRN-REV-1", AmountCents: models.NewMoney(5000)},
	}

	testHelper.mockJournalRepository.EXPECT().
		GetGroup(gomock.Any(), "JRN-1").
		Return(original, nil)
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "reversal:JRN-1").
		Return(reversal, nil)

	entries, err := testHelper.journalService.ReverseTransaction(context.Background(), "JRN-1", "again")

	require.NoError(t, err)
	assert.Equal(t, "JRN-REV-1", entries[0].TransactionGroupID)
}

func TestReverseTransaction_LostInsertRaceReplaysWinner(t *testing.T) {
	testHelper := serviceTestHelper(t)

	original := []models.JournalEntry{
		{TransactionGroupID: "JRN-1", AccountCode: models.AccountAPICostOfServices, AmountCents: models.NewMoney(5000), OrganizationID: "org_1", CreatedAt: time.Now().UTC()},
		{TransactionGroupID: "JRN-1", AccountCode: models.AccountPlatformCash, AmountCents: models.NewMoney(-5000), OrganizationID: "org_1", CreatedAt: time.Now().UTC()},
	}

	testHelper.mockJournalRepository.EXPECT().
		GetGroup(gomock.Any(), "JRN-1").
		Return(original, nil)
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "reversal:JRN-1").
		Return(nil, nil)
	testHelper.mockIDGenerator.EXPECT().
		Generate(models.TransactionGroupIDPrefix, "REV").
		Return("JRN-REV-LOSER")

	passthroughAtomic(testHelper)
	testHelper.mockJournalRepository.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: idempotency key %q", common.ErrDuplicateEvent, "reversal:JRN-1"))

	winner := []models.JournalEntry{
		{TransactionGroupID: "JRN-REV-WINNER", AmountCents: models.NewMoney(-5000)},
		{TransactionGroupID: "JRN-REV-WINNER", AmountCents: models.NewMoney(5000)},
	}
	testHelper.mockJournalRepository.EXPECT().
		GetGroupByIdempotencyKey(gomock.Any(), "reversal:JRN-1").
		Return(winner, nil)

	entries, err := testHelper.journalService.ReverseTransaction(context.Background(), "JRN-1", "merchant refund")

	require.NoError(t, err)
	assert.Equal(t, "JRN-REV-WINNER", entries[0].TransactionGroupID)
}

func TestReverseTransaction_TooOld(t *testing.T) {
	testHelper := serviceTestHelper(t)

	stale := time.Now().UTC().AddDate(0, 0, -testHelper.config.Ledger.ReversalTimeRangeDays-1)
	original := []models.JournalEntry{
		{TransactionGroupID: "JRN-OLD", AmountCents: models.NewMoney(100), CreatedAt: stale},
		{TransactionGroupID: "JRN-OLD", AmountCents: models.NewMoney(-100), CreatedAt: stale},
	}

	testHelper.mockJournalRepository.EXPECT().
		GetGroup(gomock.Any(), "JRN-OLD").
		Return(original, nil)

	_, err := testHelper.journalService.ReverseTransaction(context.Background(), "JRN-OLD", "too late")

	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAdvanceGroupStatus_RejectsRegression(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockJournalRepository.EXPECT().
		UpdateGroupStatus(gomock.Any(), "JRN-1", models.PostingStatusPending).
		Return(common.ErrInvalidStatus)

	err := testHelper.journalService.AdvanceGroupStatus(context.Background(), "JRN-1", models.PostingStatusPending)

	assert.ErrorIs(t, err, common.ErrInvalidStatus)
}

func TestTrialBalance_PassesThrough(t *testing.T) {
	testHelper := serviceTestHelper(t)

	rows := []models.TrialBalanceRow{
		{AccountCode: models.AccountAPICostOfServices, NetCents: models.NewMoney(5000)},
		{AccountCode: models.AccountPlatformCash, NetCents: models.NewMoney(-5000)},
	}
	testHelper.mockJournalRepository.EXPECT().
		TrialBalance(gomock.Any()).
		Return(rows, nil)

	got, err := testHelper.journalService.TrialBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
