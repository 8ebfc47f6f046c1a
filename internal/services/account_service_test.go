package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
)

func TestGetChart(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockAccountRepository.EXPECT().
		GetList(gomock.Any()).
		Return(models.SeedAccounts(), nil)

	res, err := testHelper.accountService.GetChart(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, len(models.SeedAccounts()))
}

func TestGetByCode_NotFound(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockAccountRepository.EXPECT().
		GetByCode(gomock.Any(), "9999").
		Return(models.Account{}, common.ErrDataNotFound)

	_, err := testHelper.accountService.GetByCode(context.Background(), "9999")

	require.Error(t, err)
	var detail models.ErrorDetail
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, models.ErrKeyDataNotFound, detail.Code)
}

func TestSeedChart(t *testing.T) {
	testHelper := serviceTestHelper(t)

	testHelper.mockAccountRepository.EXPECT().
		Seed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, accounts []models.Account) error {
			codes := make(map[string]bool, len(accounts))
			for _, a := range accounts {
				codes[a.Code] = true
			}
			assert.True(t, codes[models.AccountPlatformCash])
			assert.True(t, codes[models.AccountAgencyDeposits])
			assert.True(t, codes[models.AccountMarkupRevenue])
			assert.True(t, codes[models.AccountAPICostOfServices])
			return nil
		})

	err := testHelper.accountService.SeedChart(context.Background())

	require.NoError(t, err)
}
