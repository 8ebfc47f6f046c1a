package organization

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/services/mock"
)

type testOrganizationHelper struct {
	router             *echo.Echo
	mockBalanceService *mock.MockBalanceService
	mockFundingService *mock.MockFundingService
	mockJournalService *mock.MockJournalService
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func organizationTestHelper(t *testing.T) testOrganizationHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockBalanceService := mock.NewMockBalanceService(mockCtrl)
	mockFundingService := mock.NewMockFundingService(mockCtrl)
	mockJournalService := mock.NewMockJournalService(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockBalanceService, mockFundingService, mockJournalService)

	return testOrganizationHelper{
		router:             app,
		mockBalanceService: mockBalanceService,
		mockFundingService: mockFundingService,
		mockJournalService: mockJournalService,
	}
}

func TestGetBalance(t *testing.T) {
	t.Run("returns the issuing balance", func(t *testing.T) {
		testHelper := organizationTestHelper(t)

		testHelper.mockBalanceService.EXPECT().
			GetBalance(gomock.Any(), "org_1").
			Return(models.NewMoney(75000), nil)

		rec := doRequest(testHelper.router, http.MethodGet, "/api/v1/organizations/org_1/balance", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"balanceCents":75000`)
	})

	t.Run("unknown organization returns 404", func(t *testing.T) {
		testHelper := organizationTestHelper(t)

		testHelper.mockBalanceService.EXPECT().
			GetBalance(gomock.Any(), "org_404").
			Return(models.NewMoney(0), models.GetErrMap(models.ErrKeyOrganizationNotFound, "org_404"))

		rec := doRequest(testHelper.router, http.MethodGet, "/api/v1/organizations/org_404/balance", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), models.ErrKeyOrganizationNotFound)
	})
}

func TestTopUp(t *testing.T) {
	t.Run("path param wins over payload organization id", func(t *testing.T) {
		testHelper := organizationTestHelper(t)

		testHelper.mockFundingService.EXPECT().
			TopUp(gomock.Any(), models.TopUpRequest{
				OrganizationID:     "org_1",
				AmountCents:        50000,
				ExternalTransferID: "wire_900",
			}).
			Return(models.TopUpResult{FundingTransactionID: "FND-1", BalanceCents: models.NewMoney(125000)}, nil)

		body := `{"organizationId":"org_other","amountCents":50000,"externalTransferId":"wire_900"}`
		rec := doRequest(testHelper.router, http.MethodPost, "/api/v1/organizations/org_1/top-ups", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fundingTransactionId":"FND-1"`)
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		testHelper := organizationTestHelper(t)

		testHelper.mockFundingService.EXPECT().
			TopUp(gomock.Any(), gomock.Any()).
			Return(models.TopUpResult{}, common.ErrValidation)

		rec := doRequest(testHelper.router, http.MethodPost, "/api/v1/organizations/org_1/top-ups", `{"amountCents":0}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeductFunds(t *testing.T) {
	t.Run("returns the withdrawal and the resulting balance", func(t *testing.T) {
		testHelper := organizationTestHelper(t)

		testHelper.mockBalanceService.EXPECT().
			DeductFunds(gomock.Any(), models.DeductFundsRequest{
				OrganizationID:     "org_1",
				AmountCents:        20000,
				ExternalTransferID: "wire_901",
				Description:        "payout to agency",
			}).
			Return(models.DeductFundsResult{FundingTransactionID: "FND-9", BalanceCents: models.NewMoney(55000)}, nil)

		body := `{"amountCents":20000,"externalTransferId":"wire_901","description":"payout to agency"}`
		rec := doRequest(testHelper.router, http.MethodPost, "/api/v1/organizations/org_1/deductions", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fundingTransactionId":"FND-9"`)
		assert.Contains(t, rec.Body.String(), `"balanceCents":55000`)
	})

	t.Run("insufficient balance returns 422", func(t *testing.T) {
		testHelper := organizationTestHelper(t)

		testHelper.mockBalanceService.EXPECT().
			DeductFunds(gomock.Any(), gomock.Any()).
			Return(models.DeductFundsResult{}, models.GetErrMap(models.ErrKeyInsufficientFunds))

		rec := doRequest(testHelper.router, http.MethodPost, "/api/v1/organizations/org_1/deductions", `{"amountCents":999999}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), models.ErrKeyInsufficientFunds)
	})
}

func TestListFundings(t *testing.T) {
	testHelper := organizationTestHelper(t)

	testHelper.mockFundingService.EXPECT().
		ListByOrganization(gomock.Any(), "org_1", uint64(2), uint64(0)).
		Return([]models.FundingTransaction{
			{ID: "FND-1", OrganizationID: "org_1"},
			{ID: "FND-2", OrganizationID: "org_1"},
		}, nil)

	rec := doRequest(testHelper.router, http.MethodGet, "/api/v1/organizations/org_1/fundings?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_rows":2`)
}

func TestListJournalEntries(t *testing.T) {
	testHelper := organizationTestHelper(t)

	testHelper.mockJournalService.EXPECT().
		List(gomock.Any(), models.JournalFilterOptions{
			OrganizationID: "org_1",
			AccountCode:    "5000",
			Limit:          50,
			Offset:         10,
		}).
		Return([]models.JournalEntry{}, nil)

	rec := doRequest(testHelper.router, http.MethodGet, "/api/v1/organizations/org_1/journal-entries?offset=10&accountCode=5000", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_rows":0`)
}

func doRequest(router *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
