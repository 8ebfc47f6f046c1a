package journal

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

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/services/mock"
)

type testJournalHelper struct {
	router             *echo.Echo
	mockJournalService *mock.MockJournalService
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func journalTestHelper(t *testing.T) testJournalHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockJournalService := mock.NewMockJournalService(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockJournalService)

	return testJournalHelper{
		router:             app,
		mockJournalService: mockJournalService,
	}
}

func TestRecordTransaction(t *testing.T) {
	body := `{
		"organizationId": "org_1",
		"description": "manual adjustment",
		"idempotencyKey": "adjust-77",
		"lines": [
			{"accountCode": "5000", "debitCents": 1200},
			{"accountCode": "1000", "creditCents": 1200}
		]
	}`

	t.Run("balanced request returns 201 with the group", func(t *testing.T) {
		testHelper := journalTestHelper(t)

		testHelper.mockJournalService.EXPECT().
			RecordTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req models.RecordTransactionRequest) ([]models.JournalEntry, error) {
				assert.Equal(t, "org_1", req.OrganizationID)
				assert.Equal(t, "adjust-77", req.IdempotencyKey)
				require.Len(t, req.Lines, 2)
				assert.Equal(t, "5000", req.Lines[0].AccountCode)
				return []models.JournalEntry{
					{TransactionGroupID: "JRN-9", AccountCode: "5000", AmountCents: models.NewMoney(1200)},
					{TransactionGroupID: "JRN-9", AccountCode: "1000", AmountCents: models.NewMoney(-1200)},
				}, nil
			})

		rec := doJSON(testHelper.router, http.MethodPost, "/api/v1/journals", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"transactionGroupId":"JRN-9"`)
	})

	t.Run("single line is rejected before the service is called", func(t *testing.T) {
		testHelper := journalTestHelper(t)

		oneLine := `{"organizationId": "org_1", "lines": [{"accountCode": "5000", "debitCents": 100}]}`
		rec := doJSON(testHelper.router, http.MethodPost, "/api/v1/journals", oneLine)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unbalanced group surfaces as 400", func(t *testing.T) {
		testHelper := journalTestHelper(t)

		testHelper.mockJournalService.EXPECT().
			RecordTransaction(gomock.Any(), gomock.Any()).
			Return(nil, models.GetErrMap(models.ErrKeyUnbalancedEntry))

		rec := doJSON(testHelper.router, http.MethodPost, "/api/v1/journals", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), models.ErrKeyUnbalancedEntry)
	})
}

func TestGetGroup(t *testing.T) {
	t.Run("unknown group returns 404", func(t *testing.T) {
		testHelper := journalTestHelper(t)

		testHelper.mockJournalService.EXPECT().
			GetGroup(gomock.Any(), "JRN-404").
			Return(nil, models.GetErrMap(models.ErrKeyJournalGroupNotFound, "JRN-404"))

		rec := doJSON(testHelper.router, http.MethodGet, "/api/v1/journals/JRN-404", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReverseTransaction(t *testing.T) {
	testHelper := journalTestHelper(t)

	testHelper.mockJournalService.EXPECT().
		ReverseTransaction(gomock.Any(), "JRN-9", "chargeback").
		Return([]models.JournalEntry{
			{TransactionGroupID: "JRN-10", AccountCode: "1000", AmountCents: models.NewMoney(1200)},
			{TransactionGroupID: "JRN-10", AccountCode: "5000", AmountCents: models.NewMoney(-1200)},
		}, nil)

	rec := doJSON(testHelper.router, http.MethodPost, "/api/v1/journals/JRN-9/reverse", `{"description":"chargeback"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transactionGroupId":"JRN-10"`)
}

func TestAdvanceStatus(t *testing.T) {
	t.Run("valid transition returns 204", func(t *testing.T) {
		testHelper := journalTestHelper(t)

		testHelper.mockJournalService.EXPECT().
			AdvanceGroupStatus(gomock.Any(), "JRN-9", models.PostingStatusCommitted).
			Return(nil)

		rec := doJSON(testHelper.router, http.MethodPatch, "/api/v1/journals/JRN-9/status", `{"status":"committed"}`)
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		testHelper := journalTestHelper(t)

		rec := doJSON(testHelper.router, http.MethodPatch, "/api/v1/journals/JRN-9/status", `{"status":"archived"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrialBalance(t *testing.T) {
	testHelper := journalTestHelper(t)

	testHelper.mockJournalService.EXPECT().
		TrialBalance(gomock.Any()).
		Return([]models.TrialBalanceRow{
			{AccountCode: "1000", NetCents: models.NewMoney(48500)},
			{AccountCode: "5000", NetCents: models.NewMoney(-48500)},
		}, nil)

	rec := doJSON(testHelper.router, http.MethodGet, "/api/v1/journals/trial-balance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_rows":2`)
}

func doJSON(router *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
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
