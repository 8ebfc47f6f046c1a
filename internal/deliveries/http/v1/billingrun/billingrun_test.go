package billingrun

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svnhec/qoda-sub003/internal/common/log"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/services/mock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func billingRunTestHelper(t *testing.T) (*echo.Echo, *mock.MockBillingService) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockBillingService := mock.NewMockBillingService(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockBillingService)

	return app, mockBillingService
}

func doRun(router *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/runs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRunCycle(t *testing.T) {
	router, mockBillingService := billingRunTestHelper(t)

	cutoff := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	mockBillingService.EXPECT().
		RunBillingCycle(gomock.Any(), cutoff).
		Return(models.BillingRunSummary{
			Cutoff:            cutoff,
			ClientsProcessed:  3,
			SettlementsBilled: 12,
			SpendCents:        models.NewMoney(100000),
			MarkupCents:       models.NewMoney(15000),
			TotalRebillCents:  models.NewMoney(115000),
		}, nil)

	rec := doRun(router, `{"cutoff":"2026-08-25T00:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientsProcessed":3`)
}

func TestRunCycle_PartialFailureReturnsMultiStatus(t *testing.T) {
	router, mockBillingService := billingRunTestHelper(t)

	mockBillingService.EXPECT().
		RunBillingCycle(gomock.Any(), gomock.Any()).
		Return(models.BillingRunSummary{
			ClientsProcessed: 2,
			ClientsFailed:    1,
		}, models.GetErrMap(models.ErrKeyDatabaseError, "client client_3: push failed"))

	rec := doRun(router, `{"cutoff":"2026-08-25T00:00:00Z"}`)

	require.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clientsFailed":1`)
}

func TestRunCycle_TotalFailureReturnsServerError(t *testing.T) {
	router, mockBillingService := billingRunTestHelper(t)

	mockBillingService.EXPECT().
		RunBillingCycle(gomock.Any(), gomock.Any()).
		Return(models.BillingRunSummary{}, models.GetErrMap(models.ErrKeyDatabaseError))

	rec := doRun(router, `{"cutoff":"2026-08-25T00:00:00Z"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), models.ErrKeyDatabaseError)
}
