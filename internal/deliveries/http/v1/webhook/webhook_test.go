package webhook

import (
	"errors"
	"fmt"
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
	"github.com/svnhec/qoda-sub003/internal/common/signature"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/services/mock"
)

type testWebhookHelper struct {
	router                *echo.Echo
	mockSettlementService *mock.MockSettlementService
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func webhookTestHelper(t *testing.T) testWebhookHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockSettlementService := mock.NewMockSettlementService(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSettlementService)

	return testWebhookHelper{
		router:                app,
		mockSettlementService: mockSettlementService,
	}
}

func TestHandleSettlement(t *testing.T) {
	payload := `{"id":"ipi_1","amount":-2500,"currency":"usd"}`
	sigHeader := fmt.Sprintf("t=1756166400,v1=%064d", 0)

	tests := []struct {
		name     string
		doMock   func(h testWebhookHelper)
		wantCode int
		wantBody string
	}{
		{
			name: "processed settlement returns 200",
			doMock: func(h testWebhookHelper) {
				h.mockSettlementService.EXPECT().
					ProcessSettlement(gomock.Any(), []byte(payload), sigHeader).
					Return(models.ProcessSettlementResult{
						SettlementID:        "STL-1",
						StripeTransactionID: "ipi_1",
						AmountCents:         models.NewMoney(2500),
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"settlementId":"STL-1"`,
		},
		{
			name: "bad signature returns 401",
			doMock: func(h testWebhookHelper) {
				h.mockSettlementService.EXPECT().
					ProcessSettlement(gomock.Any(), []byte(payload), sigHeader).
					Return(models.ProcessSettlementResult{}, fmt.Errorf("verify: %w", common.ErrAuthentication))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "malformed payload returns 400 so delivery is not retried",
			doMock: func(h testWebhookHelper) {
				h.mockSettlementService.EXPECT().
					ProcessSettlement(gomock.Any(), []byte(payload), sigHeader).
					Return(models.ProcessSettlementResult{}, fmt.Errorf("decode: %w", common.ErrValidation))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "transient failure returns 500 so delivery is retried",
			doMock: func(h testWebhookHelper) {
				h.mockSettlementService.EXPECT().
					ProcessSettlement(gomock.Any(), []byte(payload), sigHeader).
					Return(models.ProcessSettlementResult{}, errors.New("db connection lost"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper := webhookTestHelper(t)
			tt.doMock(testHelper)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/settlements", strings.NewReader(payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(signature.Header, sigHeader)
			rec := httptest.NewRecorder()

			testHelper.router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
