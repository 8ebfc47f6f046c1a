package webhook

import (
	"errors"
	"io"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/common/signature"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type webhookHandler struct {
	settlementService services.SettlementService
}

// New webhook handler will initialize the webhooks/ resources endpoint.
// The route is authenticated by the payload signature, not the secret key
// middleware, because the card network signs its own deliveries.
func New(app *echo.Group, settlementSrv services.SettlementService) {
	wh := webhookHandler{settlementService: settlementSrv}
	webhooks := app.Group("/webhooks")
	webhooks.POST("/settlements", wh.handleSettlement())
}

// handleSettlement answers 2xx only once the settlement is durably
// processed. Permanent failures get a 4xx so the sender stops retrying;
// everything else gets a 5xx so the delivery is retried and resumed.
func (wh webhookHandler) handleSettlement() echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		sigHeader := c.Request().Header.Get(signature.Header)

		res, err := wh.settlementService.ProcessSettlement(c.Request().Context(), raw, sigHeader)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrAuthentication):
				return http.RestErrorResponse(c, nethttp.StatusUnauthorized, err)
			case common.PermanentError(err):
				return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			default:
				return http.RestErrorResponse(c, nethttp.StatusInternalServerError, err)
			}
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, res)
	}
}
