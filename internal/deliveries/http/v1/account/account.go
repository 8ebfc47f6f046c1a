package account

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type accountHandler struct {
	accountService services.AccountService
}

// New account handler will initialize the accounts/ resources endpoint
func New(app *echo.Group, accountSrv services.AccountService) {
	ah := accountHandler{accountService: accountSrv}
	accounts := app.Group("/accounts")
	accounts.GET("", ah.getChart())
	accounts.GET("/:code", ah.getByCode())
}

func (ah accountHandler) getChart() echo.HandlerFunc {
	return func(c echo.Context) error {
		chart, err := ah.accountService.GetChart(c.Request().Context())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, chart, len(chart))
	}
}

func (ah accountHandler) getByCode() echo.HandlerFunc {
	return func(c echo.Context) error {
		acc, err := ah.accountService.GetByCode(c.Request().Context(), c.Param("code"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, acc)
	}
}
