package settlement

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type settlementHandler struct {
	settlementService services.SettlementService
}

// New settlement handler will initialize the settlements/ resources endpoint
func New(app *echo.Group, settlementSrv services.SettlementService) {
	sh := settlementHandler{settlementService: settlementSrv}
	settlements := app.Group("/settlements")
	settlements.GET("/:settlementId", sh.getByID())
}

func (sh settlementHandler) getByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		res, err := sh.settlementService.GetByID(c.Request().Context(), c.Param("settlementId"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, res)
	}
}
