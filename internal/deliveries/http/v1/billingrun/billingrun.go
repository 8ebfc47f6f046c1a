package billingrun

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type billingRunHandler struct {
	billingService services.BillingService
}

// New billing run handler will initialize the billing/ resources endpoint.
// The scheduled path is the worker job; this endpoint exists for manual
// reruns after an incident.
func New(app *echo.Group, billingSrv services.BillingService) {
	bh := billingRunHandler{billingService: billingSrv}
	billing := app.Group("/billing")
	billing.POST("/runs", bh.runCycle())
}

type doRunBillingCycleRequest struct {
	Cutoff time.Time `json:"cutoff"`
}

func (bh billingRunHandler) runCycle() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(doRunBillingCycleRequest)
		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		cutoff := req.Cutoff
		if cutoff.IsZero() {
			cutoff = common.Now()
		}

		summary, err := bh.billingService.RunBillingCycle(c.Request().Context(), cutoff)
		if err != nil {
			// partial runs still return the summary so the operator can see
			// which clients need a rerun; a run where nothing was billed is
			// a plain failure
			if summary.ClientsProcessed > 0 {
				return http.RestSuccessResponse(c, nethttp.StatusMultiStatus, summary)
			}
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, summary)
	}
}
