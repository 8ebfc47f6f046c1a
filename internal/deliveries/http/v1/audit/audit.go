package audit

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type auditHandler struct {
	auditService services.AuditService
}

// New audit handler will initialize the audit-logs/ resources endpoint
func New(app *echo.Group, auditSrv services.AuditService) {
	ah := auditHandler{auditService: auditSrv}
	audits := app.Group("/audit-logs")
	audits.GET("", ah.listByResource())
}

func (ah auditHandler) listByResource() echo.HandlerFunc {
	return func(c echo.Context) error {
		resourceType := c.QueryParam("resourceType")
		resourceID := c.QueryParam("resourceId")
		if resourceType == "" || resourceID == "" {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest,
				echo.NewHTTPError(nethttp.StatusBadRequest, "resourceType and resourceId are required"))
		}

		limit, offset := http.ParseLimitOffset(c, 50)

		entries, err := ah.auditService.ListByResource(c.Request().Context(), resourceType, resourceID, limit, offset)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, entries, len(entries))
	}
}
