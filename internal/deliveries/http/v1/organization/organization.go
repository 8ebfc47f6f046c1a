package organization

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type organizationHandler struct {
	balanceService services.BalanceService
	fundingService services.FundingService
	journalService services.JournalService
}

// New organization handler will initialize the organizations/ resources endpoint
func New(app *echo.Group,
	balanceSrv services.BalanceService,
	fundingSrv services.FundingService,
	journalSrv services.JournalService) {
	oh := organizationHandler{
		balanceService: balanceSrv,
		fundingService: fundingSrv,
		journalService: journalSrv,
	}
	organizations := app.Group("/organizations")
	organizations.GET("/:organizationId", oh.getOrganization())
	organizations.GET("/:organizationId/balance", oh.getBalance())
	organizations.POST("/:organizationId/top-ups", oh.topUp())
	organizations.POST("/:organizationId/deductions", oh.deductFunds())
	organizations.GET("/:organizationId/fundings", oh.listFundings())
	organizations.GET("/:organizationId/journal-entries", oh.listJournalEntries())
}

func (oh organizationHandler) getOrganization() echo.HandlerFunc {
	return func(c echo.Context) error {
		org, err := oh.balanceService.GetOrganization(c.Request().Context(), c.Param("organizationId"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, org)
	}
}

type getBalanceResponse struct {
	OrganizationID string       `json:"organizationId"`
	BalanceCents   models.Money `json:"balanceCents"`
}

func (oh organizationHandler) getBalance() echo.HandlerFunc {
	return func(c echo.Context) error {
		organizationID := c.Param("organizationId")

		balanceCents, err := oh.balanceService.GetBalance(c.Request().Context(), organizationID)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, getBalanceResponse{
			OrganizationID: organizationID,
			BalanceCents:   balanceCents,
		})
	}
}

func (oh organizationHandler) topUp() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.TopUpRequest)
		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		req.OrganizationID = c.Param("organizationId")

		res, err := oh.fundingService.TopUp(c.Request().Context(), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
	}
}

func (oh organizationHandler) deductFunds() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DeductFundsRequest)
		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		req.OrganizationID = c.Param("organizationId")

		res, err := oh.balanceService.DeductFunds(c.Request().Context(), *req)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusCreated, res)
	}
}

func (oh organizationHandler) listFundings() echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, offset := http.ParseLimitOffset(c, 50)

		fundings, err := oh.fundingService.ListByOrganization(c.Request().Context(), c.Param("organizationId"), limit, offset)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, fundings, len(fundings))
	}
}

func (oh organizationHandler) listJournalEntries() echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, offset := http.ParseLimitOffset(c, 50)

		opts := models.JournalFilterOptions{
			OrganizationID: c.Param("organizationId"),
			AccountCode:    c.QueryParam("accountCode"),
			PostingStatus:  models.PostingStatus(c.QueryParam("status")),
			Limit:          limit,
			Offset:         offset,
		}

		entries, err := oh.journalService.List(c.Request().Context(), opts)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, entries, len(entries))
	}
}
