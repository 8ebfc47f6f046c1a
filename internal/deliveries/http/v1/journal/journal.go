package journal

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/common/http"
	"github.com/svnhec/qoda-sub003/internal/models"
	"github.com/svnhec/qoda-sub003/internal/services"
)

type journalHandler struct {
	journalService services.JournalService
}

// New journal handler will initialize the journals/ resources endpoint
func New(app *echo.Group, journalSrv services.JournalService) {
	jh := journalHandler{journalService: journalSrv}
	journals := app.Group("/journals")
	journals.POST("", jh.recordTransaction())
	journals.GET("/trial-balance", jh.trialBalance())
	journals.GET("/:transactionGroupId", jh.getGroup())
	journals.POST("/:transactionGroupId/reverse", jh.reverseTransaction())
	journals.PATCH("/:transactionGroupId/status", jh.advanceStatus())
}

func (jh journalHandler) recordTransaction() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoRecordJournalRequest)
		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		if err := common.ValidateStruct(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		entries, err := jh.journalService.RecordTransaction(c.Request().Context(), req.ToRecordTransactionRequest())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusCreated, entries)
	}
}

func (jh journalHandler) getGroup() echo.HandlerFunc {
	return func(c echo.Context) error {
		entries, err := jh.journalService.GetGroup(c.Request().Context(), c.Param("transactionGroupId"))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, entries)
	}
}

func (jh journalHandler) reverseTransaction() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoReverseJournalRequest)
		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		entries, err := jh.journalService.ReverseTransaction(c.Request().Context(), c.Param("transactionGroupId"), req.Description)
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponse(c, nethttp.StatusCreated, entries)
	}
}

func (jh journalHandler) advanceStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.DoAdvanceStatusRequest)
		if err := c.Bind(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		if err := common.ValidateStruct(req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		err := jh.journalService.AdvanceGroupStatus(c.Request().Context(), c.Param("transactionGroupId"), models.PostingStatus(req.Status))
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return c.NoContent(nethttp.StatusNoContent)
	}
}

func (jh journalHandler) trialBalance() echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := jh.journalService.TrialBalance(c.Request().Context())
		if err != nil {
			return http.RestServiceErrorResponse(c, err)
		}

		return http.RestSuccessResponseListWithTotalRows(c, rows, len(rows))
	}
}
