package http

import (
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/svnhec/qoda-sub003/internal/common"
	"github.com/svnhec/qoda-sub003/internal/models"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestTotalRowResponseModel struct {
		Kind      string      `json:"kind" example:"collection"`
		Contents  interface{} `json:"contents"`
		TotalRows int         `json:"total_rows" example:"100"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestSuccessResponseListWithTotalRows(c echo.Context, data interface{}, totalRows int) error {
	return c.JSON(http.StatusOK, RestTotalRowResponseModel{
		Kind:      "collection",
		Contents:  data,
		TotalRows: totalRows,
	})
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok {
			res.Message = msg
		}
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

var errorStatusByCode = map[string]int{
	models.ErrKeyDataNotFound:         http.StatusNotFound,
	models.ErrKeyOrganizationNotFound: http.StatusNotFound,
	models.ErrKeyAgentNotFound:        http.StatusNotFound,
	models.ErrKeyCardNotFound:         http.StatusNotFound,
	models.ErrKeySettlementNotFound:   http.StatusNotFound,
	models.ErrKeyJournalGroupNotFound: http.StatusNotFound,
	models.ErrKeyUnbalancedEntry:      http.StatusBadRequest,
	models.ErrKeyInvalidSignature:     http.StatusBadRequest,
	models.ErrKeyInsufficientFunds:    http.StatusUnprocessableEntity,
	models.ErrKeyDatabaseError:        http.StatusInternalServerError,
}

// RestServiceErrorResponse maps service errors onto REST status codes.
func RestServiceErrorResponse(c echo.Context, err error) error {
	statusCode := http.StatusInternalServerError

	var detail models.ErrorDetail
	switch {
	case errors.As(err, &detail):
		if code, ok := errorStatusByCode[detail.Code]; ok {
			statusCode = code
		}
	case errors.Is(err, common.ErrValidation):
		statusCode = http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidStatus):
		statusCode = http.StatusConflict
	case errors.Is(err, common.ErrInsufficientFunds):
		statusCode = http.StatusUnprocessableEntity
	}

	return RestErrorResponse(c, statusCode, err)
}

func RestErrorValidationResponse(c echo.Context, errs interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}
