package http

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxPageSize = 500

// ParseLimitOffset reads limit/offset query params, clamping the limit so a
// single page can never drag the whole table.
func ParseLimitOffset(c echo.Context, defaultLimit uint64) (limit, offset uint64) {
	limit = defaultLimit

	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	if raw := c.QueryParam("offset"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = v
		}
	}

	return limit, offset
}
