package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PageSize is the fixed window for file listings.
const PageSize = 20

// PageParam extracts the zero-based page number from the request.
// Anything unparseable or negative falls back to the first page.
func PageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}
