package params

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"social-events-api/core/constants"
)

// QueryParams holds the common pagination query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// NewQueryParams parses page/pageSize from the request, falling back to defaults.
func NewQueryParams(ctx echo.Context) *QueryParams {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil || page < 1 {
		page = constants.DefaultPageNumber
	}

	size, err := strconv.Atoi(ctx.QueryParam("pageSize"))
	if err != nil || size < 1 || size > 100 {
		size = constants.DefaultPageSize
	}

	return &QueryParams{PageNumber: page, PageSize: size}
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}
