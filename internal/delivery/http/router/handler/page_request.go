// Package handler contains the HTTP handlers for the application.
package handler

import (
	"webshop/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// pageRequest binds the shared listing query parameters.
type pageRequest struct {
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
	Search   string `query:"search"`
}

// bindPagination reads the paging window from the query string. Absent
// or malformed values fall back to the defaults downstream.
func bindPagination(c echo.Context) repository.Pagination {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return repository.Pagination{}
	}

	return repository.Pagination{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	}
}
