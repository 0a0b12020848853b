package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petmart/petmart-api/internal/model"
	"github.com/petmart/petmart-api/internal/repository"
)

// CatalogHandler serves the public, read-only catalog endpoints.
type CatalogHandler struct {
	Products *repository.ProductRepo
}

func NewCatalogHandler(p *repository.ProductRepo) *CatalogHandler {
	return &CatalogHandler{Products: p}
}

// List returns one page of the catalog. Paging is 1-based; out-of-range
// pages return an empty items array, never an error. The optional search
// term matches name and description, and the optional status filter narrows
// to one adoption state.
//
// GET /api/products?page=&size=&search=&status=
func (h *CatalogHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size < 1 {
		size = 12
	}
	if size > 100 {
		size = 100
	}

	q := repository.ListQuery{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Page:     page,
		PageSize: size,
	}
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		status, err := model.ParseProductStatus(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":  "validation_failed",
				"fields": map[string]string{"status": "must be one of AVAILABLE, PENDING, ADOPTED"},
			})
		}
		q.Status = status
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.Products.List(ctx, q)
	if err != nil {
		return respondError(c, err)
	}

	totalPages := (total + int64(size) - 1) / int64(size)
	return c.JSON(http.StatusOK, echo.Map{
		"items":       items,
		"total":       total,
		"page":        page,
		"total_pages": totalPages,
	})
}

// Get returns one product by its public code.
//
// GET /api/products/:code
func (h *CatalogHandler) Get(c echo.Context) error {
	code := strings.TrimSpace(c.Param("code"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.GetByCode(ctx, code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
