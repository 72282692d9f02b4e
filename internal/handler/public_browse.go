// This file defines handlers for the public browsing API. These routes let
// unauthenticated visitors browse the marketing portfolio grids without a
// session. Owner ids and timestamps are never included in the responses.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/repository"
)

// PublicHandler aggregates the repositories needed for unauthenticated
// browsing of both portfolio tracks.
type PublicHandler struct {
	Items    *repository.PortfolioRepo
	DevItems *repository.DevPortfolioRepo
}

func NewPublicHandler(items *repository.PortfolioRepo, dev *repository.DevPortfolioRepo) *PublicHandler {
	return &PublicHandler{Items: items, DevItems: dev}
}

// GetFiles lists design items for the public grid. Unlike the dashboard
// listing, the page count travels under pagination.totalPages.
func (h *PublicHandler) GetFiles(c echo.Context) error {
	q := listQueryFrom(c).Normalize()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.Items.List(ctx, 0, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"pagination": echo.Map{
			"totalPages": q.PageCount(total),
		},
	})
}

// GetDevFiles is the dev-track counterpart of GetFiles, feeding the public
// development portfolio grid.
func (h *PublicHandler) GetDevFiles(c echo.Context) error {
	q := listQueryFrom(c).Normalize()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.DevItems.List(ctx, 0, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"pagination": echo.Map{
			"totalPages": q.PageCount(total),
		},
	})
}
