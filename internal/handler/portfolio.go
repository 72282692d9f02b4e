package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/middleware"
	"github.com/Owen-Kz/bn-portfolio/internal/model"
	"github.com/Owen-Kz/bn-portfolio/internal/repository"
	"github.com/Owen-Kz/bn-portfolio/internal/storage"
)

// PortfolioHandler serves the authenticated design-track endpoints:
// paginated dashboard listing, item count and multipart upload.
type PortfolioHandler struct {
	Items *repository.PortfolioRepo
	Store storage.Store
}

func NewPortfolioHandler(items *repository.PortfolioRepo, store storage.Store) *PortfolioHandler {
	return &PortfolioHandler{Items: items, Store: store}
}

// GetMyPortfolioItems returns one page of the caller's items. The `total`
// field is the page count at the requested limit; the dashboard client
// uses it to decide whether "load more" stays enabled.
func (h *PortfolioHandler) GetMyPortfolioItems(c echo.Context) error {
	uid := middleware.UserID(c)
	q := listQueryFrom(c).Normalize()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.Items.List(ctx, uid, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"total": q.PageCount(total),
	})
}

// CountMyPortfolioItems returns the caller's total item count across all
// categories, shown on the dashboard home card.
func (h *PortfolioHandler) CountMyPortfolioItems(c echo.Context) error {
	uid := middleware.UserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	total, err := h.Items.Count(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total})
}

// UploadFiles accepts the multipart creation form: title, category,
// description, comma-joined tags and one or more images under "files".
// Validation failures come back as {success:false, error} so the form can
// surface the message and keep its state.
func (h *PortfolioHandler) UploadFiles(c echo.Context) error {
	uid := middleware.UserID(c)

	title := strings.TrimSpace(c.FormValue("title"))
	category := strings.TrimSpace(c.FormValue("category"))
	if title == "" || category == "" {
		return uploadFailed(c, http.StatusBadRequest, "title and category are required")
	}
	if !model.ValidDesignCategory(category) {
		return uploadFailed(c, http.StatusBadRequest, "unknown category")
	}

	files, err := formFiles(c)
	if err != nil {
		return uploadFailed(c, http.StatusBadRequest, "invalid multipart form")
	}
	if err := validateImages(files); err != nil {
		return uploadFailed(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	urls, err := saveImages(ctx, h.Store, files)
	if err != nil {
		return uploadFailed(c, http.StatusInternalServerError, "storing images failed")
	}

	item := model.PortfolioItem{
		OwnerID:     uid,
		Title:       title,
		Category:    category,
		Description: strings.TrimSpace(c.FormValue("description")),
		Tags:        splitCSV(c.FormValue("tags")),
		Images:      urls,
	}
	id, err := h.Items.Create(ctx, item)
	if err != nil {
		return uploadFailed(c, http.StatusInternalServerError, "saving item failed")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": id})
}
