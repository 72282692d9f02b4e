package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/middleware"
	"github.com/Owen-Kz/bn-portfolio/internal/model"
	"github.com/Owen-Kz/bn-portfolio/internal/repository"
	"github.com/Owen-Kz/bn-portfolio/internal/storage"
)

// DevPortfolioHandler serves the development-track endpoints. They mirror
// the design track plus the project metadata fields (type, status, URLs,
// year, technologies).
type DevPortfolioHandler struct {
	Items *repository.DevPortfolioRepo
	Store storage.Store
}

func NewDevPortfolioHandler(items *repository.DevPortfolioRepo, store storage.Store) *DevPortfolioHandler {
	return &DevPortfolioHandler{Items: items, Store: store}
}

// GetDevPortfolioItems returns one page of the caller's dev items; `total`
// is the page count, as in the design-track listing.
func (h *DevPortfolioHandler) GetDevPortfolioItems(c echo.Context) error {
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

// UploadDevFiles accepts the dev creation form. Required fields beyond the
// design track: type, status and year. The year must parse as a calendar
// year so listings can sort on it meaningfully.
func (h *DevPortfolioHandler) UploadDevFiles(c echo.Context) error {
	uid := middleware.UserID(c)

	title := strings.TrimSpace(c.FormValue("title"))
	category := strings.TrimSpace(c.FormValue("category"))
	typ := strings.TrimSpace(c.FormValue("type"))
	status := strings.TrimSpace(c.FormValue("status"))
	year := strings.TrimSpace(c.FormValue("year"))

	switch {
	case title == "" || category == "":
		return uploadFailed(c, http.StatusBadRequest, "title and category are required")
	case typ == "" || status == "" || year == "":
		return uploadFailed(c, http.StatusBadRequest, "type, status and year are required")
	case !model.ValidDevCategory(category):
		return uploadFailed(c, http.StatusBadRequest, "unknown category")
	case !model.ValidDevType(typ):
		return uploadFailed(c, http.StatusBadRequest, "unknown project type")
	case !model.ValidDevStatus(status):
		return uploadFailed(c, http.StatusBadRequest, "unknown project status")
	}
	if n, err := strconv.Atoi(year); err != nil || n < 1990 || n > time.Now().Year()+1 {
		return uploadFailed(c, http.StatusBadRequest, "invalid year")
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

	item := model.DevPortfolioItem{
		OwnerID:      uid,
		Title:        title,
		Category:     category,
		Type:         typ,
		Status:       status,
		Description:  strings.TrimSpace(c.FormValue("description")),
		URL:          strings.TrimSpace(c.FormValue("url")),
		PreviewURL:   strings.TrimSpace(c.FormValue("previewUrl")),
		Year:         year,
		Tags:         splitCSV(c.FormValue("tags")),
		Technologies: splitCSV(c.FormValue("technologies")),
		Images:       urls,
	}
	id, err := h.Items.Create(ctx, item)
	if err != nil {
		return uploadFailed(c, http.StatusInternalServerError, "saving item failed")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": id})
}
