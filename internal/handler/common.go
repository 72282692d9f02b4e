package handler

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Owen-Kz/bn-portfolio/internal/repository"
	"github.com/Owen-Kz/bn-portfolio/internal/storage"
)

// Upload constraints shared by both tracks. The client enforces the same
// rules before submitting; the server re-checks because multipart bodies
// are attacker-controlled.
const maxImageBytes = 5 << 20 // 5 MB per file

var allowedImageMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var (
	errImageType = errors.New("Only JPG, PNG, and WEBP images are allowed")
	errImageSize = errors.New("Each image must be 5MB or smaller")
)

// listQueryFrom reads page/limit/category from the query string. Invalid
// numbers fall back to the repository defaults via Normalize.
func listQueryFrom(c echo.Context) repository.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return repository.ListQuery{
		Page:     page,
		Limit:    limit,
		Category: strings.TrimSpace(c.QueryParam("category")),
	}
}

// formFiles returns the uploaded image headers under the "files" field.
func formFiles(c echo.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	return form.File["files"], nil
}

// validateImages checks every header against the MIME allowlist and size
// ceiling. The first violated rule is returned; one bad file rejects the
// whole upload so the stored item never has a partial image set.
func validateImages(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return errors.New("at least one image is required")
	}
	for _, f := range files {
		ct := strings.TrimSpace(strings.Split(f.Header.Get("Content-Type"), ";")[0])
		if _, ok := allowedImageMIME[ct]; !ok {
			return errImageType
		}
		if f.Size > maxImageBytes {
			return errImageSize
		}
	}
	return nil
}

// saveImages streams each validated file into the blob store and returns
// the public URLs in upload order.
func saveImages(ctx context.Context, store storage.Store, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		ct := strings.TrimSpace(strings.Split(f.Header.Get("Content-Type"), ";")[0])
		src, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %q: %w", f.Filename, err)
		}
		url, err := store.Save(ctx, storage.NewKey(allowedImageMIME[ct]), ct, src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("store upload %q: %w", f.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// splitCSV parses a comma-joined multipart field ("tags", "technologies")
// into trimmed non-empty values.
func splitCSV(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// uploadFailed writes the contract's upload error shape.
func uploadFailed(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}
