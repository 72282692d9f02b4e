// Package upload implements the dashboard's creation forms: field
// validation, the tag/technology chip inputs, image acceptance rules and
// multipart serialization. Form state survives a failed submission so the
// user retries without re-entering anything.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/Owen-Kz/bn-portfolio/internal/client/api"
)

// MaxImageBytes is the per-file size ceiling.
const MaxImageBytes = 5 << 20 // 5 MB

var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// File is one image queued for upload. Open provides the content at
// submission time; validation only needs Name, MIME and Size. Preview is
// an ephemeral handle assigned by the renderer's preview hook, released
// when the file is removed.
type File struct {
	Name    string
	MIME    string
	Size    int64
	Open    func() (io.ReadCloser, error)
	Preview string
}

// ValidationError carries the aggregated message for a batch of rejected
// files or missing fields.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// ChipInput is the committed-token text field used for tags and
// technologies: typed text buffers until comma or enter commits it as a
// chip. Duplicates (case-sensitive) and blank buffers are dropped; the
// buffer always clears on commit.
type ChipInput struct {
	buffer string
	chips  []string
}

// SetBuffer replaces the uncommitted text, as typing does.
func (c *ChipInput) SetBuffer(s string) { c.buffer = s }

// Buffer returns the uncommitted text.
func (c *ChipInput) Buffer() string { return c.buffer }

// Commit turns the trimmed buffer into a chip. Call on comma or enter.
func (c *ChipInput) Commit() {
	v := strings.TrimSpace(c.buffer)
	c.buffer = ""
	if v == "" {
		return
	}
	for _, existing := range c.chips {
		if existing == v {
			return
		}
	}
	c.chips = append(c.chips, v)
}

// Remove deletes the chip at i; out-of-range is a no-op.
func (c *ChipInput) Remove(i int) {
	if i < 0 || i >= len(c.chips) {
		return
	}
	c.chips = append(c.chips[:i], c.chips[i+1:]...)
}

// Chips returns the committed chips in commit order.
func (c *ChipInput) Chips() []string {
	return append([]string(nil), c.chips...)
}

// joined serializes chips the way the multipart contract wants them.
func (c *ChipInput) joined() string { return strings.Join(c.chips, ",") }

// PreviewHooks let the renderer attach and release ephemeral preview
// handles for accepted files. Both may be nil.
type PreviewHooks struct {
	New    func(File) string
	Revoke func(string)
}

// Form is the design-track creation form.
type Form struct {
	Title       string
	Category    string
	Description string
	Tags        ChipInput

	Previews PreviewHooks
	files    []File
}

// Files returns the accepted files in order.
func (f *Form) Files() []File { return append([]File(nil), f.files...) }

// AddFiles screens candidates against the MIME allowlist and size
// ceiling. Valid files are appended to the accepted set (and given a
// preview); invalid ones are dropped and reported in one aggregated
// ValidationError. A rejected batch never disturbs already-accepted
// files.
func (f *Form) AddFiles(candidates ...File) error {
	var badType, badSize bool
	for _, cand := range candidates {
		switch {
		case !allowedMIME[cand.MIME]:
			badType = true
		case cand.Size > MaxImageBytes:
			badSize = true
		default:
			if f.Previews.New != nil {
				cand.Preview = f.Previews.New(cand)
			}
			f.files = append(f.files, cand)
		}
	}
	var msgs []string
	if badType {
		msgs = append(msgs, "Only JPG, PNG, and WEBP images are allowed")
	}
	if badSize {
		msgs = append(msgs, "Each image must be 5MB or smaller")
	}
	if len(msgs) > 0 {
		return &ValidationError{Message: strings.Join(msgs, "; ")}
	}
	return nil
}

// RemoveFile drops the accepted file at i and revokes its preview so the
// handle does not leak.
func (f *Form) RemoveFile(i int) {
	if i < 0 || i >= len(f.files) {
		return
	}
	if f.Previews.Revoke != nil && f.files[i].Preview != "" {
		f.Previews.Revoke(f.files[i].Preview)
	}
	f.files = append(f.files[:i], f.files[i+1:]...)
}

// Validate runs the synchronous pre-submission checks. A non-empty map
// blocks submission; keys are field names.
func (f *Form) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(f.Category) == "" {
		errs["category"] = "Category is required"
	}
	if len(f.files) == 0 {
		errs["images"] = "At least one image is required"
	}
	return errs
}

// MultipartBody serializes the form: text fields, comma-joined tags and
// every accepted file under the "files" field. The returned content type
// carries the boundary and must be sent as-is.
func (f *Form) MultipartBody() (*bytes.Buffer, string, error) {
	fields := map[string]string{
		"title":       f.Title,
		"category":    f.Category,
		"description": f.Description,
		"tags":        f.Tags.joined(),
	}
	return buildMultipart(fields, f.files)
}

// Submit validates, serializes and posts the form. On any failure the
// form state is untouched so the caller re-renders it with the returned
// message.
func (f *Form) Submit(ctx context.Context, c *api.Client) error {
	if errs := f.Validate(); len(errs) > 0 {
		return &ValidationError{Message: firstMessage(errs)}
	}
	body, contentType, err := f.MultipartBody()
	if err != nil {
		return err
	}
	return postUpload(ctx, c, "/uploadFiles", contentType, body)
}

// DevForm is the development-track creation form, extending the design
// form with project metadata.
type DevForm struct {
	Form
	Type         string
	Status       string
	URL          string
	PreviewURL   string
	Year         string
	Technologies ChipInput
}

// Validate adds the dev-track required fields on top of the base checks.
func (f *DevForm) Validate() map[string]string {
	errs := f.Form.Validate()
	if strings.TrimSpace(f.Type) == "" {
		errs["type"] = "Project type is required"
	}
	if strings.TrimSpace(f.Status) == "" {
		errs["status"] = "Status is required"
	}
	if strings.TrimSpace(f.Year) == "" {
		errs["year"] = "Year is required"
	}
	return errs
}

func (f *DevForm) MultipartBody() (*bytes.Buffer, string, error) {
	fields := map[string]string{
		"title":        f.Title,
		"category":     f.Category,
		"type":         f.Type,
		"description":  f.Description,
		"url":          f.URL,
		"previewUrl":   f.PreviewURL,
		"status":       f.Status,
		"year":         f.Year,
		"tags":         f.Tags.joined(),
		"technologies": f.Technologies.joined(),
	}
	return buildMultipart(fields, f.files)
}

func (f *DevForm) Submit(ctx context.Context, c *api.Client) error {
	if errs := f.Validate(); len(errs) > 0 {
		return &ValidationError{Message: firstMessage(errs)}
	}
	body, contentType, err := f.MultipartBody()
	if err != nil {
		return err
	}
	return postUpload(ctx, c, "/uploadDevFiles", contentType, body)
}

// ----- helpers -----

func buildMultipart(fields map[string]string, files []File) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}
	for _, file := range files {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="files"; filename=%q`, file.Name))
		hdr.Set("Content-Type", file.MIME)
		part, err := w.CreatePart(hdr)
		if err != nil {
			return nil, "", err
		}
		if file.Open != nil {
			src, err := file.Open()
			if err != nil {
				return nil, "", fmt.Errorf("open %q: %w", file.Name, err)
			}
			_, err = io.Copy(part, src)
			src.Close()
			if err != nil {
				return nil, "", fmt.Errorf("read %q: %w", file.Name, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func postUpload(ctx context.Context, c *api.Client, path, contentType string, body io.Reader) error {
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.PostMultipart(ctx, path, contentType, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "Upload failed"
		}
		return &api.RequestError{Message: msg}
	}
	return nil
}

// firstMessage picks a stable message out of a field-error map for the
// aggregated submission error.
func firstMessage(errs map[string]string) string {
	for _, field := range []string{"title", "category", "type", "status", "year", "images"} {
		if msg, ok := errs[field]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return "Invalid form"
}
