package upload

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileOf(name, mimeType string, size int64) File {
	return File{
		Name: name,
		MIME: mimeType,
		Size: size,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("img")), nil
		},
	}
}

func TestAddFilesRejectsOversizeAndKeepsValid(t *testing.T) {
	var f Form
	err := f.AddFiles(
		fileOf("ok.png", "image/png", 1<<20),
		fileOf("huge.jpg", "image/jpeg", 6<<20),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5MB")

	files := f.Files()
	require.Len(t, files, 1, "oversize file excluded, valid one kept")
	assert.Equal(t, "ok.png", files[0].Name)
}

func TestAddFilesRejectsDisallowedType(t *testing.T) {
	var f Form
	require.NoError(t, f.AddFiles(fileOf("a.webp", "image/webp", 100)))

	err := f.AddFiles(fileOf("anim.gif", "image/gif", 100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JPG, PNG, and WEBP")
	assert.Len(t, f.Files(), 1, "accepted set untouched by a rejected batch")
}

func TestAddFilesBoundaryExactlyFiveMB(t *testing.T) {
	var f Form
	require.NoError(t, f.AddFiles(fileOf("edge.png", "image/png", MaxImageBytes)))
	assert.Len(t, f.Files(), 1)
}

func TestAddFilesAggregatesBothReasons(t *testing.T) {
	var f Form
	err := f.AddFiles(
		fileOf("a.gif", "image/gif", 100),
		fileOf("b.png", "image/png", 6<<20),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JPG, PNG, and WEBP")
	assert.Contains(t, err.Error(), "5MB")
	assert.Empty(t, f.Files())
}

func TestRemoveFileRevokesPreview(t *testing.T) {
	var revoked []string
	f := Form{Previews: PreviewHooks{
		New:    func(file File) string { return "preview:" + file.Name },
		Revoke: func(h string) { revoked = append(revoked, h) },
	}}
	require.NoError(t, f.AddFiles(
		fileOf("a.png", "image/png", 10),
		fileOf("b.png", "image/png", 10),
	))

	f.RemoveFile(0)
	assert.Equal(t, []string{"preview:a.png"}, revoked)
	require.Len(t, f.Files(), 1)
	assert.Equal(t, "b.png", f.Files()[0].Name)

	f.RemoveFile(5) // out of range is a no-op
	assert.Len(t, f.Files(), 1)
}

func TestChipInputCommit(t *testing.T) {
	var c ChipInput

	c.SetBuffer("  logo design  ")
	c.Commit()
	assert.Equal(t, []string{"logo design"}, c.Chips())
	assert.Empty(t, c.Buffer(), "buffer clears on commit")

	c.SetBuffer("logo design")
	c.Commit()
	assert.Equal(t, []string{"logo design"}, c.Chips(), "duplicates dropped")

	c.SetBuffer("Logo Design")
	c.Commit()
	assert.Equal(t, []string{"logo design", "Logo Design"}, c.Chips(),
		"duplicate check is case-sensitive")

	c.SetBuffer("   ")
	c.Commit()
	assert.Len(t, c.Chips(), 2, "blank buffer commits nothing")
	assert.Empty(t, c.Buffer())

	c.Remove(0)
	assert.Equal(t, []string{"Logo Design"}, c.Chips())
	c.Remove(9)
	assert.Len(t, c.Chips(), 1)
}

func TestFormValidate(t *testing.T) {
	var f Form
	errs := f.Validate()
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "images")

	f.Title = "Brand refresh"
	f.Category = "Branding"
	require.NoError(t, f.AddFiles(fileOf("a.png", "image/png", 10)))
	assert.Empty(t, f.Validate())
}

func TestDevFormValidate(t *testing.T) {
	f := DevForm{}
	f.Title = "Shop"
	f.Category = "E-commerce"
	require.NoError(t, f.AddFiles(fileOf("a.png", "image/png", 10)))

	errs := f.Validate()
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "status")
	assert.Contains(t, errs, "year")

	f.Type = "webapp"
	f.Status = "Live"
	f.Year = "2024"
	assert.Empty(t, f.Validate())
}

func TestFormMultipartBody(t *testing.T) {
	f := Form{Title: "Poster", Category: "Print Design", Description: "gig poster"}
	f.Tags.SetBuffer("print")
	f.Tags.Commit()
	f.Tags.SetBuffer("music")
	f.Tags.Commit()
	require.NoError(t, f.AddFiles(
		fileOf("one.png", "image/png", 3),
		fileOf("two.jpg", "image/jpeg", 3),
	))

	body, contentType, err := f.MultipartBody()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"])
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	assert.Equal(t, "Poster", form.Value["title"][0])
	assert.Equal(t, "Print Design", form.Value["category"][0])
	assert.Equal(t, "print,music", form.Value["tags"][0], "chips joined with commas")

	require.Len(t, form.File["files"], 2, "every image under the files field")
	assert.Equal(t, "one.png", form.File["files"][0].Filename)
	assert.Equal(t, "image/png", form.File["files"][0].Header.Get("Content-Type"))
	assert.Equal(t, "two.jpg", form.File["files"][1].Filename)
}

func TestDevFormMultipartBody(t *testing.T) {
	f := DevForm{
		Type:       "website",
		Status:     "Live",
		URL:        "https://shop.example.com",
		PreviewURL: "https://demo.example.com",
		Year:       "2023",
	}
	f.Title = "Shop"
	f.Category = "E-commerce"
	f.Technologies.SetBuffer("Go")
	f.Technologies.Commit()
	f.Technologies.SetBuffer("MySQL")
	f.Technologies.Commit()
	require.NoError(t, f.AddFiles(fileOf("shot.webp", "image/webp", 3)))

	body, contentType, err := f.MultipartBody()
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	form, err := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	defer form.RemoveAll()

	assert.Equal(t, "website", form.Value["type"][0])
	assert.Equal(t, "Live", form.Value["status"][0])
	assert.Equal(t, "2023", form.Value["year"][0])
	assert.Equal(t, "https://shop.example.com", form.Value["url"][0])
	assert.Equal(t, "Go,MySQL", form.Value["technologies"][0])
	assert.Len(t, form.File["files"], 1)
}
