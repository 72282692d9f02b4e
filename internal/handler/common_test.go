package handler

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func imageHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateImages(t *testing.T) {
	assert.Error(t, validateImages(nil), "empty upload rejected")

	ok := []*multipart.FileHeader{
		imageHeader("a.jpg", "image/jpeg", 1024),
		imageHeader("b.png", "image/png", maxImageBytes),
		imageHeader("c.webp", "image/webp; charset=binary", 10),
	}
	assert.NoError(t, validateImages(ok))

	gif := append(ok, imageHeader("d.gif", "image/gif", 10))
	assert.ErrorIs(t, validateImages(gif), errImageType)

	huge := append(ok, imageHeader("e.png", "image/png", maxImageBytes+1))
	assert.ErrorIs(t, validateImages(huge), errImageSize)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"logo", "print"}, splitCSV("logo, print"))
	assert.Equal(t, []string{"Go"}, splitCSV(" Go ,, "))
	assert.Empty(t, splitCSV(""))
	assert.Empty(t, splitCSV(" , ,"))
}
