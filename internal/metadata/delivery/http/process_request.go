package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"escrow-marketplace/internal/metadata"
)

// multipartOverhead leaves room for the form envelope around the file.
const multipartOverhead = 1 << 20

// processUploadReq reads the "file" field. Data is read one byte past the
// limit so Validate can tell an oversized file from one exactly at it.
func (h *handler) processUploadReq(c *gin.Context) (metadata.PutInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartOverhead)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return metadata.PutInput{}, metadata.ErrTooLarge
		}
		return metadata.PutInput{}, errNoFile
	}

	f, err := fh.Open()
	if err != nil {
		return metadata.PutInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return metadata.PutInput{}, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return metadata.PutInput{Filename: fh.Filename, ContentType: contentType, Data: data}, nil
}
