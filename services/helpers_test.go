package services

import (
	"bytes"
	"mime/multipart"
	"strings"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

type stringUpload struct {
	*strings.Reader
}

func (stringUpload) Close() error { return nil }

// csvFile wraps string content as a multipart.File for upload tests.
func csvFile(content string) multipart.File {
	return stringUpload{strings.NewReader(content)}
}
