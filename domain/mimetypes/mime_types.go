// Package mimetypes recognizes the file formats accepted for question imports.
package mimetypes

import (
	"mime"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	TextCSV         MIME = "text/csv"
	ApplicationJSON MIME = "application/json"
)

var importFormats = []MIME{ApplicationJSON, TextCSV}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// DetectImport sniffs data and returns the matching import format, or Unknown
// along with the raw detected type.
func DetectImport(data []byte) (MIME, string) {
	detected := mimetype.Detect(data).String()
	for _, format := range importFormats {
		if _, ok := Matches(detected, format); ok {
			return format, detected
		}
	}
	return Unknown, detected
}
