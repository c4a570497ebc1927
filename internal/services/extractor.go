package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeText = "text/plain"
)

type ExtractorService interface {
	ExtractText(data []byte, mediaType string) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText converts an uploaded document into plain text. A document with
// no extractable text yields an empty string, not an error; only unreadable
// bytes or an unknown media type fail.
func (e *extractorService) ExtractText(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case MediaTypePDF:
		return e.extractPDF(data)
	case MediaTypeDocx:
		return e.extractDocx(data)
	case MediaTypeText:
		return CleanText(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}
}

func (e *extractorService) extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents; the contract here
	// is an error, never a crash.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Scanned or otherwise unreadable page, contributes nothing
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return CleanText(textBuilder.String()), nil
}

func (e *extractorService) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer doc.Close()

	return CleanText(doc.Editable().GetContent()), nil
}

// CleanText normalizes whitespace: trims every line, drops blank ones and
// joins the rest with single newlines.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
