package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	extractor := NewExtractorService()

	text, err := extractor.ExtractText([]byte("  Jane Doe\n\n  5 years Python  \n"), MediaTypeText)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n5 years Python", text)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	extractor := NewExtractorService()

	// A document with nothing to extract is a valid empty result, not a
	// failure.
	text, err := extractor.ExtractText([]byte("   \n\n  "), MediaTypeText)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText([]byte("GIF89a"), "image/gif")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextMalformedPDF(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText([]byte("this is not a pdf"), MediaTypePDF)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractTextMalformedDocx(t *testing.T) {
	extractor := NewExtractorService()

	_, err := extractor.ExtractText([]byte("not a zip archive"), MediaTypeDocx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n \t ", ""},
		{"collapses blank lines", "a\n\n\nb", "a\nb"},
		{"trims lines", "  a  \n  b  ", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
