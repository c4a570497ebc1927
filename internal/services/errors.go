package services

import "errors"

var (
	// ErrExtraction marks a document that could not be read at all
	// (malformed or truncated bytes). Empty extraction output is not an
	// error.
	ErrExtraction = errors.New("document extraction failed")

	// ErrUnsupportedFormat marks a media type the extractor does not handle.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrEmptyInput is returned by the analyzer when the CV text or the job
	// description is empty after trimming. No model call is made in that
	// case.
	ErrEmptyInput = errors.New("cv text and job description must both be non-empty")
)
