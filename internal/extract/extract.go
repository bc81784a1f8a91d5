package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrency bounds simultaneous parses when none is configured.
const DefaultMaxConcurrency = 4

// Extractor turns uploaded resumes into plain text.
type Extractor struct {
	parses *semaphore.Weighted
}

// New returns an Extractor that runs at most maxConcurrent parses at once.
func New(maxConcurrent int64) *Extractor {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrency
	}
	return &Extractor{parses: semaphore.NewWeighted(maxConcurrent)}
}

// Extract returns the plain text of the named resume. Unsupported formats fail with
// *UnsupportedFormatError before r is read; every other failure is an *ExtractionError.
func (e *Extractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	format, err := ParseFormat(filename)
	if err != nil {
		return "", err
	}

	if err := e.parses.Acquire(ctx, 1); err != nil {
		return "", &ExtractionError{Format: format, Err: err}
	}
	defer e.parses.Release(1)

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &ExtractionError{Format: format, Err: fmt.Errorf("read upload: %w", err)}
	}

	text, err := extractBytes(format, data)
	if err != nil {
		return "", &ExtractionError{
			Format:       format,
			DetectedMIME: mimetype.Detect(data).String(),
			Err:          err,
		}
	}
	return text, nil
}

// ExtractBytes is Extract for an in-memory payload.
func (e *Extractor) ExtractBytes(ctx context.Context, filename string, data []byte) (string, error) {
	return e.Extract(ctx, filename, bytes.NewReader(data))
}

func extractBytes(format Format, data []byte) (text string, err error) {
	// Third-party parsers may panic on malformed input.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("malformed %s: %v", format, rec)
		}
	}()

	switch format {
	case FormatPDF:
		return extractPDF(data)
	case FormatDOCX:
		return extractDOCX(data)
	case FormatTXT:
		return decodeText(data)
	default:
		return "", errors.New("no extractor for format " + format.String())
	}
}
