package extract

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtraction        = errors.New("resume extraction failed")
)

// UnsupportedFormatError reports a resume whose extension is not pdf, doc, docx or txt.
type UnsupportedFormatError struct {
	Tag string
}

func (e *UnsupportedFormatError) Error() string {
	return "Unsupported file format. Please upload a PDF, DOCX, or TXT file."
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ExtractionError reports a supported file that could not be read or parsed.
type ExtractionError struct {
	Format       Format
	DetectedMIME string
	Err          error
}

func (e *ExtractionError) Error() string {
	return "Error processing the resume file: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}
