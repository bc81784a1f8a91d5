package extract

import "strings"

// Format is a resume file format the extractor can read.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatDOCX
	FormatTXT
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDOCX:
		return "docx"
	case FormatTXT:
		return "txt"
	default:
		return "unknown"
	}
}

// ParseFormat derives the format from the text after the last "." in filename.
// A name without a dot is always unsupported; its tag is the whole name.
func ParseFormat(filename string) (Format, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return FormatUnknown, &UnsupportedFormatError{Tag: strings.ToLower(filename)}
	}
	tag := strings.ToLower(filename[idx+1:])

	switch tag {
	case "pdf":
		return FormatPDF, nil
	case "doc", "docx":
		return FormatDOCX, nil
	case "txt":
		return FormatTXT, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{Tag: tag}
	}
}
