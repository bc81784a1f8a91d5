package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pageSource is the slice of a paginated document the extractor needs.
type pageSource interface {
	NumPage() int
	PageText(num int) (string, error)
}

type pdfPages struct {
	r *pdf.Reader
}

func (p pdfPages) NumPage() int {
	return p.r.NumPage()
}

func (p pdfPages) PageText(num int) (string, error) {
	page := p.r.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	return joinPages(pdfPages{r: reader})
}

// joinPages joins page texts with "\n". Pages without visible text are skipped
// entirely rather than contributing an empty line. GetPlainText starts each page
// with a line break, so newlines are trimmed from both ends of every page.
func joinPages(src pageSource) (string, error) {
	total := src.NumPage()
	texts := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		text, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("pdf page %d: %w", i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		texts = append(texts, strings.Trim(text, "\r\n"))
	}
	return strings.Join(texts, "\n"), nil
}
