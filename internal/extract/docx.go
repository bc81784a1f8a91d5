package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := bodyParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("parse document.xml: %w", err)
	}
	return strings.Join(paragraphs, "\n"), nil
}

// bodyParagraphs returns the text of each paragraph directly under w:body, in
// document order. Paragraphs nested in tables, text boxes or content controls are
// not body paragraphs and are skipped. Empty paragraphs are kept as "".
func bodyParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		paraDepth  = -1
		nested     int
	)
	parent := func() string {
		if len(stack) < 2 {
			return ""
		}
		return stack[len(stack)-2]
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if paraDepth < 0 {
				if t.Name.Local == "p" && parent() == "body" {
					paraDepth = len(stack)
					current.Reset()
				}
				continue
			}
			if t.Name.Local == "p" {
				nested++
			}
			if nested > 0 || parent() != "r" {
				continue
			}
			switch t.Name.Local {
			case "tab":
				current.WriteString("\t")
			case "br":
				if breakIsLine(t) {
					current.WriteString("\n")
				}
			case "cr":
				current.WriteString("\n")
			}
		case xml.EndElement:
			if nested > 0 && t.Name.Local == "p" {
				nested--
			}
			if paraDepth >= 0 && len(stack) == paraDepth {
				paragraphs = append(paragraphs, current.String())
				paraDepth = -1
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if paraDepth >= 0 && nested == 0 && len(stack) > 0 && stack[len(stack)-1] == "t" && parent() == "r" {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

func breakIsLine(el xml.StartElement) bool {
	for _, attr := range el.Attr {
		if attr.Name.Local == "type" {
			return attr.Value == "" || attr.Value == "textWrapping"
		}
	}
	return true
}
