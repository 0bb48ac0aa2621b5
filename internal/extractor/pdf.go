// Package extractor turns a PDF statement file into per-page text.
// The parser only needs an ordered sequence of text lines per page;
// layout beyond line order is not preserved.
package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPages reads a PDF file and returns the text content of each
// page, lines joined with newlines. Pages without extractable text
// come back as empty strings so page numbering stays intact.
func ExtractPages(filePath string) (pages []string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("pdf library crashed on %s: %v", filePath, r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filePath, err)
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf %s has no pages", filePath)
	}

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(p))
	}
	return pages, nil
}

// pageText reconstructs the page line by line. GetTextByRow groups
// words by their vertical position, which is enough for the fixed
// column layout of these statements; a plain-text dump is the fallback
// when row extraction fails.
func pageText(p pdf.Page) string {
	rows, err := p.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		return strings.Join(lines, "\n")
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
