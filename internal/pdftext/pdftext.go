// Package pdftext extracts plain text from paper PDFs. It is the boundary
// to the document format: unreadable or corrupt input surfaces as an error
// the chunker never tries to recover from.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mwiater/paperchunk/internal/logging"
)

// Extract pulls the text of every page, separated by [PAGE n] markers so
// downstream provenance can point back into the document.
func Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract text from page %d of %s: %w", i, path, err)
		}
		fmt.Fprintf(&b, "[PAGE %d]\n%s\n\n", i, text)
	}

	out := b.String()
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("pdf %s contains no extractable text", path)
	}
	logging.L().Debug("extracted pdf text", "path", path, "pages", pages, "bytes", len(out))
	return out, nil
}
