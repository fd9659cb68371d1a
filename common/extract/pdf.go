package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls text from every page in document order. Pages whose
// trimmed text is empty are skipped; the survivors are joined with a
// newline. An image-only or scanned document yields ErrNoText with the
// page count so the caller can tell it apart from a parse failure.
func (e *Extractor) extractPDF(content []byte) (text string, err error) {
	// The pdf parser panics on some malformed containers.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrCorrupt, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return "", ErrEncrypted
		}
		return "", fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	totalPages := reader.NumPage()
	var pages []string
	for num := 1; num <= totalPages; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable pages contribute nothing, same as empty ones.
			e.log.Debug("skipping unreadable pdf page", "page", num, "error", err)
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			pages = append(pages, pageText)
		}
	}

	extracted := strings.Join(pages, "\n")
	if strings.TrimSpace(extracted) == "" {
		return "", fmt.Errorf("%w (%d pages): the document may be image-based, scanned, or restrict text extraction", ErrNoText, totalPages)
	}

	e.log.Info("extracted text from pdf", "chars", len(extracted), "pages", totalPages)
	return extracted, nil
}
