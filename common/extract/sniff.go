package extract

import (
	"bytes"
	"strings"
)

// Kind is the logical file kind the extractor understands.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindText Kind = "text"
)

var pdfMagic = []byte("%PDF")

var textExtensions = []string{".txt", ".md", ".csv", ".json", ".xml"}

// DetectKind determines the logical file kind. Precedence is deliberate:
// explicit metadata (content type) is trusted over the filename, the
// filename over content inspection, and unknown content defaults to text.
func DetectKind(contentType *string, filename string, content []byte) Kind {
	if contentType != nil {
		ct := strings.ToLower(*contentType)
		if strings.Contains(ct, "pdf") {
			return KindPDF
		}
		if strings.Contains(ct, "text") {
			return KindText
		}
	}

	if filename != "" {
		name := strings.ToLower(filename)
		if strings.HasSuffix(name, ".pdf") {
			return KindPDF
		}
		for _, ext := range textExtensions {
			if strings.HasSuffix(name, ext) {
				return KindText
			}
		}
	}

	if bytes.HasPrefix(content, pdfMagic) {
		return KindPDF
	}

	return KindText
}
