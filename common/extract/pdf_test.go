package extract

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildEmptyPDF assembles a structurally valid single-page PDF with an
// empty content stream, computing xref offsets as it writes.
func buildEmptyPDF() []byte {
	var buf bytes.Buffer
	offsets := make([]int, 5)

	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> /Contents 4 0 R >>")
	writeObj(4, "<< /Length 0 >>\nstream\n\nendstream")

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 5\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 4; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}

func TestExtractPDF_Corrupt(t *testing.T) {
	_, err := testExtractor().Extract([]byte("%PDF-1.4\nnot really a pdf"), KindPDF)
	assert.True(t, errors.Is(err, ErrCorrupt), "expected ErrCorrupt, got %v", err)
}

func TestExtractPDF_TruncatedContainer(t *testing.T) {
	_, err := testExtractor().Extract([]byte("%PDF"), KindPDF)
	assert.True(t, errors.Is(err, ErrCorrupt), "expected ErrCorrupt, got %v", err)
}

// A well-formed PDF with no text on any page is the scanned-document
// case: the failure must name the page count, not report corruption.
func TestExtractPDF_NoExtractableText(t *testing.T) {
	_, err := testExtractor().Extract(buildEmptyPDF(), KindPDF)
	assert.True(t, errors.Is(err, ErrNoText), "expected ErrNoText, got %v", err)
	assert.Contains(t, err.Error(), "1 pages")
}
