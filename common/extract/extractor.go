package extract

import (
	"errors"

	"github.com/lyzr/docgateway/common/logger"
)

// Extraction failure modes. All stem from the input document, so the
// endpoint layer maps them to 400-class processing errors.
var (
	ErrEncrypted   = errors.New("pdf is encrypted and cannot be processed")
	ErrNoText      = errors.New("no extractable text found in pdf")
	ErrCorrupt     = errors.New("invalid or corrupted pdf")
	ErrUndecodable = errors.New("unable to decode content with any supported encoding")
	ErrEmptyText   = errors.New("extracted text is empty")
)

// Extractor converts raw bytes of a known kind into a decoded string.
type Extractor struct {
	log *logger.Logger
}

// NewExtractor creates a new extractor.
func NewExtractor(log *logger.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract decodes content according to its sniffed kind. Unrecognized
// kinds get the text path before giving up.
func (e *Extractor) Extract(content []byte, kind Kind) (string, error) {
	switch kind {
	case KindPDF:
		return e.extractPDF(content)
	default:
		return e.extractText(content)
	}
}
