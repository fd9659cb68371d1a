package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lyzr/docgateway/common/blob"
	"github.com/lyzr/docgateway/common/extract"
	"github.com/lyzr/docgateway/common/logger"
	"github.com/lyzr/docgateway/common/telemetry"
)

// Fetcher downloads blob content and metadata
type Fetcher interface {
	Fetch(ctx context.Context, ref blob.Reference) ([]byte, blob.Metadata, error)
}

// PreparedDocument is the normalized output of the ingestion pipeline,
// consumed exactly once by a derivation task and never persisted.
type PreparedDocument struct {
	Text       string
	Truncated  bool
	Reference  blob.Reference
	Properties blob.Metadata
}

// DocumentService turns a caller-supplied file path into bounded plain
// text: resolve, download, sniff, extract, limit. Each step is synchronous;
// the blob download is the only network hop here.
type DocumentService struct {
	fetcher   Fetcher
	extractor *extract.Extractor
	telemetry *telemetry.Telemetry
	log       *logger.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(fetcher Fetcher, extractor *extract.Extractor, tel *telemetry.Telemetry, log *logger.Logger) *DocumentService {
	return &DocumentService{
		fetcher:   fetcher,
		extractor: extractor,
		telemetry: tel,
		log:       log,
	}
}

// Prepare runs the ingestion pipeline for one request. An empty or
// whitespace-only extraction is a terminal failure; no derivation is
// attempted on it.
func (s *DocumentService) Prepare(ctx context.Context, filePath string, maxChars int) (*PreparedDocument, error) {
	start := time.Now()

	ref, err := blob.Resolve(filePath)
	if err != nil {
		return nil, err
	}

	content, meta, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}

	kind := extract.DetectKind(meta.ContentType, meta.Name, content)
	text, err := s.extractor.Extract(content, kind)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, extract.ErrEmptyText
	}

	limited, truncated := extract.Limit(text, maxChars)
	if truncated {
		s.log.Warn("extracted text exceeds budget, truncating",
			"chars", utf8.RuneCountInString(text),
			"max_chars", maxChars,
		)
	}

	if s.telemetry != nil {
		s.telemetry.RecordDuration("prepare_document", start)
	}

	s.log.Info("document prepared",
		"container", ref.Container,
		"name", ref.Name,
		"kind", string(kind),
		"chars", utf8.RuneCountInString(limited),
		"truncated", truncated,
	)

	return &PreparedDocument{
		Text:       limited,
		Truncated:  truncated,
		Reference:  ref,
		Properties: meta,
	}, nil
}
