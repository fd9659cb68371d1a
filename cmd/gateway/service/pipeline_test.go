package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyzr/docgateway/common/blob"
	"github.com/lyzr/docgateway/common/extract"
	"github.com/lyzr/docgateway/common/logger"
)

type stubFetcher struct {
	content     []byte
	contentType string
	err         error

	gotRef blob.Reference
}

func (s *stubFetcher) Fetch(ctx context.Context, ref blob.Reference) ([]byte, blob.Metadata, error) {
	s.gotRef = ref
	if s.err != nil {
		return nil, blob.Metadata{}, s.err
	}

	meta := blob.Metadata{
		Size: int64(len(s.content)),
		Name: ref.Name,
	}
	if s.contentType != "" {
		meta.ContentType = &s.contentType
	}
	return s.content, meta, nil
}

func newTestService(fetcher Fetcher) *DocumentService {
	log := logger.New("error", "json")
	return NewDocumentService(fetcher, extract.NewExtractor(log), nil, log)
}

func TestPrepare_TextDocument(t *testing.T) {
	fetcher := &stubFetcher{
		content:     []byte("customer feedback: great service"),
		contentType: "text/plain",
	}

	doc, err := newTestService(fetcher).Prepare(context.Background(), "demo/feedback.txt", extract.DefaultMaxChars)
	require.NoError(t, err)

	assert.Equal(t, "customer feedback: great service", doc.Text)
	assert.False(t, doc.Truncated)
	assert.Equal(t, "demo", fetcher.gotRef.Container)
	assert.Equal(t, "feedback.txt", fetcher.gotRef.Name)
	assert.Equal(t, "feedback.txt", doc.Properties.Name)
}

func TestPrepare_AppliesBudget(t *testing.T) {
	fetcher := &stubFetcher{
		content:     []byte(strings.Repeat("word ", 100)),
		contentType: "text/plain",
	}

	doc, err := newTestService(fetcher).Prepare(context.Background(), "demo/long.txt", 40)
	require.NoError(t, err)

	assert.True(t, doc.Truncated)
	assert.Len(t, []rune(doc.Text), 40)
}

func TestPrepare_InvalidPath(t *testing.T) {
	_, err := newTestService(&stubFetcher{}).Prepare(context.Background(), "no-separator", extract.DefaultMaxChars)
	assert.True(t, errors.Is(err, blob.ErrInvalidReference), "expected ErrInvalidReference, got %v", err)
}

func TestPrepare_NotFoundPassthrough(t *testing.T) {
	fetcher := &stubFetcher{err: fmt.Errorf("%w: demo/gone.txt", blob.ErrNotFound)}

	_, err := newTestService(fetcher).Prepare(context.Background(), "demo/gone.txt", extract.DefaultMaxChars)
	assert.True(t, errors.Is(err, blob.ErrNotFound), "expected ErrNotFound, got %v", err)
}

// Whitespace-only extractions never reach derivation.
func TestPrepare_EmptyExtraction(t *testing.T) {
	fetcher := &stubFetcher{
		content:     []byte("   \n\t  "),
		contentType: "text/plain",
	}

	_, err := newTestService(fetcher).Prepare(context.Background(), "demo/blank.txt", extract.DefaultMaxChars)
	assert.True(t, errors.Is(err, extract.ErrEmptyText), "expected ErrEmptyText, got %v", err)
}

func TestPrepare_PDFKindFromContentType(t *testing.T) {
	// Content typed as PDF but not parseable as one surfaces the corrupt
	// document failure rather than decoding as text.
	fetcher := &stubFetcher{
		content:     []byte("plain bytes"),
		contentType: "application/pdf",
	}

	_, err := newTestService(fetcher).Prepare(context.Background(), "demo/fake.pdf", extract.DefaultMaxChars)
	assert.True(t, errors.Is(err, extract.ErrCorrupt), "expected ErrCorrupt, got %v", err)
}
