package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/lyzr/docgateway/common/logger"
)

func testExtractor() *Extractor {
	return NewExtractor(logger.New("error", "json"))
}

// UTF-8 input must round-trip unchanged through the text path.
func TestExtractText_UTF8RoundTrip(t *testing.T) {
	input := "Review: the café exceeded expectations — 5/5 ★"

	text, err := testExtractor().Extract([]byte(input), KindText)
	require.NoError(t, err)
	assert.Equal(t, input, text)
}

func TestExtractText_UTF16WithBOM(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte("hello utf-16 world"))
	require.NoError(t, err)

	text, err := testExtractor().Extract(encoded, KindText)
	require.NoError(t, err)
	assert.Equal(t, "hello utf-16 world", text)
}

// Odd-length content can be neither UTF-16 nor (here) valid UTF-8, so it
// lands on the Latin-1 fallback.
func TestExtractText_Latin1Fallback(t *testing.T) {
	input := []byte{'c', 'a', 'f', 0xE9, '!'}

	text, err := testExtractor().Extract(input, KindText)
	require.NoError(t, err)
	assert.Equal(t, "café!", text)
}

func TestExtract_UnknownKindFallsBackToText(t *testing.T) {
	text, err := testExtractor().Extract([]byte("plain content"), Kind("spreadsheet"))
	require.NoError(t, err)
	assert.Equal(t, "plain content", text)
}
