package extract

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Candidate encodings are tried strictly in order and the first success
// wins. Latin-1 and CP1252 decode any byte sequence, so they must stay
// after UTF-8 and UTF-16 or they would mask correct encodings. The exact
// order is observable behavior for ambiguous byte sequences; do not
// reorder. This is a best-effort heuristic, not a correctness guarantee.
var textEncodings = []struct {
	name   string
	decode func([]byte) (string, bool)
}{
	{"utf-8", decodeUTF8},
	{"utf-16", decodeUTF16},
	{"latin-1", decodeCharmap(charmap.ISO8859_1)},
	{"cp1252", decodeCharmap(charmap.Windows1252)},
}

func (e *Extractor) extractText(content []byte) (string, error) {
	for _, enc := range textEncodings {
		if text, ok := enc.decode(content); ok {
			e.log.Debug("decoded text content", "encoding", enc.name, "chars", utf8.RuneCountInString(text))
			return text, nil
		}
	}
	return "", ErrUndecodable
}

func decodeUTF8(b []byte) (string, bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// decodeUTF16 honors a BOM when present and assumes little-endian without
// one. The x/text decoder substitutes U+FFFD instead of failing, so a
// replacement rune in the output counts as a decode failure.
func decodeUTF16(b []byte) (string, bool) {
	if len(b)%2 != 0 {
		return "", false
	}

	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	decoded, err := decoder.Bytes(b)
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(b []byte) (string, bool) {
		decoded, err := cm.NewDecoder().Bytes(b)
		if err != nil {
			return "", false
		}
		return string(decoded), true
	}
}
