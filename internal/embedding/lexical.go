package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

// lexicalDimensions is the vector size for the hashed bag-of-tokens encoding.
const lexicalDimensions = 256

// LexicalEmbedder is a deterministic, in-process Embedder that encodes a span
// as a hashed bag-of-tokens vector. It has no notion of meaning beyond shared
// vocabulary, but it is reproducible and needs no network or credentials, so
// it serves as the offline default and as a test double for the remote model.
type LexicalEmbedder struct{}

// NewLexical creates a LexicalEmbedder.
func NewLexical() *LexicalEmbedder {
	return &LexicalEmbedder{}
}

// Embed encodes text as token counts bucketed by hash. Never fails.
func (e *LexicalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, lexicalDimensions)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token)) //nolint:errcheck // fnv hash writes never fail
		vector[h.Sum32()%lexicalDimensions]++
	}
	return vector, nil
}

// tokenize lowercases text and splits it on any non-letter, non-digit rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
