package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf to lf", "line one\r\nline two", "line one\nline two"},
		{"bare cr to lf", "line one\rline two", "line one\nline two"},
		{"collapse spaces", "too    many   spaces", "too many spaces"},
		{"trim lines", "  padded line  \n\tanother\t", "padded line\nanother"},
		{"control chars stripped", "before\x00\x08after", "before after"},
		{"blank runs collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"surrounding whitespace trimmed", "\n\n  body  \n\n", "body"},
		{"tabs inside lines collapse", "col1\t\tcol2", "col1 col2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanText_PreservesLineStructure(t *testing.T) {
	resume := "B.Tech 2018-2022\nBuilt a project in   python\n\nMachine learning intern"
	cleaned := CleanText(resume)
	assert.Equal(t, "B.Tech 2018-2022\nBuilt a project in python\n\nMachine learning intern", cleaned)
}
