package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTextCollapsesWhitespace(t *testing.T) {
	s := NewDocumentService(500)

	assert.Equal(t, "a b c", s.CleanText("  a\n\n b\t\tc  "))
	assert.Equal(t, "", s.CleanText(" \n \t "))
}

func TestChunkSplitsFixedSize(t *testing.T) {
	s := NewDocumentService(500)
	text := strings.Repeat("가나다라마", 240) // 1200 runes

	chunks := s.Chunk(text)

	require.Len(t, chunks, 3)
	assert.Equal(t, 500, len([]rune(chunks[0])))
	assert.Equal(t, 500, len([]rune(chunks[1])))
	assert.Equal(t, 200, len([]rune(chunks[2])))
	assert.Equal(t, text, strings.Join(chunks, ""), "chunks reconstruct the input")
}

func TestChunkEmptyText(t *testing.T) {
	s := NewDocumentService(500)

	assert.Nil(t, s.Chunk(""))
}

func TestChunkShortText(t *testing.T) {
	s := NewDocumentService(500)

	chunks := s.Chunk("짧은 글")
	require.Len(t, chunks, 1)
	assert.Equal(t, "짧은 글", chunks[0])
}
