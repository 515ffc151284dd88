package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
)

func TestChunker_ShortPage(t *testing.T) {
	c := New(DefaultConfig())

	chunks := c.Chunk([]domain.Page{{Text: "A short page."}})

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short page.", chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Position)
	assert.Equal(t, 0, chunks[0].Page)
}

func TestChunker_BlankPagesSkipped(t *testing.T) {
	c := New(DefaultConfig())

	chunks := c.Chunk([]domain.Page{
		{Text: "   \n\n  "},
		{Text: "Content here."},
		{Text: ""},
	})

	require.Len(t, chunks, 1)
	assert.Equal(t, 1, chunks[0].Page)
}

func TestChunker_AllBlankYieldsNothing(t *testing.T) {
	c := New(DefaultConfig())

	chunks := c.Chunk([]domain.Page{{Text: "  "}, {Text: "\n\n"}})
	assert.Empty(t, chunks)
}

func TestChunker_LongTextSplits(t *testing.T) {
	c := New(Config{MaxChunkSize: 100, Overlap: 20, PreserveSentences: true})

	text := strings.Repeat("This is a sentence that fills space. ", 20)
	chunks := c.Chunk([]domain.Page{{Text: text}})

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk.Text), 100, "chunk %d exceeds max size", i)
		assert.Equal(t, i, chunk.Position)
	}
}

func TestChunker_SentenceBoundaries(t *testing.T) {
	c := New(Config{MaxChunkSize: 100, Overlap: 10, PreserveSentences: true})

	text := strings.Repeat("One sentence here. ", 30)
	chunks := c.Chunk([]domain.Page{{Text: text}})

	require.Greater(t, len(chunks), 1)
	// Every chunk except the last should end at a sentence break
	for _, chunk := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(strings.TrimSpace(chunk.Text), "."),
			"chunk does not end at sentence boundary: %q", chunk.Text)
	}
}

func TestChunker_PositionsSpanPages(t *testing.T) {
	c := New(DefaultConfig())

	chunks := c.Chunk([]domain.Page{
		{Text: "Page one."},
		{Text: "Page two."},
		{Text: "Page three."},
	})

	require.Len(t, chunks, 3)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Position)
		assert.Equal(t, i, chunk.Page)
	}
}

func TestChunker_UnbrokenTextAlwaysAdvances(t *testing.T) {
	// No spaces at all: the splitter must not loop forever
	c := New(Config{MaxChunkSize: 50, Overlap: 49, PreserveSentences: true})

	text := strings.Repeat("x", 500)
	chunks := c.Chunk([]domain.Page{{Text: text}})

	require.NotEmpty(t, chunks)
	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(text, last.Text[len(last.Text)-1:]))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapse spaces", "a    b", "a b"},
		{"windows newlines", "a\r\nb", "a\nb"},
		{"excess blank lines", "a\n\n\n\nb", "a\n\nb"},
		{"whitespace only", " \n \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}
