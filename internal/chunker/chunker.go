package chunker

import (
	"strings"

	"github.com/pratham7711/docmind-ai/internal/core/domain"
	"github.com/pratham7711/docmind-ai/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Chunker = (*Chunker)(nil)

// Config configures the chunker behavior.
type Config struct {
	// MaxChunkSize is the maximum characters per chunk
	MaxChunkSize int

	// Overlap is the character overlap between consecutive chunks
	Overlap int

	// PreserveSentences tries to break at sentence boundaries
	PreserveSentences bool

	// PreserveParagraphs tries to break at paragraph boundaries
	PreserveParagraphs bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize:       1000,
		Overlap:            200,
		PreserveSentences:  true,
		PreserveParagraphs: true,
	}
}

// Chunker splits parsed pages into bounded, overlapping chunks in document
// order. Blank pages contribute nothing; an all-blank document yields zero
// chunks.
type Chunker struct {
	config Config
}

// New creates a new chunker with the given config.
func New(config Config) *Chunker {
	return &Chunker{config: config}
}

// Chunk splits pages into chunks. Positions are sequential across the whole
// document; each chunk records the page it was drawn from.
func (c *Chunker) Chunk(pages []domain.Page) []domain.Chunk {
	var result []domain.Chunk
	position := 0

	for pageIdx, page := range pages {
		text := normalize(page.Text)
		if text == "" {
			continue
		}
		result = append(result, c.splitText(text, pageIdx, &position)...)
	}

	return result
}

// splitText splits one page's text into overlapping chunks.
func (c *Chunker) splitText(text string, page int, position *int) []domain.Chunk {
	if len(text) <= c.config.MaxChunkSize {
		chunk := domain.Chunk{
			Text:     text,
			Position: *position,
			Page:     page,
		}
		*position++
		return []domain.Chunk{chunk}
	}

	var chunks []domain.Chunk
	start := 0

	for start < len(text) {
		end := start + c.config.MaxChunkSize
		if end > len(text) {
			end = len(text)
		}

		// Try to find a good break point
		if end < len(text) && c.config.PreserveSentences {
			breakPoint := c.findBreakPoint(text, start, end)
			if breakPoint > start {
				end = breakPoint
			}
		}

		chunks = append(chunks, domain.Chunk{
			Text:     text[start:end],
			Position: *position,
			Page:     page,
		})
		*position++

		if end >= len(text) {
			break
		}

		// Move start with overlap, ensuring we always advance
		nextStart := end - c.config.Overlap
		if nextStart <= start {
			nextStart = start + 1
		}
		start = nextStart
	}

	return chunks
}

// findBreakPoint finds a good break point for chunking.
func (c *Chunker) findBreakPoint(text string, start, maxEnd int) int {
	searchStart := maxEnd - 100
	if searchStart < start {
		searchStart = start
	}

	searchText := text[searchStart:maxEnd]

	// Try to break at paragraph boundary (double newline)
	if c.config.PreserveParagraphs {
		if idx := strings.LastIndex(searchText, "\n\n"); idx != -1 {
			return searchStart + idx + 2
		}
	}

	// Try to break at sentence boundary
	if c.config.PreserveSentences {
		sentenceEnders := []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}
		bestIdx := -1

		for _, ender := range sentenceEnders {
			if idx := strings.LastIndex(searchText, ender); idx != -1 {
				endPos := idx + len(ender)
				if endPos > bestIdx {
					bestIdx = endPos
				}
			}
		}

		if bestIdx > 0 {
			return searchStart + bestIdx
		}
	}

	// Try to break at word boundary
	if idx := strings.LastIndex(searchText, " "); idx != -1 {
		return searchStart + idx + 1
	}

	return maxEnd
}

// normalize collapses whitespace so blank or scanned pages reduce to "".
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(text)
}
