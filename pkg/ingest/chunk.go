package ingest

import "strings"

// Chunk is one piece of a handbook document ready for embedding.
type Chunk struct {
	// Index is the position of the chunk within its source document.
	Index int

	// Text is the chunk content.
	Text string
}

// SplitDocument splits document text into chunks of roughly maxChars,
// breaking on paragraph boundaries. Paragraphs longer than maxChars are
// kept whole rather than split mid-sentence. Empty paragraphs are dropped.
func SplitDocument(text string, maxChars int) []Chunk {
	if maxChars <= 0 {
		maxChars = DefaultChunkChars
	}

	paragraphs := strings.Split(text, "\n\n")

	var chunks []Chunk
	var current strings.Builder

	flush := func() {
		trimmed := strings.TrimSpace(current.String())
		if trimmed != "" {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: trimmed})
		}
		current.Reset()
	}

	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		if current.Len() > 0 && current.Len()+len(paragraph) > maxChars {
			flush()
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}
	flush()

	return chunks
}
