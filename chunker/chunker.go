// Package chunker splits token sequences into fixed-size overlapping windows.
package chunker

// Tokenizer converts between text and token ids.
// Implementations must be deterministic; Decode(Encode(s)) may differ from s
// only by the tokenizer's own normalization.
type Tokenizer interface {
	Encode(text string) ([]int, error)
	Decode(tokens []int) (string, error)
}

// Chunker defines the interface shared by the chunking implementations.
// All implementations return identical results for identical inputs.
type Chunker interface {
	// Chunk encodes text and splits the resulting tokens.
	Chunk(text string, maxChunkSize, overlap int) (Result, error)

	// ChunkTokens splits an already tokenized sequence.
	ChunkTokens(tokens []int, maxChunkSize, overlap int) (Result, error)
}

// Span is a half-open range [Start, End) of token indices.
type Span struct {
	// Index is the span's position in the sequence (0-based)
	Index int

	Start int
	End   int
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Result holds the output of a chunking call. Texts, TokenChunks and Spans
// are index-aligned: Texts[k] is the decoded form of TokenChunks[k], which
// holds the tokens in Spans[k].
type Result struct {
	Texts       []string
	TokenChunks [][]int
	Spans       []Span
	TotalTokens int
}

// Config holds the chunking parameters for a single call.
type Config struct {
	// MaxChunkSize is the number of tokens in every strided chunk.
	// Default: 1000
	MaxChunkSize int

	// Overlap is the number of tokens shared by consecutive strided chunks.
	// Default: 0
	Overlap int
}

// DefaultConfig returns the default chunking configuration.
func DefaultConfig() Config {
	return Config{
		MaxChunkSize: 1000,
		Overlap:      0,
	}
}

// Stride returns the distance between the starts of consecutive strided chunks.
func (c Config) Stride() int {
	return c.MaxChunkSize - c.Overlap
}

// Validate checks if the chunk configuration is valid.
func (c Config) Validate() error {
	if c.MaxChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if c.Overlap < 0 {
		return ErrInvalidOverlap
	}
	if c.Overlap >= c.MaxChunkSize {
		return ErrOverlapTooLarge
	}
	return nil
}
