package chunker

import (
	"log/slog"
	"slices"
)

// FixedOverlapChunker implements the Chunker interface using fixed-size
// windows with overlap between consecutive windows, followed by a tail
// window that always reaches the end of the input.
type FixedOverlapChunker struct {
	tokenizer Tokenizer
	logger    *slog.Logger
}

var _ Chunker = (*FixedOverlapChunker)(nil)

// New creates a new FixedOverlapChunker that encodes and decodes with tok.
func New(tok Tokenizer, opts ...Option) (*FixedOverlapChunker, error) {
	if tok == nil {
		return nil, ErrNilTokenizer
	}

	o := buildOptions(opts)
	return &FixedOverlapChunker{
		tokenizer: tok,
		logger:    o.logger,
	}, nil
}

// Chunk encodes text and splits the tokens into overlapping chunks.
// Tokenizer errors are returned unmodified.
func (c *FixedOverlapChunker) Chunk(text string, maxChunkSize, overlap int) (Result, error) {
	if err := (Config{MaxChunkSize: maxChunkSize, Overlap: overlap}).Validate(); err != nil {
		return Result{}, err
	}

	tokens, err := c.tokenizer.Encode(text)
	if err != nil {
		return Result{}, err
	}

	return c.chunkTokens(tokens, maxChunkSize, overlap)
}

// ChunkTokens splits tokens into overlapping chunks and decodes each one.
func (c *FixedOverlapChunker) ChunkTokens(tokens []int, maxChunkSize, overlap int) (Result, error) {
	if err := (Config{MaxChunkSize: maxChunkSize, Overlap: overlap}).Validate(); err != nil {
		return Result{}, err
	}
	return c.chunkTokens(tokens, maxChunkSize, overlap)
}

func (c *FixedOverlapChunker) chunkTokens(tokens []int, maxChunkSize, overlap int) (Result, error) {
	totalTokens := len(tokens)

	// If the input fits within a chunk, return it whole. This includes empty input.
	if totalTokens <= maxChunkSize {
		text, err := c.tokenizer.Decode(tokens)
		if err != nil {
			return Result{}, err
		}

		c.logger.Debug("chunked tokens",
			"total_tokens", totalTokens,
			"max_chunk_size", maxChunkSize,
			"overlap", overlap,
			"chunks", 1,
		)

		return Result{
			Texts:       []string{text},
			TokenChunks: [][]int{append(make([]int, 0, totalTokens), tokens...)},
			Spans:       []Span{{Index: 0, Start: 0, End: totalTokens}},
			TotalTokens: totalTokens,
		}, nil
	}

	var res Result
	res.TotalTokens = totalTokens

	emit := func(start, end int) error {
		chunkTokens := slices.Clone(tokens[start:end])
		text, err := c.tokenizer.Decode(chunkTokens)
		if err != nil {
			return err
		}

		res.Texts = append(res.Texts, text)
		res.TokenChunks = append(res.TokenChunks, chunkTokens)
		res.Spans = append(res.Spans, Span{
			Index: len(res.Spans),
			Start: start,
			End:   end,
		})
		return nil
	}

	stride := maxChunkSize - overlap
	for start := 0; start <= totalTokens-maxChunkSize; start += stride {
		if err := emit(start, start+maxChunkSize); err != nil {
			return Result{}, err
		}
	}

	// The tail always ends at totalTokens, one token shorter than a full chunk
	if tail := totalTokens - maxChunkSize + 1; tail < totalTokens {
		if err := emit(tail, totalTokens); err != nil {
			return Result{}, err
		}
	}

	c.logger.Debug("chunked tokens",
		"total_tokens", totalTokens,
		"max_chunk_size", maxChunkSize,
		"overlap", overlap,
		"chunks", len(res.Spans),
	)

	return res, nil
}
