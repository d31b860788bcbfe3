package chunker

import "log/slog"

// PresizedChunker produces the same chunks as FixedOverlapChunker but plans
// every span first, then fills outputs allocated at their final size. All
// token chunks share one backing array; each is capped so appending to one
// never writes into its neighbour.
type PresizedChunker struct {
	tokenizer Tokenizer
	logger    *slog.Logger
}

var _ Chunker = (*PresizedChunker)(nil)

// NewPresized creates a new PresizedChunker that encodes and decodes with tok.
func NewPresized(tok Tokenizer, opts ...Option) (*PresizedChunker, error) {
	if tok == nil {
		return nil, ErrNilTokenizer
	}

	o := buildOptions(opts)
	return &PresizedChunker{
		tokenizer: tok,
		logger:    o.logger,
	}, nil
}

// Chunk encodes text and splits the tokens into overlapping chunks.
// Tokenizer errors are returned unmodified.
func (c *PresizedChunker) Chunk(text string, maxChunkSize, overlap int) (Result, error) {
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
func (c *PresizedChunker) ChunkTokens(tokens []int, maxChunkSize, overlap int) (Result, error) {
	if err := (Config{MaxChunkSize: maxChunkSize, Overlap: overlap}).Validate(); err != nil {
		return Result{}, err
	}
	return c.chunkTokens(tokens, maxChunkSize, overlap)
}

func (c *PresizedChunker) chunkTokens(tokens []int, maxChunkSize, overlap int) (Result, error) {
	spans := plan(len(tokens), maxChunkSize, overlap)

	size := 0
	for _, s := range spans {
		size += s.Len()
	}

	backing := make([]int, size)
	res := Result{
		Texts:       make([]string, len(spans)),
		TokenChunks: make([][]int, len(spans)),
		Spans:       spans,
		TotalTokens: len(tokens),
	}

	off := 0
	for i, s := range spans {
		n := copy(backing[off:off+s.Len()], tokens[s.Start:s.End])
		chunk := backing[off : off+n : off+n]
		off += n

		text, err := c.tokenizer.Decode(chunk)
		if err != nil {
			return Result{}, err
		}
		res.Texts[i] = text
		res.TokenChunks[i] = chunk
	}

	c.logger.Debug("chunked tokens",
		"total_tokens", res.TotalTokens,
		"max_chunk_size", maxChunkSize,
		"overlap", overlap,
		"chunks", len(spans),
	)

	return res, nil
}
