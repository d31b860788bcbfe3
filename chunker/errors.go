package chunker

import (
	"errors"
	"fmt"
)

// Common chunker errors
var (
	// ErrInvalidParameters is matched by every parameter validation error
	ErrInvalidParameters = errors.New("invalid chunking parameters")

	// ErrInvalidChunkSize indicates max chunk size is invalid (<=0)
	ErrInvalidChunkSize = fmt.Errorf("%w: max chunk size must be positive", ErrInvalidParameters)

	// ErrInvalidOverlap indicates overlap value is invalid (<0)
	ErrInvalidOverlap = fmt.Errorf("%w: overlap must be non-negative", ErrInvalidParameters)

	// ErrOverlapTooLarge indicates overlap is >= max chunk size
	ErrOverlapTooLarge = fmt.Errorf("%w: overlap must be less than max chunk size", ErrInvalidParameters)

	// ErrInvalidTotal indicates a negative token count was planned
	ErrInvalidTotal = fmt.Errorf("%w: total tokens must be non-negative", ErrInvalidParameters)

	// ErrNilTokenizer indicates a chunker was built without a tokenizer
	ErrNilTokenizer = errors.New("tokenizer cannot be nil")
)
