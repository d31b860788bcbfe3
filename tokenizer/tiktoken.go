package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/botirk38/tokenchunk/chunker"
)

// Tiktoken implements chunker.Tokenizer on top of github.com/pkoukk/tiktoken-go.
// Special tokens are encoded as ordinary text. The first use of an encoding
// downloads its vocabulary unless an offline loader has been installed with
// tiktoken.SetBpeLoader.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

var _ chunker.Tokenizer = (*Tiktoken)(nil)

// NewTiktoken creates a Tiktoken tokenizer using the specified encoding.
// An empty name selects DefaultEncoding.
func NewTiktoken(encoding string) (*Tiktoken, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get encoding: %w", err)
	}
	return &Tiktoken{enc: enc}, nil
}

// Encode converts text into token ids.
func (t *Tiktoken) Encode(text string) ([]int, error) {
	return t.enc.EncodeOrdinary(text), nil
}

// Decode converts token ids back into text.
func (t *Tiktoken) Decode(tokens []int) (string, error) {
	for _, id := range tokens {
		if id < 0 {
			return "", fmt.Errorf("invalid token id %d", id)
		}
	}
	return t.enc.Decode(tokens), nil
}
