// Package tokenizer adapts BPE tokenizer libraries to chunker.Tokenizer.
package tokenizer

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	tkn "github.com/tiktoken-go/tokenizer"

	"github.com/botirk38/tokenchunk/chunker"
)

// Supported encodings
const (
	Cl100kBase = string(tkn.Cl100kBase)
	O200kBase  = string(tkn.O200kBase)
	P50kBase   = string(tkn.P50kBase)
	R50kBase   = string(tkn.R50kBase)
)

// DefaultEncoding is used when no encoding is named.
const DefaultEncoding = Cl100kBase

// codecCacheSize bounds the number of cache entries. Models and encodings
// have separate entries that point at the same codec.
const codecCacheSize = 16

// modelKeyPrefix keeps model names apart from encoding names in the cache.
const modelKeyPrefix = "model:"

var (
	codecsOnce sync.Once
	codecs     *lru.Cache[string, tkn.Codec]
)

func codecCache() *lru.Cache[string, tkn.Codec] {
	codecsOnce.Do(func() {
		// Only fails for a non-positive size
		codecs, _ = lru.New[string, tkn.Codec](codecCacheSize)
	})
	return codecs
}

// BPE implements chunker.Tokenizer on top of github.com/tiktoken-go/tokenizer,
// which ships its vocabularies embedded in the binary.
type BPE struct {
	codec tkn.Codec
}

var _ chunker.Tokenizer = (*BPE)(nil)

// Get returns a BPE tokenizer for the named encoding, e.g. "cl100k_base".
// An empty name selects DefaultEncoding. Loaded codecs are shared between calls.
func Get(encoding string) (*BPE, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	cache := codecCache()
	if codec, ok := cache.Get(encoding); ok {
		return &BPE{codec: codec}, nil
	}

	codec, err := tkn.Get(tkn.Encoding(encoding))
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding %q: %w", encoding, err)
	}
	cache.Add(encoding, codec)

	return &BPE{codec: codec}, nil
}

// ForModel returns a BPE tokenizer for the encoding used by an OpenAI model,
// e.g. "gpt-4". Codecs are shared with Get through the same cache.
func ForModel(model string) (*BPE, error) {
	cache := codecCache()
	key := modelKeyPrefix + model
	if codec, ok := cache.Get(key); ok {
		return &BPE{codec: codec}, nil
	}

	codec, err := tkn.ForModel(tkn.Model(model))
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding for model %q: %w", model, err)
	}

	// Reuse a codec already loaded under its encoding name
	if loaded, ok := cache.Get(codec.GetName()); ok {
		codec = loaded
	} else {
		cache.Add(codec.GetName(), codec)
	}
	cache.Add(key, codec)

	return &BPE{codec: codec}, nil
}

// Name returns the encoding name.
func (b *BPE) Name() string {
	return b.codec.GetName()
}

// Encode converts text into token ids.
func (b *BPE) Encode(text string) ([]int, error) {
	ids, _, err := b.codec.Encode(text)
	if err != nil {
		return nil, err
	}

	tokens := make([]int, len(ids))
	for i, id := range ids {
		tokens[i] = int(id)
	}
	return tokens, nil
}

// Decode converts token ids back into text.
func (b *BPE) Decode(tokens []int) (string, error) {
	ids := make([]uint, len(tokens))
	for i, t := range tokens {
		if t < 0 {
			return "", fmt.Errorf("invalid token id %d", t)
		}
		ids[i] = uint(t)
	}
	return b.codec.Decode(ids)
}

// Count returns the number of tokens in text.
func (b *BPE) Count(text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	ids, _, err := b.codec.Encode(text)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}
