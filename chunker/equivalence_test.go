package chunker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChunkers(t *testing.T, tok Tokenizer) map[string]Chunker {
	t.Helper()

	fixed, err := New(tok)
	require.NoError(t, err)
	presized, err := NewPresized(tok)
	require.NoError(t, err)

	return map[string]Chunker{
		"fixed":    fixed,
		"presized": presized,
	}
}

func TestChunkers_Equivalent(t *testing.T) {
	chunkers := newChunkers(t, numberTokenizer{})
	fixed, presized := chunkers["fixed"], chunkers["presized"]

	for total := 0; total <= 30; total++ {
		for size := 1; size <= 8; size++ {
			for overlap := 0; overlap < size; overlap++ {
				name := fmt.Sprintf("total=%d/size=%d/overlap=%d", total, size, overlap)

				want, err := fixed.ChunkTokens(sequence(total), size, overlap)
				require.NoError(t, err, name)
				got, err := presized.ChunkTokens(sequence(total), size, overlap)
				require.NoError(t, err, name)

				assert.Equal(t, want, got, name)
			}
		}
	}
}

func TestChunkers_Contract(t *testing.T) {
	tok := numberTokenizer{}

	for name, c := range newChunkers(t, tok) {
		t.Run(name, func(t *testing.T) {
			t.Run("alignment", func(t *testing.T) {
				res, err := c.ChunkTokens(sequence(23), 5, 2)
				require.NoError(t, err)
				require.Len(t, res.Texts, len(res.TokenChunks))
				require.Len(t, res.Spans, len(res.TokenChunks))

				for k, chunk := range res.TokenChunks {
					text, err := tok.Decode(chunk)
					require.NoError(t, err)
					assert.Equal(t, text, res.Texts[k])
					assert.Equal(t, sequence(23)[res.Spans[k].Start:res.Spans[k].End], chunk)
				}
			})

			t.Run("base case identity", func(t *testing.T) {
				text := "5 6 7"
				res, err := c.Chunk(text, 3, 1)
				require.NoError(t, err)
				assert.Equal(t, []string{text}, res.Texts)
				assert.Equal(t, [][]int{{5, 6, 7}}, res.TokenChunks)
				assert.Equal(t, 3, res.TotalTokens)
			})

			t.Run("empty text", func(t *testing.T) {
				res, err := c.Chunk("", 4, 1)
				require.NoError(t, err)
				assert.Equal(t, Result{
					Texts:       []string{""},
					TokenChunks: [][]int{{}},
					Spans:       []Span{{Index: 0, Start: 0, End: 0}},
					TotalTokens: 0,
				}, res)
			})

			t.Run("invalid parameters", func(t *testing.T) {
				res, err := c.Chunk("0 1 2", 3, 3)
				assert.ErrorIs(t, err, ErrInvalidParameters)
				assert.Equal(t, Result{}, res)

				res, err = c.ChunkTokens(sequence(10), 0, 0)
				assert.ErrorIs(t, err, ErrInvalidChunkSize)
				assert.Equal(t, Result{}, res)
			})

			t.Run("encode error passes through", func(t *testing.T) {
				res, err := c.Chunk("0 one 2", 2, 0)
				require.Error(t, err)
				assert.EqualError(t, err, `unknown token "one"`)
				assert.Equal(t, Result{}, res)
			})

			t.Run("decode error passes through", func(t *testing.T) {
				res, err := c.ChunkTokens([]int{0, 1, -2, 3}, 2, 0)
				assert.EqualError(t, err, "invalid token id -2")
				assert.Equal(t, Result{}, res)
			})

			t.Run("appending to a chunk leaves neighbours intact", func(t *testing.T) {
				res, err := c.ChunkTokens(sequence(10), 4, 1)
				require.NoError(t, err)
				_ = append(res.TokenChunks[0], 42)
				assert.Equal(t, []int{3, 4, 5, 6}, res.TokenChunks[1])
			})
		})
	}
}

func TestNewPresized_NilTokenizer(t *testing.T) {
	_, err := NewPresized(nil)
	assert.ErrorIs(t, err, ErrNilTokenizer)
}
