package chunker

// Count returns the number of spans Plan would produce without allocating them.
func Count(total, maxChunkSize, overlap int) (int, error) {
	cfg := Config{MaxChunkSize: maxChunkSize, Overlap: overlap}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	if total < 0 {
		return 0, ErrInvalidTotal
	}
	return count(total, maxChunkSize, overlap), nil
}

func count(total, maxChunkSize, overlap int) int {
	if total <= maxChunkSize {
		return 1
	}

	n := (total-maxChunkSize)/(maxChunkSize-overlap) + 1
	if maxChunkSize > 1 {
		n++
	}
	return n
}

// Plan computes the spans covering [0, total).
//
// When total exceeds maxChunkSize, spans of exactly maxChunkSize tokens start
// at 0 and advance by maxChunkSize-overlap while they fit, followed by a tail
// span holding the last maxChunkSize-1 tokens. The tail's overlap with the
// previous span is whatever the arithmetic yields. The strided run always
// starts at 0 and never leaves a gap since the stride is at most
// maxChunkSize, so coverage of the front holds for every valid input.
// With maxChunkSize == 1 the tail would be empty and is left out. An empty
// input yields the single span [0, 0).
func Plan(total, maxChunkSize, overlap int) ([]Span, error) {
	if _, err := Count(total, maxChunkSize, overlap); err != nil {
		return nil, err
	}
	return plan(total, maxChunkSize, overlap), nil
}

// plan expects parameters already accepted by Count.
func plan(total, maxChunkSize, overlap int) []Span {
	spans := make([]Span, 0, count(total, maxChunkSize, overlap))
	if total <= maxChunkSize {
		return append(spans, Span{Index: 0, Start: 0, End: total})
	}

	stride := maxChunkSize - overlap
	for start := 0; start <= total-maxChunkSize; start += stride {
		spans = append(spans, Span{
			Index: len(spans),
			Start: start,
			End:   start + maxChunkSize,
		})
	}

	if tail := total - maxChunkSize + 1; tail < total {
		spans = append(spans, Span{
			Index: len(spans),
			Start: tail,
			End:   total,
		})
	}

	return spans
}
