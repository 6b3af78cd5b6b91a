// Package chunk splits a byte slice into contiguous, ordered, non-overlapping
// windows, one per worker.
package chunk

import "prle/internal/errs"

// Chunk is one window of the input. Data aliases the input slice and must be
// treated as read-only.
type Chunk struct {
	Index int
	Data  []byte
}

// BoundaryFunc reports whether a chunk may begin at pos in data.
type BoundaryFunc func(data []byte, pos int) bool

// Split cuts data into exactly workers chunks. Every chunk but the last holds
// len(data)/workers bytes; the last takes the remainder. When workers exceeds
// len(data) the leading chunks are empty.
func Split(data []byte, workers int) ([]Chunk, error) {
	return SplitAligned(data, workers, nil)
}

// SplitAligned is Split with each internal boundary moved forward to the first
// position accepted by ok. A nil ok accepts every position.
func SplitAligned(data []byte, workers int, ok BoundaryFunc) ([]Chunk, error) {
	if workers <= 0 {
		return nil, errs.InvalidArgumentf("worker count must be positive, got %d", workers)
	}
	base := len(data) / workers
	chunks := make([]Chunk, workers)
	start := 0
	for i := 0; i < workers; i++ {
		end := len(data)
		if i < workers-1 {
			end = base * (i + 1)
			if end < start {
				end = start
			}
			if ok != nil {
				for end < len(data) && !ok(data, end) {
					end++
				}
			}
		}
		// Full slice expression keeps a worker from appending into its
		// neighbour's bytes.
		chunks[i] = Chunk{Index: i, Data: data[start:end:end]}
		start = end
	}
	return chunks, nil
}

// Bounds returns the [start, end) offsets of each chunk within the input.
func Bounds(chunks []Chunk) [][2]int {
	out := make([][2]int, len(chunks))
	off := 0
	for i, c := range chunks {
		out[i] = [2]int{off, off + len(c.Data)}
		off += len(c.Data)
	}
	return out
}
