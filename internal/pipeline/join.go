package pipeline

import "prle/internal/errs"

// Join concatenates results in index order. The indices must be exactly
// 0..len(results)-1; arrival order does not matter.
func Join(results []Result) ([]byte, error) {
	ordered := make([][]byte, len(results))
	seen := make([]bool, len(results))
	size := 0
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(results) {
			return nil, errs.InvalidArgumentf("result index %d outside 0..%d", r.Index, len(results)-1)
		}
		if seen[r.Index] {
			return nil, errs.InvalidArgumentf("duplicate result index %d", r.Index)
		}
		seen[r.Index] = true
		ordered[r.Index] = r.Data
		size += len(r.Data)
	}

	out := make([]byte, 0, size)
	for _, b := range ordered {
		out = append(out, b...)
	}
	return out, nil
}
