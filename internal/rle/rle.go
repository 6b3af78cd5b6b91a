// Package rle implements the run-length token format:
// each maximal run of a byte b repeated n times is written as b followed by
// n in minimal decimal, with no separators between tokens.
//
// The format cannot tell a literal digit byte from a count digit, so
// Decode(Encode(x)) == x only holds for inputs without ASCII digits.
package rle

import (
	"math"
	"strconv"

	"prle/internal/errs"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// decimalWidth returns the number of decimal digits needed for n > 0.
func decimalWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

// EncodedLen returns len(Encode(src)) without encoding.
func EncodedLen(src []byte) int {
	total := 0
	for i := 0; i < len(src); {
		j := i + 1
		for j < len(src) && src[j] == src[i] {
			j++
		}
		total += 1 + decimalWidth(j-i)
		i = j
	}
	return total
}

// Encode compresses src into tokens. Empty input yields empty output.
func Encode(src []byte) []byte {
	if len(src) == 0 {
		return []byte{}
	}
	dst := make([]byte, 0, EncodedLen(src))
	for i := 0; i < len(src); {
		j := i + 1
		for j < len(src) && src[j] == src[i] {
			j++
		}
		dst = append(dst, src[i])
		dst = strconv.AppendInt(dst, int64(j-i), 10)
		i = j
	}
	return dst
}

// MaxDecodedSize caps the output of a single Decode call (one chunk).
const MaxDecodedSize = 1 << 30

// Decode expands tokens back into bytes. It fails with errs.ErrFormat when a
// symbol has no count, when a count is zero or overflows int, or when the
// output would exceed MaxDecodedSize.
func Decode(src []byte) ([]byte, error) {
	// First pass validates and sizes the output so the second pass
	// allocates exactly once.
	size := 0
	for i := 0; i < len(src); {
		sym := src[i]
		n, next, err := readCount(src, i)
		if err != nil {
			return nil, err
		}
		if n > MaxDecodedSize-size {
			return nil, errs.Formatf("decoded size exceeds %d bytes at offset %d (symbol %q)", MaxDecodedSize, i, sym)
		}
		size += n
		i = next
	}

	dst := make([]byte, size)
	off := 0
	for i := 0; i < len(src); {
		n, next, _ := readCount(src, i)
		fill(dst[off:off+n], src[i])
		off += n
		i = next
	}
	return dst, nil
}

// fill sets every byte of run to b, doubling the copied prefix each step.
func fill(run []byte, b byte) {
	if len(run) == 0 {
		return
	}
	run[0] = b
	for filled := 1; filled < len(run); {
		filled += copy(run[filled:], run[:filled])
	}
}

// readCount parses the count following the symbol at src[at]. It returns
// the count and the offset of the next token.
func readCount(src []byte, at int) (int, int, error) {
	sym := src[at]
	i := at + 1
	n := 0
	for i < len(src) && isDigit(src[i]) {
		d := int(src[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, 0, errs.Formatf("run length for symbol %q at offset %d overflows", sym, at)
		}
		n = n*10 + d
		i++
	}
	switch {
	case i == at+1 && i == len(src):
		return 0, 0, errs.Formatf("symbol %q at offset %d is truncated: missing run length", sym, at)
	case i == at+1:
		return 0, 0, errs.Formatf("symbol %q at offset %d has no run length", sym, at)
	case n == 0:
		return 0, 0, errs.Formatf("symbol %q at offset %d has zero run length", sym, at)
	}
	return n, i, nil
}

// IsTokenBoundary reports whether a token may start at pos. A boundary sits
// at either end of src or between a count digit and the next symbol.
func IsTokenBoundary(src []byte, pos int) bool {
	if pos <= 0 || pos >= len(src) {
		return true
	}
	return isDigit(src[pos-1]) && !isDigit(src[pos])
}
