package pipeline

import (
	"strings"

	"prle/internal/errs"
)

// Mode selects the codec direction.
type Mode int

const (
	Compress Mode = iota + 1
	Decompress
)

func (m Mode) String() string {
	switch m {
	case Compress:
		return "compress"
	case Decompress:
		return "decompress"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Compress || m == Decompress }

// ParseMode accepts "compress"/"decompress" (any case) and the short forms
// "c"/"d".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compress", "c":
		return Compress, nil
	case "decompress", "d":
		return Decompress, nil
	}
	return 0, errs.InvalidArgumentf("unknown mode %q (want compress | decompress)", s)
}
