// internal/runutil/runutil.go
package runutil

import (
	"runtime"

	"prle/internal/pipeline"
)

// Default output names, one per mode.
const (
	CompressedName   = "compressed.txt"
	DecompressedName = "decompressed.txt"
)

// EffectiveThreads resolves the --threads value: 0 means one worker per CPU.
// Negative values pass through so the chunker can reject them.
func EffectiveThreads(threads int) int {
	if threads == 0 {
		return runtime.NumCPU()
	}
	return threads
}

// OutputPath returns the explicit output path, or the default name for mode.
func OutputPath(explicit string, mode pipeline.Mode) string {
	if explicit != "" {
		return explicit
	}
	if mode == pipeline.Decompress {
		return DecompressedName
	}
	return CompressedName
}

// Ratio is output size over input size; 0 for empty input.
func Ratio(in, out int) float64 {
	if in == 0 {
		return 0
	}
	return float64(out) / float64(in)
}
