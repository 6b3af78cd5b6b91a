package pipeline

import (
	"context"

	"go.uber.org/zap"

	"prle/internal/chunk"
	"prle/internal/rle"
)

// Config controls one pipeline invocation.
type Config struct {
	Workers int  // number of chunks and goroutines (>=1)
	Mode    Mode // Compress or Decompress
}

// Split chunks data for the given mode. Compression cuts at fixed offsets, so
// a run crossing a cut becomes two tokens. Decompression moves each cut
// forward to a token start so no count is separated from its symbol.
func Split(data []byte, cfg Config) ([]chunk.Chunk, error) {
	if cfg.Mode == Decompress {
		return chunk.SplitAligned(data, cfg.Workers, rle.IsTokenBoundary)
	}
	return chunk.Split(data, cfg.Workers)
}

// Process splits data, runs every chunk in parallel and joins the results.
// No output is returned if any stage fails.
func Process(ctx context.Context, data []byte, cfg Config, opts ...Option) ([]byte, error) {
	o := buildOptions(opts)
	chunks, err := Split(data, cfg)
	if err != nil {
		return nil, err
	}
	o.log.Debug("split input",
		zap.Stringer("mode", cfg.Mode),
		zap.Int("bytes", len(data)),
		zap.Int("chunks", len(chunks)),
		zap.Any("bounds", chunk.Bounds(chunks)),
	)

	results, err := Run(ctx, chunks, cfg.Mode, opts...)
	if err != nil {
		return nil, err
	}
	return Join(results)
}
