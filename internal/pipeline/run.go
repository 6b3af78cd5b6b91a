package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"prle/internal/chunk"
	"prle/internal/errs"
	"prle/internal/logging"
)

// Result is one worker's output, tagged with the index of its chunk.
type Result struct {
	Index int
	Data  []byte
}

type runOptions struct {
	codec Codec
	log   *zap.Logger
}

// Option customises Run and Process.
type Option func(*runOptions)

// WithCodec replaces the rle codec.
func WithCodec(c Codec) Option { return func(o *runOptions) { o.codec = c } }

// WithLogger sets the logger for per-chunk debug events.
func WithLogger(l *zap.Logger) Option { return func(o *runOptions) { o.log = l } }

func buildOptions(opts []Option) runOptions {
	o := runOptions{codec: RLE{}}
	for _, fn := range opts {
		fn(&o)
	}
	o.log = logging.OrNop(o.log)
	return o
}

// Run codes every chunk on its own goroutine and waits for all of them.
// Each goroutine writes only its own result slot, so no locking is needed.
// The first failure is returned and the results are discarded.
func Run(ctx context.Context, chunks []chunk.Chunk, mode Mode, opts ...Option) ([]Result, error) {
	if !mode.Valid() {
		return nil, errs.InvalidArgumentf("unknown mode %d", int(mode))
	}
	o := buildOptions(opts)

	results := make([]Result, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i := range chunks {
		i, c := i, chunks[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out, err := apply(o.codec, mode, c.Data)
			if err != nil {
				return errs.Wrapf(err, "chunk %d", c.Index)
			}
			results[i] = Result{Index: c.Index, Data: out}
			o.log.Debug("chunk done",
				zap.Int("chunk", c.Index),
				zap.Stringer("mode", mode),
				zap.Int("in", len(c.Data)),
				zap.Int("out", len(out)),
				zap.Duration("took", time.Since(start)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
