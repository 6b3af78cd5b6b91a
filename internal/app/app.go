// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"prle/internal/cli"
	"prle/internal/errs"
	"prle/internal/fileio"
	"prle/internal/logging"
	"prle/internal/pipeline"
	"prle/internal/prompt"
	"prle/internal/runutil"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitFailure   = 3
	ExitCancelled = 130
)

// Env is everything a run touches outside the process: the filesystem and
// the three standard streams.
type Env struct {
	FS     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// job is a fully resolved request.
type job struct {
	input   string
	output  string
	threads int
	mode    pipeline.Mode
	quiet   bool
}

// RunContext parses argv, runs the pipeline and writes the output. It returns
// the process exit code.
func RunContext(parent context.Context, env Env, argv []string) int {
	p, err := cli.ParseArgs(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		return flushTo(env.Stdout, env.Stderr, func(w io.Writer) { p.Parser.WriteHelp(w) })
	case errors.Is(err, arg.ErrVersion):
		return flushTo(env.Stdout, env.Stderr, func(w io.Writer) { _, _ = fmt.Fprintln(w, p.Options.Version()) })
	case err != nil:
		_, _ = fmt.Fprintln(env.Stderr, "error:", err)
		if p.Parser != nil {
			p.Parser.WriteUsage(env.Stderr)
		}
		return ExitUsage
	}

	log := logging.New(env.Stderr, logging.Level(p.Quiet, p.Verbose)).
		With(zap.String("run", uuid.NewV4().String()))
	defer func() { _ = log.Sync() }()

	j := job{
		input:   p.Input,
		output:  p.Output,
		threads: runutil.EffectiveThreads(p.Threads),
		mode:    p.ModeValue,
		quiet:   p.Quiet,
	}
	if p.Interactive {
		a, err := prompt.Ask(env.Stdin, env.Stdout)
		if err != nil {
			_, _ = fmt.Fprintln(env.Stderr, "error:", err)
			return ExitUsage
		}
		j.input, j.threads, j.mode = a.Input, a.Threads, a.Mode
	}
	j.output = runutil.OutputPath(j.output, j.mode)

	return run(parent, env, log, j)
}

func run(ctx context.Context, env Env, log *zap.Logger, j job) int {
	data, err := fileio.ReadInput(env.FS, env.Stdin, j.input)
	if err != nil {
		log.Error("read failed", zap.String("input", j.input), zap.Error(err))
		return ExitFailure
	}
	log.Debug("input loaded",
		zap.String("input", j.input),
		zap.Int("bytes", len(data)),
		zap.Int("threads", j.threads),
		zap.Stringer("mode", j.mode),
	)

	start := time.Now()
	out, err := pipeline.Process(ctx, data,
		pipeline.Config{Workers: j.threads, Mode: j.mode},
		pipeline.WithLogger(log),
	)
	elapsed := time.Since(start)
	if err != nil {
		return failure(log, err)
	}
	if ctx.Err() != nil {
		return failure(log, ctx.Err())
	}

	if err := fileio.WriteOutput(env.FS, env.Stdout, j.output, out); err != nil {
		if fileio.IsBrokenPipe(err) {
			return ExitOK
		}
		log.Error("write failed", zap.String("output", j.output), zap.Error(err))
		return ExitFailure
	}

	if !j.quiet {
		report(env.Stderr, j, len(data), len(out), elapsed)
	}
	return ExitOK
}

func failure(log *zap.Logger, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn("cancelled", zap.Error(err))
		return ExitCancelled
	case errors.Is(err, errs.ErrInvalidArgument):
		log.Error("invalid argument", zap.Error(err))
		return ExitUsage
	default:
		log.Error("pipeline failed", zap.Error(err))
		return ExitFailure
	}
}

func report(w io.Writer, j job, in, out int, elapsed time.Duration) {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintf(bw, "Operation complete. Output written to: %s\n", j.output)
	_, _ = fmt.Fprintf(bw, "Time taken with %d threads: %d ms\n", j.threads, elapsed.Milliseconds())
	_, _ = fmt.Fprintf(bw, "%s -> %s (%.2fx)\n",
		humanize.Bytes(uint64(in)), humanize.Bytes(uint64(out)), runutil.Ratio(in, out))
	_ = bw.Flush()
}

// flushTo renders through a buffered writer and maps flush errors to exit
// codes; a closed pipe is not an error.
func flushTo(stdout, stderr io.Writer, render func(io.Writer)) int {
	outw := bufio.NewWriter(stdout)
	render(outw)
	if e := outw.Flush(); fileio.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitFailure
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(env Env, argv []string) int {
	return RunContext(context.Background(), env, argv)
}
