// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"testing"

	arg "github.com/alexflint/go-arg"
	"github.com/stretchr/testify/require"

	"prle/internal/errs"
	"prle/internal/pipeline"
)

func mustParse(t *testing.T, args ...string) Parsed {
	t.Helper()
	p, err := ParseArgs(args)
	require.NoError(t, err)
	return p
}

func TestPositionalsOK(t *testing.T) {
	p := mustParse(t, "compress", "in.txt")
	require.Equal(t, pipeline.Compress, p.ModeValue)
	require.Equal(t, "in.txt", p.Input)
	require.Equal(t, 0, p.Threads)
	require.Equal(t, "", p.Output)
}

func TestFlagsOK(t *testing.T) {
	p := mustParse(t, "-t", "4", "--output", "out.rle", "-q", "decompress", "-")
	require.Equal(t, pipeline.Decompress, p.ModeValue)
	require.Equal(t, "-", p.Input)
	require.Equal(t, 4, p.Threads)
	require.Equal(t, "out.rle", p.Output)
	require.True(t, p.Quiet)
}

func TestThreadsFromEnv(t *testing.T) {
	t.Setenv("PRLE_THREADS", "6")
	p := mustParse(t, "compress", "in.txt")
	require.Equal(t, 6, p.Threads)

	p = mustParse(t, "--threads", "2", "compress", "in.txt")
	require.Equal(t, 2, p.Threads, "flag overrides env")
}

func TestErrorUnknownMode(t *testing.T) {
	_, err := ParseArgs([]string{"squash", "in.txt"})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
}

func TestErrorMissingPositionals(t *testing.T) {
	_, err := ParseArgs([]string{"compress"})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)

	_, err = ParseArgs([]string{})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
}

func TestErrorNegativeThreads(t *testing.T) {
	_, err := ParseArgs([]string{"--threads", "-1", "compress", "in.txt"})
	require.Error(t, err)
}

func TestInteractive(t *testing.T) {
	p := mustParse(t, "--interactive")
	require.True(t, p.Interactive)
	require.Equal(t, pipeline.Mode(0), p.ModeValue)

	_, err := ParseArgs([]string{"-i", "compress", "in.txt"})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)

	p = mustParse(t, "-i", "-o", "out.rle")
	require.Equal(t, "out.rle", p.Output)
}

func TestInteractiveConflicts(t *testing.T) {
	for _, args := range [][]string{
		{"-i", "-o", "-"},
		{"--interactive", "--output", "-"},
		{"-i", "-t", "4"},
	} {
		_, err := ParseArgs(args)
		require.True(t, errors.Is(err, errs.ErrInvalidArgument), "%v: got %v", args, err)
	}

	t.Setenv("PRLE_THREADS", "3")
	_, err := ParseArgs([]string{"-i"})
	require.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
}

func TestHelpAndVersion(t *testing.T) {
	p, err := ParseArgs([]string{"--help"})
	require.Equal(t, arg.ErrHelp, err)
	var b bytes.Buffer
	p.Parser.WriteHelp(&b)
	require.Contains(t, b.String(), "--threads")
	require.Contains(t, b.String(), "parallel run-length encoding")

	_, err = ParseArgs([]string{"--version"})
	require.Equal(t, arg.ErrVersion, err)
}
