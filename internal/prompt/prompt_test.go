package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"prle/internal/errs"
	"prle/internal/pipeline"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	a, err := Ask(strings.NewReader("notes.txt\n4\ncompress\n"), &out)
	require.NoError(t, err)
	require.Equal(t, Answers{Input: "notes.txt", Threads: 4, Mode: pipeline.Compress}, a)
	require.Contains(t, out.String(), "Enter file name: ")
	require.Contains(t, out.String(), "Enter number of threads: ")
	require.Contains(t, out.String(), "Choose operation (compress / decompress): ")
}

func TestAskSingleLine(t *testing.T) {
	a, err := Ask(strings.NewReader("in.rle 2 decompress"), &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, pipeline.Decompress, a.Mode)
	require.Equal(t, 2, a.Threads)
}

func TestAskRejects(t *testing.T) {
	for name, in := range map[string]string{
		"bad threads":  "f.txt\nmany\ncompress\n",
		"zero threads": "f.txt\n0\ncompress\n",
		"bad mode":     "f.txt\n2\nzip\n",
		"eof":          "f.txt\n",
	} {
		_, err := Ask(strings.NewReader(in), &bytes.Buffer{})
		require.True(t, errors.Is(err, errs.ErrInvalidArgument), "%s: got %v", name, err)
	}
}
