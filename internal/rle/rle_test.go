package rle

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"prle/internal/errs"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a", "a1"},
		{"aaaa", "a4"},
		{"aaabbbbc", "a3b4c1"},
		{"abab", "a1b1a1b1"},
		{strings.Repeat("x", 12), "x12"},
		{strings.Repeat("z", 1000) + "y", "z1000y1"},
		{"\n\n\t", "\n2\t1"},
	}
	for _, c := range cases {
		got := Encode([]byte(c.in))
		require.Equal(t, c.want, string(got), "Encode(%q)", c.in)
		require.Equal(t, len(c.want), EncodedLen([]byte(c.in)), "EncodedLen(%q)", c.in)
	}
}

func TestEncodeEmptyIsNonNil(t *testing.T) {
	require.NotNil(t, Encode(nil))
	require.Len(t, Encode(nil), 0)
}

func TestDecode(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"a4", "aaaa"},
		{"a3b4c1", "aaabbbbc"},
		{"x12", strings.Repeat("x", 12)},
		{"a03", "aaa"},
		{"a1a2", "aaa"},
	}
	for _, c := range cases {
		got, err := Decode([]byte(c.in))
		require.NoError(t, err, "Decode(%q)", c.in)
		require.Equal(t, c.want, string(got), "Decode(%q)", c.in)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{
		"a",
		"a3b",
		"ab3",
		"a0",
		"a99999999999999999999999",
		"a9223372036854775807",
		"a" + strconv.Itoa(MaxDecodedSize+1),
		"a1b" + strconv.Itoa(MaxDecodedSize),
	} {
		_, err := Decode([]byte(in))
		require.Error(t, err, "Decode(%q)", in)
		require.True(t, errors.Is(err, errs.ErrFormat), "Decode(%q): want ErrFormat, got %v", in, err)
	}
}

func TestDecodeTruncatedMessage(t *testing.T) {
	_, err := Decode([]byte("a2b"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "offset 2")
	require.Contains(t, err.Error(), "truncated")
}

func TestDecodeSizeLimitMessage(t *testing.T) {
	_, err := Decode([]byte("a" + strconv.Itoa(math.MaxInt)))
	require.True(t, errors.Is(err, errs.ErrFormat), "got %v", err)
	require.Contains(t, err.Error(), "decoded size exceeds")
}

func TestDecodeLongRun(t *testing.T) {
	got, err := Decode([]byte("q100000r3"))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("q", 100000)+"rrr", string(got))
}

func TestRoundTrip(t *testing.T) {
	for _, in := range []string{
		"",
		"a",
		"hello, world",
		"mississippi",
		strings.Repeat("ab", 50) + strings.Repeat("c", 300),
		"  \n\n\n\t\t!!!???",
	} {
		got, err := Decode(Encode([]byte(in)))
		require.NoError(t, err)
		require.Equal(t, in, string(got))
	}
}

func TestDigitsAreAmbiguous(t *testing.T) {
	// "a1" encodes to "a111", which reads back as 'a' repeated 111 times.
	got, err := Decode(Encode([]byte("a1")))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("a", 111), string(got))
}

func TestIsTokenBoundary(t *testing.T) {
	src := []byte("a12b3")
	want := []bool{true, false, false, true, false, true}
	for pos := 0; pos <= len(src); pos++ {
		require.Equal(t, want[pos], IsTokenBoundary(src, pos), "pos %d", pos)
	}
}
