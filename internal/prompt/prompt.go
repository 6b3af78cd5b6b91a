// Package prompt asks for the run options on a terminal:
// file name, thread count and operation, in that order.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"prle/internal/errs"
	"prle/internal/pipeline"
)

// Answers are the validated replies.
type Answers struct {
	Input   string
	Threads int
	Mode    pipeline.Mode
}

// Ask reads one whitespace-delimited answer per question from in, writing
// each question to out first.
func Ask(in io.Reader, out io.Writer) (Answers, error) {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	next := func(question string) (string, error) {
		if _, err := fmt.Fprint(out, question); err != nil {
			return "", err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", errors.Wrap(err, "read answer")
			}
			return "", errs.InvalidArgumentf("no answer to %q", strings.TrimSpace(question))
		}
		return sc.Text(), nil
	}

	var a Answers
	var err error
	if a.Input, err = next("Enter file name: "); err != nil {
		return a, err
	}

	s, err := next("Enter number of threads: ")
	if err != nil {
		return a, err
	}
	if a.Threads, err = strconv.Atoi(s); err != nil || a.Threads <= 0 {
		return a, errs.InvalidArgumentf("number of threads must be a positive integer, got %q", s)
	}

	if s, err = next("Choose operation (compress / decompress): "); err != nil {
		return a, err
	}
	if a.Mode, err = pipeline.ParseMode(s); err != nil {
		return a, err
	}
	return a, nil
}
