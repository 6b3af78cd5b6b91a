// Package fileio is the input provider and output sink around the pipeline.
// Both work on an afero.Fs so tests can run entirely in memory.
package fileio

import (
	"bufio"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// StdioPath selects stdin for input and stdout for output.
const StdioPath = "-"

// ReadInput returns the full content at path, or of stdin when path is "-".
// Gzip input is detected by its magic number and inflated transparently.
func ReadInput(fs afero.Fs, stdin io.Reader, path string) ([]byte, error) {
	var r io.Reader
	if path == StdioPath {
		r = stdin
	} else {
		fh, err := fs.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer fh.Close()
		r = fh
	}

	br := bufio.NewReader(r)
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "read gzip input %s", path)
		}
		defer gr.Close()
		data, err := io.ReadAll(gr)
		if err != nil {
			return nil, errors.Wrapf(err, "read gzip input %s", path)
		}
		return data, nil
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", path)
	}
	return data, nil
}

// WriteOutput stores data at path, or writes it to stdout when path is "-".
// Files are written to a temporary sibling and renamed into place, so a
// failed write never leaves a truncated output behind.
func WriteOutput(fs afero.Fs, stdout io.Writer, path string, data []byte) error {
	if path == StdioPath {
		if _, err := stdout.Write(data); err != nil {
			return errors.Wrap(err, "write stdout")
		}
		return nil
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "create output %s", path)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return errors.Wrapf(err, "write output %s", path)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return errors.Wrapf(err, "close output %s", path)
	}
	if err := fs.Chmod(tmpName, 0o644); err != nil {
		_ = fs.Remove(tmpName)
		return errors.Wrapf(err, "chmod output %s", path)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName)
		return errors.Wrapf(err, "rename output %s", path)
	}
	return nil
}
