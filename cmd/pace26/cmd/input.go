package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const stdioName = "-"

// closers closes all of its members, in order, and reports the first
// failure.
type closers []io.Closer

func (cs closers) Close() error {
	var first error
	for _, c := range cs {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type readCloser struct {
	io.Reader
	io.Closer
}

type writeCloser struct {
	io.Writer
	io.Closer
}

// zstdDecoder adapts the error-less Close of a zstd.Decoder.
type zstdDecoder struct {
	*zstd.Decoder
}

func (d zstdDecoder) Close() error {
	d.Decoder.Close()
	return nil
}

// openInput opens the instance named by path. "-" or "" denote stdin.
// Files ending in .gz or .zst are decompressed transparently.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == stdioName {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "failed to read gzip header of %s", path)
		}
		return readCloser{zr, closers{zr, f}}, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "failed to read zstd stream %s", path)
		}
		return readCloser{zr, closers{zstdDecoder{zr}, f}}, nil
	}
	return f, nil
}

// createOutput creates the file path, compressing like openInput
// decompresses. "-" or "" denote stdout, which is never closed.
func createOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == stdioName {
		return writeCloser{stdout, closers{}}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", path)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zw := gzip.NewWriter(f)
		return writeCloser{zw, closers{zw, f}}, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "failed to create zstd stream %s", path)
		}
		return writeCloser{zw, closers{zw, f}}, nil
	}
	return f, nil
}
