package ops

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
)

// Sizer reports the size of a value in bytes. Values passed to ChunkCount
// may implement it to avoid the encoding-based size fallback.
type Sizer interface {
	SizeBytes() int64
}

// ChunkCount estimates how many chunks a file or in-memory value splits
// into given a chunk-size limit in megabytes (decimal) or mebibytes
// (binary).
//
// The size of target is determined as follows: a string naming an existing
// file is measured with a filesystem stat; other strings and byte slices
// are measured by length; values implementing Sizer or fs.FileInfo report
// their own size; anything else falls back to its gob-encoded length,
// which returns an error for unencodable values.
//
// The size is converted to MB/MiB rounded to one decimal place, and the
// result is ceil(size/limit) with a minimum of one chunk. A non-positive
// limit means chunking is not applicable and yields zero.
func ChunkCount(target any, chunkSizeLimitMB float64, binary bool) (int, error) {
	size, err := targetSize(target)
	if err != nil {
		return 0, err
	}

	factor := float64(decimalFactor)
	if binary {
		factor = binaryFactor
	}

	sizeMB := math.Round(float64(size)/(factor*factor)*10) / 10

	if chunkSizeLimitMB <= 0 {
		return 0, nil
	}
	if sizeMB > chunkSizeLimitMB {
		return int(math.Ceil(sizeMB / chunkSizeLimitMB)), nil
	}
	return 1, nil
}

// targetSize resolves the byte size of an arbitrary chunking target.
func targetSize(target any) (int64, error) {
	switch t := target.(type) {
	case nil:
		return 0, errors.New("ops: nil chunking target")
	case Sizer:
		return t.SizeBytes(), nil
	case fs.FileInfo:
		return t.Size(), nil
	case string:
		if fi, err := os.Stat(t); err == nil && !fi.IsDir() {
			return fi.Size(), nil
		}
		return int64(len(t)), nil
	case []byte:
		return int64(len(t)), nil
	default:
		var cw countingWriter
		if err := gob.NewEncoder(&cw).Encode(target); err != nil {
			return 0, fmt.Errorf("ops: sizing %T: %w", target, err)
		}
		return cw.n, nil
	}
}

// countingWriter discards writes while counting their length.
type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
