package ops

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type fixedSize int64

func (f fixedSize) SizeBytes() int64 { return int64(f) }

func TestChunkCount_InMemory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target any
		limit  float64
		binary bool
		want   int
	}{
		{
			name:   "byte slice above limit",
			target: bytes.Repeat([]byte{0}, 8_000_000), // 7.6 MiB
			limit:  5,
			binary: true,
			want:   2,
		},
		{
			name:   "byte slice below limit is one chunk",
			target: bytes.Repeat([]byte{0}, 1_000_000),
			limit:  50,
			binary: true,
			want:   1,
		},
		{
			name:   "sizer reports its own size",
			target: fixedSize(200_000_000), // 200 MB decimal
			limit:  50,
			binary: false,
			want:   4,
		},
		{
			name:   "no limit is not applicable",
			target: bytes.Repeat([]byte{0}, 1_000_000),
			limit:  0,
			binary: true,
			want:   0,
		},
		{
			name:   "non-path string measured by length",
			target: "definitely/not/an/existing/path",
			limit:  50,
			binary: true,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ChunkCount(tt.target, tt.limit, tt.binary)
			if err != nil {
				t.Fatalf("ChunkCount() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ChunkCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChunkCount_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.bin")
	if err := os.WriteFile(path, bytes.Repeat([]byte{1}, 8_400_000), 0o600); err != nil {
		t.Fatal(err)
	}

	// 8.4 MB decimal / 2 MB limit -> 5 chunks.
	got, err := ChunkCount(path, 2, false)
	if err != nil {
		t.Fatalf("ChunkCount(file) error: %v", err)
	}
	if got != 5 {
		t.Errorf("ChunkCount(file) = %d, want 5", got)
	}
}

func TestChunkCount_GobFallback(t *testing.T) {
	t.Parallel()

	type record struct {
		Name   string
		Values []float64
	}

	got, err := ChunkCount(record{Name: "r", Values: make([]float64, 64)}, 50, true)
	if err != nil {
		t.Fatalf("ChunkCount(struct) error: %v", err)
	}
	if got != 1 {
		t.Errorf("ChunkCount(struct) = %d, want 1", got)
	}
}

func TestChunkCount_Errors(t *testing.T) {
	t.Parallel()

	if _, err := ChunkCount(nil, 50, true); err == nil {
		t.Error("ChunkCount(nil) returned nil error, want error")
	}
	if _, err := ChunkCount(func() {}, 50, true); err == nil {
		t.Error("ChunkCount(func) returned nil error, want error")
	}
}
