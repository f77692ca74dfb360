package dirs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCD(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if got := CD(); got != wd {
		t.Errorf("CD() = %q, want %q", got, wd)
	}
	if got, want := CD("a", "b"), filepath.Join(wd, "a", "b"); got != want {
		t.Errorf("CD(\"a\", \"b\") = %q, want %q", got, want)
	}

	// CD does not create anything.
	if _, err := os.Stat(CD("a")); !os.IsNotExist(err) {
		t.Errorf("Stat error = %v, want not-exist", err)
	}
}

func TestCDMkdir(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := CDMkdir("sub", "dir")
	if err != nil {
		t.Fatalf("CDMkdir error: %v", err)
	}
	if !IsDir(path) {
		t.Errorf("CDMkdir did not create %q", path)
	}
}

func TestCDMkdir_FileTarget(t *testing.T) {
	t.Chdir(t.TempDir())

	path, err := CDMkdir("sub", "data.csv")
	if err != nil {
		t.Fatalf("CDMkdir error: %v", err)
	}

	// The file itself is not created, only its parent.
	if IsDir(path) {
		t.Errorf("%q created as a directory, want file target untouched", path)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Stat(%q) error = %v, want not-exist", path, err)
	}
	if !IsDir(filepath.Dir(path)) {
		t.Errorf("parent of %q was not created", path)
	}
}

func TestCDD(t *testing.T) {
	t.Chdir(t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := CDD("raw"), filepath.Join(wd, "data", "raw"); got != want {
		t.Errorf("CDD(\"raw\") = %q, want %q", got, want)
	}
}

func TestFindExecutable_OnPath(t *testing.T) {
	t.Parallel()

	path, ok := FindExecutable("sh", nil)
	if !ok {
		t.Fatal("FindExecutable(\"sh\") not found, want found on PATH")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat(%q) error: %v", path, err)
	}
}

func TestFindExecutable_ExtraPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	exe := filepath.Join(dir, "mytool")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	// Directory candidate.
	if got, ok := FindExecutable("mytool", []string{dir}); !ok || got != exe {
		t.Errorf("FindExecutable(dir candidate) = %q, %v; want %q, true", got, ok, exe)
	}

	// Direct file candidate.
	if got, ok := FindExecutable("mytool", []string{exe}); !ok || got != exe {
		t.Errorf("FindExecutable(file candidate) = %q, %v; want %q, true", got, ok, exe)
	}
}

func TestFindExecutable_Missing(t *testing.T) {
	t.Parallel()

	name := "definitely-not-an-executable-493"
	got, ok := FindExecutable(name, []string{t.TempDir()})
	if ok {
		t.Fatalf("FindExecutable(%q) found %q, want not found", name, got)
	}
	if got != name {
		t.Errorf("FindExecutable(%q) = %q, want the name back unchanged", name, got)
	}
}

func TestToSlashPath(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{`tests\data\dat.csv`, "tests/data/dat.csv"},
		{"tests/data/dat.csv", "tests/data/dat.csv"},
		{"a//b/./c", "a/b/c"},
	}
	for _, tt := range tests {
		if got := ToSlashPath(tt.in); got != tt.want {
			t.Errorf("ToSlashPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if !IsDir(dir) {
		t.Errorf("IsDir(%q) = false, want true", dir)
	}

	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if IsDir(file) {
		t.Errorf("IsDir(%q) = true for a file", file)
	}
	if IsDir(filepath.Join(dir, "absent")) {
		t.Error("IsDir returned true for a missing path")
	}
}
