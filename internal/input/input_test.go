// internal/input/input_test.go
package input

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadAllPlainFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "seq.fa")
	if err := os.WriteFile(fn, []byte(">s\nATGC\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadAll(fn, nil)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != ">s\nATGC\n" {
		t.Errorf("ReadAll = %q", got)
	}
}

func TestReadAllStdin(t *testing.T) {
	got, err := ReadAll("-", strings.NewReader("ATGC"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != "ATGC" {
		t.Errorf("ReadAll(-) = %q, want ATGC", got)
	}
}

func TestReadAllGzipByMagic(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte("ATGCATGC"))
	_ = zw.Close()

	// No .gz suffix: detection must go by magic number.
	fn := filepath.Join(t.TempDir(), "seq.bin")
	if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadAll(fn, nil)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if got != "ATGCATGC" {
		t.Errorf("ReadAll(gzip) = %q, want ATGCATGC", got)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	if _, err := ReadAll(filepath.Join(t.TempDir(), "nope.fa"), nil); err == nil {
		t.Errorf("ReadAll(missing) = nil error, want error")
	}
}
