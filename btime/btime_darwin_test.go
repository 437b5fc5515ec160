//go:build darwin

package btime

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestSetBirthTimeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	const seconds = 1672531200 // 2023-01-01T00:00:00Z
	if err := Set(path, seconds); err != nil {
		t.Fatalf("Set(%q, %d) = %v, want nil", path, seconds, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		t.Fatalf("unexpected Sys type %T", info.Sys())
	}
	if stat.Birthtimespec.Sec != seconds {
		t.Errorf("birth time = %d, want %d", stat.Birthtimespec.Sec, seconds)
	}
}

func TestSetBirthTimeDirectory(t *testing.T) {
	dir := t.TempDir()

	const seconds = 1672531200
	if err := Set(dir, seconds); err != nil {
		t.Fatalf("Set(%q, %d) = %v, want nil", dir, seconds, err)
	}
}
