//go:build windows

package btime

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func creationSeconds(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	attr, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		t.Fatalf("unexpected Sys type %T", info.Sys())
	}
	return time.Unix(0, attr.CreationTime.Nanoseconds()).Unix()
}

func TestSetBirthTimeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	const seconds = 1672531200 // 2023-01-01T00:00:00Z
	if err := Set(path, seconds); err != nil {
		t.Fatalf("Set(%q, %d) = %v, want nil", path, seconds, err)
	}
	if got := creationSeconds(t, path); got != seconds {
		t.Errorf("creation time = %d, want %d", got, seconds)
	}
}

func TestSetBirthTimeDirectory(t *testing.T) {
	// Directories need FILE_FLAG_BACKUP_SEMANTICS to be opened at all.
	dir := t.TempDir()

	const seconds = 1672531200
	if err := Set(dir, seconds); err != nil {
		t.Fatalf("Set(%q, %d) = %v, want nil", dir, seconds, err)
	}
	if got := creationSeconds(t, dir); got != seconds {
		t.Errorf("creation time = %d, want %d", got, seconds)
	}
}
