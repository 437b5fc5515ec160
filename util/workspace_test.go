package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetWorkspaceDirOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "ws")
	t.Setenv("BTIME_WS_DIR", want)

	got, err := GetWorkspaceDir()
	if err != nil {
		t.Fatalf("GetWorkspaceDir() returned error: %v", err)
	}
	if got != want {
		t.Errorf("GetWorkspaceDir() = %q, want %q", got, want)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Errorf("workspace directory %q was not created", got)
	}
}

func TestGetDBPath(t *testing.T) {
	ws := t.TempDir()
	t.Setenv("BTIME_WS_DIR", ws)

	got, err := GetDBPath()
	if err != nil {
		t.Fatalf("GetDBPath() returned error: %v", err)
	}
	want := filepath.Join(ws, "db", "btime.db")
	if got != want {
		t.Errorf("GetDBPath() = %q, want %q", got, want)
	}
}
