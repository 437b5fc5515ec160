package util

import (
	"testing"
)

func TestPathKey(t *testing.T) {
	key := PathKey("/tmp/example.txt")
	if len(key) != 64 {
		t.Errorf("PathKey returned %d hex chars, want 64", len(key))
	}
	if key != PathKey("/tmp/example.txt") {
		t.Error("PathKey is not deterministic")
	}
	if key == PathKey("/tmp/other.txt") {
		t.Error("PathKey returned the same key for different paths")
	}
}
