package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartProfileUnknownMode(t *testing.T) {
	stop, err := startProfile("trace", t.TempDir())
	if err == nil {
		t.Fatal("Expected an error for an unknown mode")
	}
	if stop != nil {
		t.Error("Expected no stop func for an unknown mode")
	}
}

func TestStartProfileOff(t *testing.T) {
	dir := t.TempDir()
	stop, err := startProfile("", dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	stop()
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no profile written, got %d files", len(entries))
	}
}

func TestStartProfileWritesOnStop(t *testing.T) {
	dir := t.TempDir()
	stop, err := startProfile("mem", dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	stop()
	if _, err := os.Stat(filepath.Join(dir, "mem.pprof")); err != nil {
		t.Errorf("Expected mem.pprof after stop: %v", err)
	}
}
