package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDebugOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	log, err := New(path, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("should go nowhere")

	// Nop logger: no file, not even the directory.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("log file created with debug off: %v", err)
	}
}

func TestNewDebugOn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	log, err := New(path, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Debug("hello")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file empty after a debug entry")
	}
}
