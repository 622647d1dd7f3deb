package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	if err := os.WriteFile(path, embedded, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloads := make(chan *Catalog, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(c *Catalog) {
			reloads <- c
		})
	}()

	// Give the watcher a moment to register, then rewrite the file.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, embedded, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-reloads:
		if len(c.Distortions()) == 0 {
			t.Error("reloaded catalog is empty")
		}
	case <-ctx.Done():
		t.Fatal("no reload observed")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Watch returned %v after cancel, want context.Canceled", err)
	}
}

func TestWatchSkipsInvalidContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	if err := os.WriteFile(path, embedded, 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reloads := make(chan *Catalog, 4)
	go Watch(ctx, path, zap.NewNop(), func(c *Catalog) { reloads <- c })

	time.Sleep(200 * time.Millisecond)

	// Broken content must not reach the callback.
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-reloads:
		t.Fatal("invalid content triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}

	// A subsequent valid write recovers.
	if err := os.WriteFile(path, embedded, 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-reloads:
	case <-ctx.Done():
		t.Fatal("valid rewrite not picked up")
	}
}
