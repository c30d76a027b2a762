package fswatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWaitForPath_AlreadyExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ffb.sock")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WaitForPath(context.Background(), path); err != nil {
		t.Errorf("WaitForPath() error = %v", err)
	}
}

func TestWaitForPath_Created(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ffb.sock")

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other"), nil, 0o600)
		_ = os.WriteFile(path, nil, 0o600)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := WaitForPath(ctx, path); err != nil {
		t.Errorf("WaitForPath() error = %v", err)
	}
}

func TestWaitForPath_ContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := WaitForPath(ctx, filepath.Join(t.TempDir(), "never.sock"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForPath() error = %v, want DeadlineExceeded", err)
	}
}

func TestWaitForPath_MissingDir(t *testing.T) {
	err := WaitForPath(context.Background(), filepath.Join(t.TempDir(), "nope", "ffb.sock"))
	if err == nil {
		t.Error("WaitForPath() error = nil, want error for missing directory")
	}
}
