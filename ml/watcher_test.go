package ml

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcherReloadsOnArtifactWrite(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestArtifacts(t, dir)

	store, err := NewStore(paths, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := make(chan struct{}, 1)
	watcher, err := NewWatcher(store, zap.NewNop(), func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer watcher.Close()

	writeFile(t, dir, "logistic.json", `{"weights":[3,3],"intercept":9}`)

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	if got := store.Bundle().Logistic.Intercept; got != 9 {
		t.Fatalf("expected reloaded intercept 9, got %f", got)
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestArtifacts(t, dir)

	store, err := NewStore(paths, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := store.Bundle()

	reloaded := make(chan struct{}, 1)
	watcher, err := NewWatcher(store, zap.NewNop(), func() { reloaded <- struct{}{} })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer watcher.Close()

	writeFile(t, dir, "notes.txt", "not an artifact")

	select {
	case <-reloaded:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(2 * reloadDebounce):
	}

	if store.Bundle() != before {
		t.Fatal("expected bundle to be untouched")
	}
}
