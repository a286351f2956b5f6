package ml

import (
	"testing"
)

func writeTestArtifacts(t *testing.T, dir string) ArtifactPaths {
	t.Helper()
	return ArtifactPaths{
		Scaler:       writeFile(t, dir, "scaler.json", `{"mean":[0,0],"scale":[1,1]}`),
		Logistic:     writeFile(t, dir, "logistic.json", `{"weights":[1,1],"intercept":0}`),
		DecisionTree: writeFile(t, dir, "tree.json", testTree),
	}
}

func TestStoreLoadsBundle(t *testing.T) {
	paths := writeTestArtifacts(t, t.TempDir())

	store, err := NewStore(paths, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bundle := store.Bundle()
	if bundle.Scaler == nil || bundle.Logistic == nil || bundle.DecisionTree == nil {
		t.Fatal("expected all artifacts loaded")
	}
}

func TestStoreFailsOnMissingArtifact(t *testing.T) {
	paths := writeTestArtifacts(t, t.TempDir())
	paths.Logistic = paths.Logistic + ".missing"

	if _, err := NewStore(paths, 2); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestStoreReloadSwapsBundle(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestArtifacts(t, dir)

	store, err := NewStore(paths, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := store.Bundle()

	writeFile(t, dir, "logistic.json", `{"weights":[2,2],"intercept":1}`)
	if err := store.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := store.Bundle()
	if after == before {
		t.Fatal("expected a new bundle after reload")
	}
	if after.Logistic.Intercept != 1 {
		t.Fatalf("expected reloaded intercept 1, got %f", after.Logistic.Intercept)
	}
}

func TestStoreReloadKeepsBundleOnFailure(t *testing.T) {
	dir := t.TempDir()
	paths := writeTestArtifacts(t, dir)

	store, err := NewStore(paths, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := store.Bundle()

	writeFile(t, dir, "logistic.json", `not json`)
	if err := store.Reload(); err == nil {
		t.Fatal("expected reload error for corrupt artifact")
	}
	if store.Bundle() != before {
		t.Fatal("expected previous bundle to stay active")
	}
}
