package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sobinrajan1999/dsa/unionfind"
	"github.com/sobinrajan1999/dsa/xerrors"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d, _ := unionfind.New(6)
	d.Union(0, 1)
	d.Union(2, 3)

	if err := store.Save(ctx, "clusters", d.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	snap, err := store.Load(ctx, "clusters")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	restored, err := unionfind.FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if restored.Count() != 4 {
		t.Errorf("restored Count() = %d, want 4", restored.Count())
	}
	ok, _ := restored.Connected(0, 1)
	if !ok {
		t.Error("restored Connected(0, 1) = false")
	}
}

func TestFileStoreOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d, _ := unionfind.New(3)
	if err := store.Save(ctx, "k", d.Snapshot()); err != nil {
		t.Fatal(err)
	}
	d.Union(0, 1)
	if err := store.Save(ctx, "k", d.Snapshot()); err != nil {
		t.Fatal(err)
	}

	snap, err := store.Load(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Count != 2 {
		t.Errorf("Count = %d after overwrite, want 2", snap.Count)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Load(context.Background(), "absent"); !errors.Is(err, xerrors.ErrSnapshotNotFound) {
		t.Errorf("Load error = %v, want ErrSnapshotNotFound", err)
	}
	if err := store.Delete(context.Background(), "absent"); !errors.Is(err, xerrors.ErrSnapshotNotFound) {
		t.Errorf("Delete error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	d, _ := unionfind.New(2)
	if err := store.Save(ctx, "gone", d.Snapshot()); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, "gone"); !errors.Is(err, xerrors.ErrSnapshotNotFound) {
		t.Errorf("Load error = %v after delete, want ErrSnapshotNotFound", err)
	}
}

func TestFileStoreInvalidKey(t *testing.T) {
	store := newTestStore(t)
	d, _ := unionfind.New(1)

	for _, key := range []string{"", "a/b", `a\b`, "../escape"} {
		if err := store.Save(context.Background(), key, d.Snapshot()); !errors.Is(err, xerrors.ErrInvalidKey) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(context.Background(), "bad"); !errors.Is(err, xerrors.ErrSnapshotCorrupt) {
		t.Errorf("Load error = %v, want ErrSnapshotCorrupt", err)
	}
}

func TestFileStoreContextCancelled(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, _ := unionfind.New(1)
	if err := store.Save(ctx, "k", d.Snapshot()); !errors.Is(err, context.Canceled) {
		t.Errorf("Save error = %v, want context.Canceled", err)
	}
}
