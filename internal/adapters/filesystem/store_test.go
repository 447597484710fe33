package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tally/internal/adapters/kvstate"
	"tally/internal/domain"
)

func setupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tally-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	return tmpDir
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	dir := setupTestDir(t)

	s, err := Open(filepath.Join(dir, "tally.json"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if _, ok, err := s.Get(context.Background(), "counterLists"); err != nil || ok {
		t.Errorf("expected missing key, got ok=%v err=%v", ok, err)
	}
}

func TestOpen_EmptyFileIsEmpty(t *testing.T) {
	dir := setupTestDir(t)
	path := filepath.Join(dir, "tally.json")
	if err := os.WriteFile(path, []byte("\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Open(path, nil); err != nil {
		t.Errorf("expected empty file to open, got %v", err)
	}
}

func TestOpen_Corrupted(t *testing.T) {
	dir := setupTestDir(t)
	path := filepath.Join(dir, "tally.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Open(path, nil); err == nil {
		t.Error("expected parse error for corrupted file")
	}
}

func TestSetMany_PersistsAndReloads(t *testing.T) {
	dir := setupTestDir(t)
	path := filepath.Join(dir, "sub", "tally.json")
	ctx := context.Background()

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.SetMany(ctx, map[string][]byte{"a": []byte(`1`), "b": []byte(`{"x":true}`)}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	v, ok, err := reopened.Get(ctx, "b")
	if err != nil || !ok {
		t.Fatalf("expected key b, got ok=%v err=%v", ok, err)
	}
	if !strings.Contains(string(v), `"x"`) {
		t.Errorf("unexpected value %s", v)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the store file, found %d entries (temp file left behind?)", len(entries))
	}
}

func TestSetMany_RejectsNonJSON(t *testing.T) {
	dir := setupTestDir(t)
	ctx := context.Background()

	s, err := Open(filepath.Join(dir, "tally.json"), nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	err = s.SetMany(ctx, map[string][]byte{"good": []byte(`2`), "bad": []byte(`not json`)})
	if !errors.Is(err, ErrNotJSON) {
		t.Fatalf("expected ErrNotJSON, got %v", err)
	}
	if _, ok, _ := s.Get(ctx, "good"); ok {
		t.Error("a rejected batch must not write any key")
	}
}

func TestSetMany_SeesOtherWriters(t *testing.T) {
	dir := setupTestDir(t)
	path := filepath.Join(dir, "tally.json")
	ctx := context.Background()

	first, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	second, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := first.SetMany(ctx, map[string][]byte{"a": []byte(`1`)}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}
	if v, ok, err := second.Get(ctx, "a"); err != nil || !ok || string(v) != "1" {
		t.Fatalf("second store missed the first write: v=%s ok=%v err=%v", v, ok, err)
	}

	if err := second.SetMany(ctx, map[string][]byte{"b": []byte(`"two"`)}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}
	if err := first.SetMany(ctx, map[string][]byte{"c": []byte(`[3]`)}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	for _, key := range []string{"a", "b", "c"} {
		if _, ok, err := reopened.Get(ctx, key); err != nil || !ok {
			t.Errorf("key %s lost: ok=%v err=%v", key, ok, err)
		}
	}
}

func TestGet_FileRemovedIsEmpty(t *testing.T) {
	dir := setupTestDir(t)
	path := filepath.Join(dir, "tally.json")
	ctx := context.Background()

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.SetMany(ctx, map[string][]byte{"a": []byte(`1`)}); err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, ok, err := s.Get(ctx, "a"); err != nil || ok {
		t.Errorf("expected missing key after removal, got ok=%v err=%v", ok, err)
	}
}

func TestBoardRoundTrip(t *testing.T) {
	dir := setupTestDir(t)
	path := DefaultPath(dir)
	ctx := context.Background()

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	board := domain.DefaultBoard()
	board.AddCounter()
	if err := kvstate.NewStore(s).Save(ctx, board); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	loaded, err := kvstate.NewStore(reopened).Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CurrentList().Len() != 2 {
		t.Errorf("expected 2 counters, got %d", loaded.CurrentList().Len())
	}
}
