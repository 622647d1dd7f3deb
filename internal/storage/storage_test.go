package storage

import (
	"path/filepath"
	"testing"
)

// kvContract exercises the KV behaviors every backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()

	// Missing key.
	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	// Set then get.
	if err := kv.Set(KeyJourneys, []byte(`[{"id":"j1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := kv.Get(KeyJourneys)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"j1"}]` {
		t.Errorf("Get = %q", got)
	}

	// Set replaces the whole value.
	if err := kv.Set(KeyJourneys, []byte(`[]`)); err != nil {
		t.Fatalf("Set replace: %v", err)
	}
	got, _, _ = kv.Get(KeyJourneys)
	if string(got) != `[]` {
		t.Errorf("Get after replace = %q", got)
	}

	// Delete, including a missing key.
	if err := kv.Delete(KeyJourneys); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get(KeyJourneys); ok {
		t.Error("key still present after Delete")
	}
	if err := kv.Delete(KeyJourneys); err != nil {
		t.Errorf("Delete(missing): %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	val := []byte("original")
	if err := kv.Set("k", val); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's slice must not reach the store.
	val[0] = 'X'
	got, _, _ := kv.Get("k")
	if string(got) != "original" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}

	// Nor must mutating a returned slice.
	got[0] = 'Y'
	again, _, _ := kv.Get("k")
	if string(again) != "original" {
		t.Errorf("returned value aliased store: %q", again)
	}
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "test.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	kvContract(t, db)
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Set(KeySettings, []byte(`{"theme":"dark"}`)); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	db2, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db2.Close()

	got, ok, err := db2.Get(KeySettings)
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok=%v err=%v", ok, err)
	}
	if string(got) != `{"theme":"dark"}` {
		t.Errorf("Get after reopen = %q", got)
	}
}
