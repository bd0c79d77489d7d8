package kv

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteGetSet(t *testing.T) {
	s := openTestDB(t)

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok %v, err %v; want absent, nil", ok, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set error: %v", err)
	}

	v, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !ok || v != "v1" {
		t.Errorf("Get(k) = %q, %v; want v1, true", v, ok)
	}
}

func TestSQLiteUpsert(t *testing.T) {
	s := openTestDB(t)

	if err := s.Set("k", "first"); err != nil {
		t.Fatalf("set error: %v", err)
	}
	if err := s.Set("k", "second"); err != nil {
		t.Fatalf("set error: %v", err)
	}

	v, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !ok || v != "second" {
		t.Errorf("Get(k) = %q, %v; want second, true", v, ok)
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if err := s.Set("k", "durable"); err != nil {
		t.Fatalf("set error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer s2.Close()

	v, ok, err := s2.Get("k")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !ok || v != "durable" {
		t.Errorf("Get(k) after reopen = %q, %v; want durable, true", v, ok)
	}
}
