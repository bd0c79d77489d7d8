package kv

import (
	"sync"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	s := NewMemory()

	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Errorf("Get(missing) = ok %v, err %v; want absent, nil", ok, err)
	}

	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set error: %v", err)
	}
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("set error: %v", err)
	}

	v, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !ok || v != "v2" {
		t.Errorf("Get(k) = %q, %v; want v2, true", v, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	s := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set("shared", "value")
				s.Get("shared")
			}
		}()
	}
	wg.Wait()

	if v, ok, _ := s.Get("shared"); !ok || v != "value" {
		t.Errorf("Get(shared) = %q, %v; want value, true", v, ok)
	}
}
