package keep

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New().WithGeneric(filepath.Join(t.TempDir(), "blob.bin"))
}

func TestFileExistsLifecycle(t *testing.T) {
	ctx := context.Background()
	st := tempStore(t)

	ok, err := st.Exists(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("Exists() = true before any write")
	}

	if err := st.Write(ctx, []byte("payload")); err != nil {
		t.Fatalf("write error: %v", err)
	}

	ok, err = st.Exists(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("Exists() = false after write")
	}
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, payload := range [][]byte{
		[]byte("hello world"),
		{},
		{0x00, 0xff, 0x10, 0x80},
	} {
		st := tempStore(t)
		if err := st.Write(ctx, payload); err != nil {
			t.Fatalf("write error: %v", err)
		}
		got, err := st.Read(ctx)
		if err != nil {
			t.Fatalf("read error: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("Read() = %v, want %v", got, payload)
		}
	}
}

func TestFileWriteReplaces(t *testing.T) {
	ctx := context.Background()
	st := tempStore(t)

	if err := st.Write(ctx, []byte("a much longer first payload")); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := st.Write(ctx, []byte("short")); err != nil {
		t.Fatalf("write error: %v", err)
	}

	got, err := st.Read(ctx)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if string(got) != "short" {
		t.Errorf("Read() = %q, want full replacement %q", got, "short")
	}
}

func TestFileReadMissing(t *testing.T) {
	st := tempStore(t)

	_, err := st.Read(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Read() err = %v, want ErrNotFound", err)
	}
}

func TestFileExistsDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	st := New().WithGeneric(path)

	if _, err := st.Exists(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Exists() created %s", path)
	}
}

func TestFileCanceledContext(t *testing.T) {
	st := tempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := st.Write(ctx, []byte("data")); !errors.Is(err, context.Canceled) {
		t.Errorf("Write() err = %v, want context.Canceled", err)
	}
	if _, err := st.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Read() err = %v, want context.Canceled", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~/config.dat", filepath.Join(home, "config.dat")},
		{"~", home},
		{"/etc/config.dat", "/etc/config.dat"},
		{"relative/config.dat", "relative/config.dat"},
	}

	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHomeMarkerResolvesThroughStore(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	dir, err := os.MkdirTemp(home, "keep-test-*")
	if err != nil {
		t.Skipf("cannot create temp dir in home: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	rel, err := filepath.Rel(home, filepath.Join(dir, "blob.bin"))
	if err != nil {
		t.Fatalf("rel error: %v", err)
	}

	ctx := context.Background()
	st := New().WithGeneric("~/" + rel)
	if err := st.Write(ctx, []byte("via home marker")); err != nil {
		t.Fatalf("write error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(home, rel))
	if err != nil {
		t.Fatalf("read back error: %v", err)
	}
	if string(got) != "via home marker" {
		t.Errorf("stored content = %q, want %q", got, "via home marker")
	}
}
