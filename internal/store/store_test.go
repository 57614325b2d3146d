package store

import (
	"context"
	"errors"
	"testing"
)

type record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			if err := PutJSON(ctx, s, "a1", record{Name: "backend", Score: 67}); err != nil {
				t.Fatalf("PutJSON: %v", err)
			}

			var got record
			if err := GetJSON(ctx, s, "a1", &got); err != nil {
				t.Fatalf("GetJSON: %v", err)
			}
			if got != (record{Name: "backend", Score: 67}) {
				t.Fatalf("unexpected record: %+v", got)
			}

			if err := s.Put(ctx, "a1", []byte(`{"name":"frontend"}`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got = record{}
			if err := GetJSON(ctx, s, "a1", &got); err != nil || got.Name != "frontend" {
				t.Fatalf("expected overwritten value, got %+v (%v)", got, err)
			}

			if err := s.Delete(ctx, "a1"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if err := s.Delete(ctx, "a1"); err != nil {
				t.Fatalf("second delete must not fail: %v", err)
			}
			if _, err := s.Get(ctx, "a1"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

func TestStoreHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, s := range stores(t) {
		if err := s.Put(ctx, "k", []byte("v")); !errors.Is(err, context.Canceled) {
			t.Fatalf("%s: expected context.Canceled, got %v", name, err)
		}
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	value := []byte("abc")
	if err := s.Put(ctx, "k", value); err != nil {
		t.Fatalf("Put: %v", err)
	}
	value[0] = 'x'

	got, _ := s.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value must not alias the caller's slice, got %q", got)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	for _, key := range []string{"", "../escape", "a/b", ".."} {
		if err := s.Put(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("expected key %q to be rejected", key)
		}
	}
}

func TestGetJSONDecodeError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Put(ctx, "bad", []byte("{"))

	var r record
	if err := GetJSON(ctx, s, "bad", &r); err == nil {
		t.Fatalf("expected decode error")
	}
}
