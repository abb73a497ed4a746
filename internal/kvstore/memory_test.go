package kvstore

import (
	"errors"
	"testing"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	type record struct {
		Name string `json:"name"`
		Days int    `json:"days"`
	}

	if err := m.Put("plan", record{Name: "pro", Days: 30}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got record
	found, err := m.Get("plan", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("Get: key not found after Put")
	}
	if got.Name != "pro" || got.Days != 30 {
		t.Fatalf("Get = %+v, want {pro 30}", got)
	}
}

func TestMemoryMissingKey(t *testing.T) {
	m := NewMemory()

	var out int
	found, err := m.Get("nope", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Fatal("Get reported a key that was never written")
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()

	if err := m.Put("k", 42); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var out int
	if found, _ := m.Get("k", &out); found {
		t.Fatal("key still present after Delete")
	}
}

func TestMemoryDecodeErrorIsStorageError(t *testing.T) {
	m := NewMemory()

	if err := m.Put("k", "not a number"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out int
	_, err := m.Get("k", &out)
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("Get error = %v, want *StorageError", err)
	}
	if serr.Key != "k" {
		t.Fatalf("StorageError.Key = %q, want %q", serr.Key, "k")
	}
}
