package store

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	// Test Put and Get
	err := s.Put("and2", "A.B")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("and2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "A.B" {
		t.Errorf("expected 'A.B', got '%s'", got)
	}

	// Test Delete
	err = s.Delete("and2")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err = s.Get("and2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreNames(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	for name, source := range map[string]string{"xor": "A^B", "and": "A.B", "or": "A+B"} {
		if err := s.Put(name, source); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"and", "or", "xor"}) {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestSQLiteStore(t *testing.T) {
	// Create temp file
	f, err := os.CreateTemp("", "truthtab-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}

	// Test Put and Get
	err = s.Put("distributed", "(A+B).(A+C)")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("distributed")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "(A+B).(A+C)" {
		t.Errorf("expected '(A+B).(A+C)', got '%s'", got)
	}

	// Close and reopen to verify persistence
	s.Close()

	s2, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("Failed to reopen SQLite store: %v", err)
	}
	defer s2.Close()

	got, err = s2.Get("distributed")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got != "(A+B).(A+C)" {
		t.Errorf("expected '(A+B).(A+C)' after reopen, got '%s'", got)
	}

	// Test overwrite
	if err := s2.Put("distributed", "A+(B.C)"); err != nil {
		t.Fatalf("Put overwrite failed: %v", err)
	}
	got, err = s2.Get("distributed")
	if err != nil {
		t.Fatalf("Get after overwrite failed: %v", err)
	}
	if got != "A+(B.C)" {
		t.Errorf("expected 'A+(B.C)', got '%s'", got)
	}

	// Test missing name
	if _, err := s2.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Test Names
	names, err := s2.Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"distributed"}) {
		t.Errorf("expected [distributed], got %v", names)
	}
}
