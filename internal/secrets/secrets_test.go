package secrets

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringStore(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("")

	if _, err := store.Get("operator"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before Set, got %v", err)
	}

	if err := store.Set(" Operator ", "op-key"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get("operator")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "op-key" {
		t.Errorf("Get = %q, want %q", got, "op-key")
	}

	if err := store.Delete("OPERATOR"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete("operator"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second Delete, got %v", err)
	}
}

func TestMockStore(t *testing.T) {
	store := NewMockStore()

	if err := store.Set("admin", "adm-key"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get("ADMIN")
	if err != nil || got != "adm-key" {
		t.Fatalf("Get = %q, %v", got, err)
	}
	if err := store.Delete("admin"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("admin"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after Delete, got %v", err)
	}
}
