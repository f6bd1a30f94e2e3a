package secrets

import (
	"bytes"
	"strings"
	"testing"

	"fleetworks/fleetenv/internal/secrets"
)

func setupStore(t *testing.T) *secrets.MockStore {
	t.Helper()
	store := secrets.NewMockStore()
	orig := storeFactory
	storeFactory = func() secrets.Store { return store }
	t.Cleanup(func() { storeFactory = orig })
	return store
}

func execSecrets(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGet(t *testing.T) {
	store := setupStore(t)
	_ = store.Set("operator", "op-key")

	out, err := execSecrets(t, "get", " Operator ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "op-key\n" {
		t.Errorf("expected op-key, got %q", out)
	}
}

func TestGet_NotStored(t *testing.T) {
	setupStore(t)

	_, err := execSecrets(t, "get", "admin")
	if err == nil || !strings.Contains(err.Error(), "--store-keys") {
		t.Fatalf("expected hint about --store-keys, got %v", err)
	}
}

func TestGet_UnknownName(t *testing.T) {
	setupStore(t)

	_, err := execSecrets(t, "get", "root")
	if err == nil || !strings.Contains(err.Error(), "unknown secret") {
		t.Fatalf("expected unknown secret error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := setupStore(t)
	_ = store.Set("admin", "a")

	if _, err := execSecrets(t, "delete", "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get("admin"); err == nil {
		t.Error("admin key should be removed")
	}

	if _, err := execSecrets(t, "delete", "admin"); err == nil {
		t.Error("expected error deleting a missing key")
	}
}

func TestDelete_All(t *testing.T) {
	store := setupStore(t)
	_ = store.Set("monitor", "m")
	_ = store.Set(secrets.AppSecretName, "s")

	out, err := execSecrets(t, "delete", "--all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Removed monitor") || !strings.Contains(out, "Removed app-secret") {
		t.Errorf("unexpected output: %s", out)
	}
	if strings.Contains(out, "Removed admin") {
		t.Error("admin was never stored")
	}
}

func TestDelete_RequiresTarget(t *testing.T) {
	setupStore(t)

	if _, err := execSecrets(t, "delete"); err == nil {
		t.Fatal("expected error without names")
	}
	if _, err := execSecrets(t, "delete", "--all", "admin"); err == nil {
		t.Fatal("expected error combining --all with names")
	}
}

func TestStatus(t *testing.T) {
	store := setupStore(t)
	_ = store.Set("operator", "x")

	out, err := execSecrets(t, "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"operator: stored", "monitor: not stored", "app-secret: not stored"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "x\n") {
		t.Error("status must not print values")
	}
}
