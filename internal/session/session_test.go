package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()

	if s.Token() != "" {
		t.Error("Expected a new store to be empty")
	}

	s.Set("token-1")
	if s.Token() != "token-1" {
		t.Errorf("Expected token-1, got %q", s.Token())
	}

	s.Clear()
	if s.Token() != "" {
		t.Error("Expected an empty store after Clear")
	}
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")

	first, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	first.Set("persisted-token")

	second, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if second.Token() != "persisted-token" {
		t.Errorf("Expected the token to survive, got %q", second.Token())
	}

	second.Clear()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected the session file to be removed on Clear")
	}

	third, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if third.Token() != "" {
		t.Errorf("Expected no token after Clear, got %q", third.Token())
	}
}
