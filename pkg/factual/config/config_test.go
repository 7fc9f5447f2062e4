package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/factual/pkg/factual/internalerr"
)

func writeTempScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp script: %v", err)
	}
	return path
}

func TestLoadScript(t *testing.T) {
	path := writeTempScript(t, `
statements:
  - John likes pizza
  - Alice is tall
questions:
  - Is Alice tall?
`)

	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if len(s.Statements) != 2 {
		t.Errorf("statements = %v", s.Statements)
	}
	if len(s.Questions) != 1 || s.Questions[0] != "Is Alice tall?" {
		t.Errorf("questions = %v", s.Questions)
	}
}

func TestLoadScriptEmptyRejected(t *testing.T) {
	path := writeTempScript(t, "statements: []\nquestions: []\n")

	_, err := LoadScript(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	if _, err := LoadScript(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultScript(t *testing.T) {
	s := DefaultScript()
	if len(s.Statements) == 0 || len(s.Questions) == 0 {
		t.Fatal("default script must carry statements and questions")
	}
}
