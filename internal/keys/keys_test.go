package keys

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeKeysFile writes a keys.json with the given content into a temp dir and
// points TOOLBOX_KEYS_PATH at it for the duration of the test.
func writeKeysFile(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "keys.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write keys file: %v", err)
	}
	t.Setenv(KeysPathEnv, path)
}

func TestGetFromFile(t *testing.T) {
	writeKeysFile(t, `{"brave": "file-key-123"}`)
	t.Setenv("BRAVE_API_KEY", "")

	key, err := Get("brave", "BRAVE_API_KEY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "file-key-123" {
		t.Errorf("expected file-key-123, got %q", key)
	}
}

func TestGetFilePrecedesEnv(t *testing.T) {
	writeKeysFile(t, `{"exa": "file-key"}`)
	t.Setenv("EXA_API_KEY", "env-key")

	key, err := Get("exa", "EXA_API_KEY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "file-key" {
		t.Errorf("expected file key to win, got %q", key)
	}
}

func TestGetFallsBackToEnv(t *testing.T) {
	writeKeysFile(t, `{"other": "irrelevant"}`)
	t.Setenv("EXA_API_KEY", "env-key")

	key, err := Get("exa", "EXA_API_KEY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" {
		t.Errorf("expected env-key, got %q", key)
	}
}

func TestGetMissingKey(t *testing.T) {
	writeKeysFile(t, `{}`)
	t.Setenv("BRAVE_API_KEY", "")

	_, err := Get("brave", "BRAVE_API_KEY")
	if err == nil {
		t.Fatal("expected error for missing key, got nil")
	}
	if !strings.Contains(err.Error(), "brave") {
		t.Errorf("expected error to name the alias, got: %v", err)
	}
	if !strings.Contains(err.Error(), "BRAVE_API_KEY") {
		t.Errorf("expected error to name the env var, got: %v", err)
	}
}

func TestGetEmptyValueCountsAsMissing(t *testing.T) {
	writeKeysFile(t, `{"brave": ""}`)
	t.Setenv("BRAVE_API_KEY", "")

	_, err := Get("brave", "BRAVE_API_KEY")
	if err == nil {
		t.Fatal("expected error for empty key, got nil")
	}
}

func TestGetMalformedFile(t *testing.T) {
	writeKeysFile(t, `{not json`)

	_, err := Get("brave", "BRAVE_API_KEY")
	if err == nil {
		t.Fatal("expected error for malformed keys file, got nil")
	}
	if !strings.Contains(err.Error(), "parsing keys file") {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestGetMissingFileFallsThrough(t *testing.T) {
	t.Setenv(KeysPathEnv, filepath.Join(t.TempDir(), "does-not-exist.json"))
	t.Setenv("EXA_API_KEY", "env-key")

	key, err := Get("exa", "EXA_API_KEY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "env-key" {
		t.Errorf("expected env-key, got %q", key)
	}
}
