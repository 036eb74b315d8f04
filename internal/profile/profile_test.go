package profile

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad verifies parsing of the [profile] table and the lenient handling
// of missing files.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[profile]\nregion = \"us-west-2\"\naccess_key_id = \"NKIA\"\nsecret_access_key = \"s\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prof, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prof.Region != "us-west-2" || prof.AccessKeyID != "NKIA" || prof.SecretAccessKey != "s" {
		t.Fatalf("unexpected profile: %+v", prof)
	}

	prof, err = Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if prof != (Profile{}) {
		t.Fatalf("expected empty profile for missing file, got %+v", prof)
	}
}

// TestLoadInvalid verifies that malformed TOML surfaces an error.
func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[profile\nregion="), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

// TestDefaultPath verifies that NIMBUS_CONFIG_FILE overrides the home
// directory location.
func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigFile, "/tmp/custom.toml")
	path, ok := DefaultPath()
	if !ok || path != "/tmp/custom.toml" {
		t.Fatalf("expected override path, got (%s, %v)", path, ok)
	}

	t.Setenv(EnvConfigFile, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}
	path, ok = DefaultPath()
	if !ok || path != filepath.Join(home, ".nimbus", "config.toml") {
		t.Fatalf("unexpected default path: (%s, %v)", path, ok)
	}
}
