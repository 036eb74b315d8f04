package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// failingProvider simulates a provider with a hard failure (not a clean
// "nothing found").
type failingProvider struct{}

func (failingProvider) Retrieve() (Credentials, error) {
	return Credentials{}, errors.New("backing store unavailable")
}

// TestStaticProvider verifies fixed credentials and the empty-key failure.
func TestStaticProvider(t *testing.T) {
	p := StaticProvider{Credentials: Credentials{
		AccessKeyID:     "NKIAEXAMPLE",
		SecretAccessKey: "secret",
	}}
	creds, err := p.Retrieve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "NKIAEXAMPLE" || creds.Source != "static" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}

	if _, err := (StaticProvider{}).Retrieve(); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

// TestEnvProvider verifies that both environment variables are required.
func TestEnvProvider(t *testing.T) {
	t.Setenv(EnvAccessKeyID, "NKIAEXAMPLE")
	t.Setenv(EnvSecretAccessKey, "secret")

	creds, err := EnvProvider{}.Retrieve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Source != "environment" {
		t.Fatalf("unexpected source: %s", creds.Source)
	}

	t.Setenv(EnvSecretAccessKey, "")
	if _, err := (EnvProvider{}).Retrieve(); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials with partial environment, got %v", err)
	}
}

// TestProfileProvider verifies credentials parsed from the shared
// configuration file.
func TestProfileProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[profile]\naccess_key_id = \"NKIAPROFILE\"\nsecret_access_key = \"psecret\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	creds, err := (ProfileProvider{Path: path}).Retrieve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "NKIAPROFILE" || creds.Source != "profile" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}

	missing := filepath.Join(t.TempDir(), "absent.toml")
	if _, err := (ProfileProvider{Path: missing}).Retrieve(); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials for missing file, got %v", err)
	}
}

// TestChain verifies fallthrough on ErrNoCredentials, the exhaustion error,
// and that hard provider failures stop the chain.
func TestChain(t *testing.T) {
	static := StaticProvider{Credentials: Credentials{
		AccessKeyID:     "NKIACHAIN",
		SecretAccessKey: "secret",
	}}

	creds, err := Chain{Providers: []Provider{StaticProvider{}, static}}.Retrieve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "NKIACHAIN" {
		t.Fatalf("expected fallthrough to second provider, got %+v", creds)
	}

	if _, err := (Chain{Providers: []Provider{StaticProvider{}}}).Retrieve(); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected exhaustion error, got %v", err)
	}

	_, err = Chain{Providers: []Provider{failingProvider{}, static}}.Retrieve()
	if err == nil || errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected hard failure to stop the chain, got %v", err)
	}
}

// TestDefaultChain verifies that environment credentials win over the
// profile file.
func TestDefaultChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[profile]\naccess_key_id = \"NKIAPROFILE\"\nsecret_access_key = \"psecret\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	t.Setenv("NIMBUS_CONFIG_FILE", path)

	t.Setenv(EnvAccessKeyID, "NKIAENV")
	t.Setenv(EnvSecretAccessKey, "esecret")
	creds, err := DefaultChain().Retrieve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Source != "environment" {
		t.Fatalf("expected environment to win, got %s", creds.Source)
	}

	t.Setenv(EnvAccessKeyID, "")
	t.Setenv(EnvSecretAccessKey, "")
	creds, err = DefaultChain().Retrieve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.Source != "profile" {
		t.Fatalf("expected profile fallback, got %s", creds.Source)
	}
}
