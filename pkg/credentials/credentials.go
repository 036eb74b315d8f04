package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/nimbuscloud/nimbus-sdk-go/internal/profile"
)

// Environment variables consulted by EnvProvider.
const (
	EnvAccessKeyID     = "NIMBUS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "NIMBUS_SECRET_ACCESS_KEY"
)

// ErrNoCredentials is returned when a provider (or the whole chain) cannot
// supply credentials.
var ErrNoCredentials = errors.New("no credentials found")

// Credentials is an immutable access-key pair. Source names the provider that
// produced it, for diagnostics.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Source          string
}

// Provider supplies credentials on demand. Retrieve may be called many times
// over the life of a client; implementations that read external state should
// be cheap or cache internally.
type Provider interface {
	Retrieve() (Credentials, error)
}

// StaticProvider returns fixed credentials.
type StaticProvider struct {
	Credentials Credentials
}

// Retrieve returns the fixed credentials, or ErrNoCredentials when the access
// key ID is empty.
func (p StaticProvider) Retrieve() (Credentials, error) {
	if p.Credentials.AccessKeyID == "" {
		return Credentials{}, fmt.Errorf("static provider: %w", ErrNoCredentials)
	}
	c := p.Credentials
	if c.Source == "" {
		c.Source = "static"
	}
	return c, nil
}

// EnvProvider reads credentials from the NIMBUS_ACCESS_KEY_ID and
// NIMBUS_SECRET_ACCESS_KEY environment variables.
type EnvProvider struct{}

// Retrieve returns the environment credentials, or ErrNoCredentials when
// either variable is unset.
func (EnvProvider) Retrieve() (Credentials, error) {
	id := os.Getenv(EnvAccessKeyID)
	secret := os.Getenv(EnvSecretAccessKey)
	if id == "" || secret == "" {
		return Credentials{}, fmt.Errorf("environment provider: %w", ErrNoCredentials)
	}
	return Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		Source:          "environment",
	}, nil
}

// ProfileProvider reads credentials from the shared configuration file.
// An empty Path means the default location (see profile.DefaultPath).
type ProfileProvider struct {
	Path string
}

// Retrieve returns the profile credentials, or ErrNoCredentials when the file
// is absent or has no complete key pair.
func (p ProfileProvider) Retrieve() (Credentials, error) {
	path := p.Path
	if path == "" {
		var ok bool
		path, ok = profile.DefaultPath()
		if !ok {
			return Credentials{}, fmt.Errorf("profile provider: %w", ErrNoCredentials)
		}
	}

	prof, err := profile.Load(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("profile provider: %w", err)
	}
	if prof.AccessKeyID == "" || prof.SecretAccessKey == "" {
		return Credentials{}, fmt.Errorf("profile provider: %w", ErrNoCredentials)
	}
	return Credentials{
		AccessKeyID:     prof.AccessKeyID,
		SecretAccessKey: prof.SecretAccessKey,
		Source:          "profile",
	}, nil
}

// Chain queries a fixed sequence of providers and returns the first
// credentials found. Providers failing with ErrNoCredentials are skipped; any
// other failure stops the chain.
type Chain struct {
	Providers []Provider
}

// Retrieve returns the first credentials any provider in the chain yields.
func (c Chain) Retrieve() (Credentials, error) {
	for _, p := range c.Providers {
		creds, err := p.Retrieve()
		if err == nil {
			return creds, nil
		}
		if !errors.Is(err, ErrNoCredentials) {
			return Credentials{}, err
		}
	}
	return Credentials{}, fmt.Errorf("provider chain exhausted: %w", ErrNoCredentials)
}

// DefaultChain returns the standard credentials lookup order: environment
// variables first, then the shared configuration file.
func DefaultChain() Provider {
	return Chain{Providers: []Provider{
		EnvProvider{},
		ProfileProvider{},
	}}
}
