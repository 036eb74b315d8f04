package region

import (
	"os"

	"go.uber.org/zap"

	"github.com/nimbuscloud/nimbus-sdk-go/internal/profile"
)

// EnvRegion is the environment variable consulted by EnvProvider.
const EnvRegion = "NIMBUS_REGION"

// Provider yields a best-effort region from ambient configuration. The second
// return value is false when the provider has no answer; providers never
// guess.
type Provider interface {
	GetRegion() (Region, bool)
}

// StaticProvider always returns a fixed region. Useful in tests and for
// callers that resolve the region themselves.
type StaticProvider struct {
	Region Region
}

// GetRegion returns the configured region, or no region if it is empty.
func (p StaticProvider) GetRegion() (Region, bool) {
	return p.Region, p.Region != ""
}

// EnvProvider reads the region from the NIMBUS_REGION environment variable.
type EnvProvider struct{}

// GetRegion returns the value of NIMBUS_REGION, or no region if unset.
func (EnvProvider) GetRegion() (Region, bool) {
	v := os.Getenv(EnvRegion)
	return Region(v), v != ""
}

// ProfileProvider reads the region key of the shared configuration file.
// An empty Path means the default location (see profile.DefaultPath).
type ProfileProvider struct {
	Path string
}

// GetRegion returns the region from the profile file, or no region if the
// file is absent, unreadable, or has no region key.
func (p ProfileProvider) GetRegion() (Region, bool) {
	path := p.Path
	if path == "" {
		var ok bool
		path, ok = profile.DefaultPath()
		if !ok {
			return "", false
		}
	}

	prof, err := profile.Load(path)
	if err != nil {
		zap.L().Debug("region profile lookup failed", zap.String("path", path), zap.Error(err))
		return "", false
	}
	return Region(prof.Region), prof.Region != ""
}

// Chain queries a fixed sequence of providers and returns the first region
// found. An empty chain finds nothing.
type Chain struct {
	Providers []Provider
}

// GetRegion returns the first region any provider in the chain yields.
func (c Chain) GetRegion() (Region, bool) {
	for _, p := range c.Providers {
		if r, ok := p.GetRegion(); ok {
			return r, true
		}
	}
	return "", false
}

// DefaultProviderChain returns the standard ambient-region lookup order:
// environment variable first, then the shared configuration file.
func DefaultProviderChain() Provider {
	return Chain{Providers: []Provider{
		EnvProvider{},
		ProfileProvider{},
	}}
}
