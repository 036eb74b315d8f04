package client

import (
	"net/url"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/clientcfg"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/credentials"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/region"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/transport"
)

// ServiceIdentity carries the two constants a concrete service client
// supplies: the endpoint prefix used for DNS-style endpoint derivation (the
// "storage" in storage.us-west-2.nimbuscloud.io) and the name the service
// signs requests under.
type ServiceIdentity struct {
	EndpointPrefix string
	SigningName    string
}

// Builder accumulates client configuration and finalizes it into immutable
// sync or async configurations. Builders are not safe for concurrent
// mutation; configure from one goroutine, then finalize as often as needed.
// Finalization never mutates the builder's own state, so repeated
// finalizations from unchanged state are independent and deterministic.
type Builder struct {
	identity        ServiceIdentity
	region          region.Region
	regionProvider  region.Provider
	serviceDefaults ConfigurationDefaults
	timeouts        transport.Timeouts
	mutable         *clientcfg.MutableClientConfiguration
}

// Option customizes a Builder at construction time.
type Option func(*Builder)

// WithRegionProvider replaces the ambient region-provider chain consulted
// when no explicit region is set. Mostly for tests and embedded environments.
func WithRegionProvider(p region.Provider) Option {
	return func(b *Builder) { b.regionProvider = p }
}

// WithServiceDefaults installs the service-specific default layer. Concrete
// service clients use this to inject defaults beyond the generic ones.
func WithServiceDefaults(d ConfigurationDefaults) Option {
	return func(b *Builder) { b.serviceDefaults = d }
}

// NewBuilder creates a builder for the service identified by identity. The
// ambient region-provider chain is used for region detection unless replaced
// with WithRegionProvider.
func NewBuilder(identity ServiceIdentity, opts ...Option) *Builder {
	b := &Builder{
		identity:        identity,
		regionProvider:  region.DefaultProviderChain(),
		serviceDefaults: ConfigurationDefaults{Name: "service"},
		mutable:         clientcfg.NewMutableClientConfiguration(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Region sets an explicit region. It takes precedence over ambient region
// detection.
func (b *Builder) Region(r region.Region) *Builder {
	b.region = r
	return b
}

// EndpointOverride sets an explicit service endpoint, used verbatim in place
// of region-derived endpoint construction. No validation occurs at set time.
func (b *Builder) EndpointOverride(u *url.URL) *Builder {
	b.mutable.SetEndpoint(u)
	return b
}

// OverrideConfiguration replaces the override configuration wholesale.
func (b *Builder) OverrideConfiguration(o clientcfg.Overrides) *Builder {
	b.mutable.SetOverrides(o)
	return b
}

// CredentialsProvider sets the credentials provider. An explicit provider is
// never replaced by any default layer.
func (b *Builder) CredentialsProvider(p credentials.Provider) *Builder {
	b.mutable.SetCredentialsProvider(p)
	return b
}

// Executor sets the executor async invocations run on. Only consulted by
// async finalization.
func (b *Builder) Executor(e transport.Executor) *Builder {
	b.mutable.SetExecutor(e)
	return b
}

// SyncTransport sets an explicit blocking transport, suppressing the
// transport-default binding during sync finalization.
func (b *Builder) SyncTransport(t *transport.SyncClient) *Builder {
	b.mutable.SetSyncTransport(t)
	return b
}

// AsyncTransport sets an explicit non-blocking transport, suppressing the
// transport-default binding during async finalization.
func (b *Builder) AsyncTransport(t *transport.AsyncClient) *Builder {
	b.mutable.SetAsyncTransport(t)
	return b
}

// Timeouts sets the transport timeouts applied when the transport-default
// layer binds a client. Zero fields get defaults at bind time.
func (b *Builder) Timeouts(t transport.Timeouts) *Builder {
	b.timeouts = t
	return b
}

// Identity returns the service identity this builder was created for.
func (b *Builder) Identity() ServiceIdentity {
	return b.identity
}
