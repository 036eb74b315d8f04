package clientcfg

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/credentials"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/transport"
)

// MutableClientConfiguration is the working set of configuration values a
// client builder accumulates. It is owned exclusively by its builder and is
// not safe for concurrent mutation. Finalization operates on a Clone, never
// on the builder's own instance.
type MutableClientConfiguration struct {
	endpoint            *url.URL
	credentialsProvider credentials.Provider
	overrides           Overrides
	executor            transport.Executor
	syncTransport       *transport.SyncClient
	asyncTransport      *transport.AsyncClient
}

// NewMutableClientConfiguration returns an empty working configuration.
func NewMutableClientConfiguration() *MutableClientConfiguration {
	return &MutableClientConfiguration{}
}

// Clone returns an independent copy: option values are copied, the endpoint
// URL is duplicated, and capability references (credentials provider,
// executor, transports) are shared since they are not owned by the
// configuration.
func (c *MutableClientConfiguration) Clone() *MutableClientConfiguration {
	clone := *c
	if c.endpoint != nil {
		u := *c.endpoint
		clone.endpoint = &u
	}
	clone.overrides = BuilderFrom(c.overrides).Build()
	return &clone
}

// Endpoint returns the configured endpoint, or nil when unset.
func (c *MutableClientConfiguration) Endpoint() *url.URL { return c.endpoint }

// SetEndpoint sets the endpoint. No validation occurs at set time.
func (c *MutableClientConfiguration) SetEndpoint(u *url.URL) { c.endpoint = u }

// CredentialsProvider returns the configured provider, or nil when unset.
func (c *MutableClientConfiguration) CredentialsProvider() credentials.Provider {
	return c.credentialsProvider
}

// SetCredentialsProvider sets the credentials provider.
func (c *MutableClientConfiguration) SetCredentialsProvider(p credentials.Provider) {
	c.credentialsProvider = p
}

// Overrides returns the current override configuration.
func (c *MutableClientConfiguration) Overrides() Overrides { return c.overrides }

// SetOverrides replaces the override configuration wholesale.
func (c *MutableClientConfiguration) SetOverrides(o Overrides) { c.overrides = o }

// Executor returns the configured async executor, or nil when unset.
func (c *MutableClientConfiguration) Executor() transport.Executor { return c.executor }

// SetExecutor sets the async executor.
func (c *MutableClientConfiguration) SetExecutor(e transport.Executor) { c.executor = e }

// SyncTransport returns the configured blocking transport, or nil when unset.
func (c *MutableClientConfiguration) SyncTransport() *transport.SyncClient { return c.syncTransport }

// SetSyncTransport sets the blocking transport.
func (c *MutableClientConfiguration) SetSyncTransport(t *transport.SyncClient) { c.syncTransport = t }

// AsyncTransport returns the configured non-blocking transport, or nil when
// unset.
func (c *MutableClientConfiguration) AsyncTransport() *transport.AsyncClient {
	return c.asyncTransport
}

// SetAsyncTransport sets the non-blocking transport.
func (c *MutableClientConfiguration) SetAsyncTransport(t *transport.AsyncClient) {
	c.asyncTransport = t
}

// ImmutableSyncClientConfiguration is the frozen result of finalizing a
// configuration for a blocking client. It is never mutated after construction
// and is safe to share across goroutines.
type ImmutableSyncClientConfiguration struct {
	buildID             string
	endpoint            *url.URL
	credentialsProvider credentials.Provider
	overrides           Overrides
	transport           *transport.SyncClient
}

// NewImmutableSyncConfiguration freezes the given working configuration.
// Every frozen configuration is assigned a unique build ID for log
// correlation.
func NewImmutableSyncConfiguration(c *MutableClientConfiguration) *ImmutableSyncClientConfiguration {
	frozen := c.Clone()
	return &ImmutableSyncClientConfiguration{
		buildID:             uuid.NewString(),
		endpoint:            frozen.endpoint,
		credentialsProvider: frozen.credentialsProvider,
		overrides:           frozen.overrides,
		transport:           frozen.syncTransport,
	}
}

// BuildID returns the unique identifier of this frozen configuration.
func (c *ImmutableSyncClientConfiguration) BuildID() string { return c.buildID }

// Endpoint returns the resolved endpoint.
func (c *ImmutableSyncClientConfiguration) Endpoint() *url.URL { return c.endpoint }

// CredentialsProvider returns the resolved credentials provider.
func (c *ImmutableSyncClientConfiguration) CredentialsProvider() credentials.Provider {
	return c.credentialsProvider
}

// Overrides returns the finalized override configuration.
func (c *ImmutableSyncClientConfiguration) Overrides() Overrides { return c.overrides }

// Transport returns the bound blocking transport.
func (c *ImmutableSyncClientConfiguration) Transport() *transport.SyncClient { return c.transport }

// ImmutableAsyncClientConfiguration is the frozen result of finalizing a
// configuration for a non-blocking client. It additionally carries the
// resolved executor.
type ImmutableAsyncClientConfiguration struct {
	buildID             string
	endpoint            *url.URL
	credentialsProvider credentials.Provider
	overrides           Overrides
	executor            transport.Executor
	transport           *transport.AsyncClient
}

// NewImmutableAsyncConfiguration freezes the given working configuration for
// the async client variant.
func NewImmutableAsyncConfiguration(c *MutableClientConfiguration) *ImmutableAsyncClientConfiguration {
	frozen := c.Clone()
	return &ImmutableAsyncClientConfiguration{
		buildID:             uuid.NewString(),
		endpoint:            frozen.endpoint,
		credentialsProvider: frozen.credentialsProvider,
		overrides:           frozen.overrides,
		executor:            frozen.executor,
		transport:           frozen.asyncTransport,
	}
}

// BuildID returns the unique identifier of this frozen configuration.
func (c *ImmutableAsyncClientConfiguration) BuildID() string { return c.buildID }

// Endpoint returns the resolved endpoint.
func (c *ImmutableAsyncClientConfiguration) Endpoint() *url.URL { return c.endpoint }

// CredentialsProvider returns the resolved credentials provider.
func (c *ImmutableAsyncClientConfiguration) CredentialsProvider() credentials.Provider {
	return c.credentialsProvider
}

// Overrides returns the finalized override configuration.
func (c *ImmutableAsyncClientConfiguration) Overrides() Overrides { return c.overrides }

// Executor returns the resolved async executor.
func (c *ImmutableAsyncClientConfiguration) Executor() transport.Executor { return c.executor }

// Transport returns the bound non-blocking transport.
func (c *ImmutableAsyncClientConfiguration) Transport() *transport.AsyncClient { return c.transport }
