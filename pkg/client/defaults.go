package client

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/clientcfg"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/credentials"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/endpoints"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/transport"
)

// ConfigurationDefaults is one layer of the finalization pipeline: a set of
// hooks that fill configuration values still unset when the layer runs. Nil
// hooks contribute nothing. Layers never clear or replace a value the
// customer or an earlier layer already set.
//
// Concrete service clients supply one of these via WithServiceDefaults to
// inject service-specific defaults; the zero value contributes nothing.
type ConfigurationDefaults struct {
	// Name identifies the layer in logs and error messages.
	Name string

	// Endpoint supplies a default endpoint. A nil URL with a nil error
	// means "no default available".
	Endpoint func() (*url.URL, error)

	// Credentials supplies a default credentials provider.
	Credentials func() credentials.Provider

	// Executor supplies a default async executor. Only consulted by the
	// async pipeline.
	Executor func() transport.Executor

	// Overrides fills default client options. Implementations use
	// OverridesBuilder.SetDefault so present values are preserved.
	Overrides func(*clientcfg.OverridesBuilder) error
}

// applySync runs the layer's hooks against the working configuration,
// backfilling only unset values.
func (d ConfigurationDefaults) applySync(cfg *clientcfg.MutableClientConfiguration) error {
	if cfg.Endpoint() == nil && d.Endpoint != nil {
		u, err := d.Endpoint()
		if err != nil {
			return fmt.Errorf("%s defaults: %w", d.Name, err)
		}
		if u != nil {
			cfg.SetEndpoint(u)
		}
	}

	if cfg.CredentialsProvider() == nil && d.Credentials != nil {
		if p := d.Credentials(); p != nil {
			cfg.SetCredentialsProvider(p)
		}
	}

	if d.Overrides != nil {
		ob := clientcfg.BuilderFrom(cfg.Overrides())
		if err := d.Overrides(ob); err != nil {
			return fmt.Errorf("%s defaults: %w", d.Name, err)
		}
		cfg.SetOverrides(ob.Build())
	}

	return nil
}

// applyAsync runs the sync hooks plus the executor hook.
func (d ConfigurationDefaults) applyAsync(cfg *clientcfg.MutableClientConfiguration) error {
	if err := d.applySync(cfg); err != nil {
		return err
	}
	if cfg.Executor() == nil && d.Executor != nil {
		if e := d.Executor(); e != nil {
			cfg.SetExecutor(e)
		}
	}
	return nil
}

// builderDefaults is the highest-precedence default layer. It derives the
// endpoint from the resolved region when the customer supplied none, and
// fills the Region, ServiceSigningName and SigningRegion options. Region is
// required downstream, so finalization fails here when it cannot be resolved.
func (b *Builder) builderDefaults() ConfigurationDefaults {
	return ConfigurationDefaults{
		Name: "builder",
		Endpoint: func() (*url.URL, error) {
			u, _ := b.resolveEndpoint()
			return u, nil
		},
		Overrides: func(ob *clientcfg.OverridesBuilder) error {
			r, ok := b.resolveRegion()
			if !ok {
				return ErrRegionUndeterminable
			}
			signingRegion, err := endpoints.SigningRegion(b.identity.EndpointPrefix, r)
			if err != nil {
				return err
			}
			ob.SetDefault(clientcfg.OptionRegion, r)
			ob.SetDefault(clientcfg.OptionServiceSigningName, b.identity.SigningName)
			ob.SetDefault(clientcfg.OptionSigningRegion, signingRegion)
			return nil
		},
	}
}

// globalDefaults is the cross-service fallback layer, currently the default
// credentials-provider chain.
func globalDefaults() ConfigurationDefaults {
	return ConfigurationDefaults{
		Name:        "global",
		Credentials: credentials.DefaultChain,
	}
}

// SyncClientConfiguration finalizes the builder state into an immutable
// configuration for a blocking client. The layers run in fixed order against
// a private clone, highest precedence first:
//
//  1. customer configuration (already in the clone, never touched)
//  2. builder-specific defaults
//  3. service-specific defaults
//  4. global defaults
//  5. transport-client defaults
func (b *Builder) SyncClientConfiguration() (*clientcfg.ImmutableSyncClientConfiguration, error) {
	cfg := b.mutable.Clone()

	for _, layer := range []ConfigurationDefaults{b.builderDefaults(), b.serviceDefaults, globalDefaults()} {
		if err := layer.applySync(cfg); err != nil {
			return nil, err
		}
	}
	if err := b.bindSyncTransport(cfg); err != nil {
		return nil, err
	}

	frozen := clientcfg.NewImmutableSyncConfiguration(cfg)
	b.logFinalized("sync", frozen.BuildID(), cfg)
	return frozen, nil
}

// AsyncClientConfiguration finalizes the builder state into an immutable
// configuration for a non-blocking client. Layer order matches
// SyncClientConfiguration; the transport-default layer additionally resolves
// an executor, falling back to a bounded pool.
func (b *Builder) AsyncClientConfiguration() (*clientcfg.ImmutableAsyncClientConfiguration, error) {
	cfg := b.mutable.Clone()

	for _, layer := range []ConfigurationDefaults{b.builderDefaults(), b.serviceDefaults, globalDefaults()} {
		if err := layer.applyAsync(cfg); err != nil {
			return nil, err
		}
	}
	if err := b.bindAsyncTransport(cfg); err != nil {
		return nil, err
	}

	frozen := clientcfg.NewImmutableAsyncConfiguration(cfg)
	b.logFinalized("async", frozen.BuildID(), cfg)
	return frozen, nil
}

// bindSyncTransport binds the default blocking transport when the customer
// configured none. A non-empty endpoint is strictly required here.
func (b *Builder) bindSyncTransport(cfg *clientcfg.MutableClientConfiguration) error {
	if cfg.SyncTransport() != nil {
		return nil
	}
	if cfg.Endpoint() == nil {
		return fmt.Errorf("transport defaults: no endpoint configured and none could be derived")
	}
	t, err := transport.NewSyncClient(cfg.Endpoint(), b.timeouts)
	if err != nil {
		return err
	}
	cfg.SetSyncTransport(t)
	return nil
}

// bindAsyncTransport binds the default non-blocking transport and, when the
// customer configured no executor, a bounded pool executor.
func (b *Builder) bindAsyncTransport(cfg *clientcfg.MutableClientConfiguration) error {
	if cfg.Executor() == nil {
		cfg.SetExecutor(transport.NewPoolExecutor(transport.DefaultExecutorWorkers))
	}
	if cfg.AsyncTransport() != nil {
		return nil
	}
	if cfg.Endpoint() == nil {
		return fmt.Errorf("transport defaults: no endpoint configured and none could be derived")
	}
	t, err := transport.NewAsyncClient(cfg.Endpoint(), b.timeouts, cfg.Executor())
	if err != nil {
		return err
	}
	cfg.SetAsyncTransport(t)
	return nil
}

func (b *Builder) logFinalized(variant, buildID string, cfg *clientcfg.MutableClientConfiguration) {
	fields := []zap.Field{
		zap.String("variant", variant),
		zap.String("build_id", buildID),
		zap.String("service", b.identity.EndpointPrefix),
	}
	if u := cfg.Endpoint(); u != nil {
		fields = append(fields, zap.String("endpoint", u.String()))
	}
	if r, err := cfg.Overrides().Region(); err == nil {
		fields = append(fields, zap.String("region", r.String()))
	}
	zap.L().Debug("client configuration finalized", fields...)
}
