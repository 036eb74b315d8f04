// Package clientcfg defines the configuration data model of Nimbus service
// clients: the mutable working configuration a builder accumulates, the
// override-configuration option set, and the immutable configurations
// produced by finalization.
//
// # Lifecycle
//
// A single MutableClientConfiguration lives for the entire life of a client
// builder. Each finalization clones it, runs the default layers against the
// clone only, and freezes the clone into an immutable configuration:
//
//	mutable (builder-owned, mutated by setters)
//	  -> Clone: working copy (mutated by default layers)
//	  -> freeze: ImmutableSyncClientConfiguration / ImmutableAsyncClientConfiguration
//
// The builder's own configuration is never touched by finalization, so
// repeated finalizations from unchanged builder state are independent and
// deterministic.
//
// # Override configuration
//
// Overrides is a frozen map from ClientOption keys to values. Within one
// layer the last write for a key wins; across layers the first value wins,
// because SetDefault never replaces an existing value:
//
//	b := clientcfg.NewOverridesBuilder()
//	b.Set(clientcfg.OptionRegion, region.USWest2)
//	b.SetDefault(clientcfg.OptionRegion, region.EUWest1) // no effect
//	o := b.Build()
//
// Typed getters surface ErrOptionMissing when a required option was never
// filled, which means the default layers did not run.
//
// # Wholesale overrides from YAML
//
// The surrounding CLI layer can load an override configuration from a YAML
// document:
//
//	o, err := clientcfg.LoadOverridesFile("overrides.yaml")
//	builder.OverrideConfiguration(o)
//
// # Thread safety
//
// MutableClientConfiguration and OverridesBuilder are not safe for concurrent
// use. Immutable configurations and Overrides carry no mutation points and
// may be shared freely across goroutines.
package clientcfg
