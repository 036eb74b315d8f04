// Package region defines the Region identifier type and the providers that
// discover a region from ambient configuration.
//
// # Regions
//
// A Region is an opaque string identifier such as "us-west-2". Predefined
// values are available for every region of the standard partitions:
//
//	region.USWest2       // "us-west-2"
//	region.EUWest1       // "eu-west-1"
//	region.APSoutheast1  // "ap-southeast-1"
//
// Custom regions can be used directly:
//
//	r := region.Region("xx-test-1")
//
// # Providers
//
// A Provider answers "which region should this process use?" from one
// ambient source. Providers return (Region, false) rather than erroring when
// they have no answer:
//
//	type Provider interface {
//		GetRegion() (Region, bool)
//	}
//
// Three implementations are included:
//
//   - EnvProvider    : the NIMBUS_REGION environment variable
//   - ProfileProvider: the region key of ~/.nimbus/config.toml
//   - StaticProvider : a fixed region, mostly for tests
//
// # The default chain
//
// DefaultProviderChain combines the ambient providers in the standard order
// (environment first, then the shared configuration file) and is what client
// builders fall back to when no region was set explicitly:
//
//	provider := region.DefaultProviderChain()
//	if r, ok := provider.GetRegion(); ok {
//		fmt.Println("ambient region:", r)
//	}
//
// The chain performs no network calls; instance-metadata lookups are out of
// scope for this SDK core.
//
// # See Also
//
//   - client.Builder.Region for setting an explicit region
//   - endpoints package for region-derived service endpoints
package region
