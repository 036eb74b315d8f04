// Package client implements the configuration core shared by all Nimbus
// service clients: a builder that accumulates caller configuration and
// finalizes it into immutable client configurations by merging default
// layers in strict precedence order.
//
// # Building a configuration
//
// A concrete service client supplies its identity and finalizes:
//
//	b := client.NewBuilder(client.ServiceIdentity{
//		EndpointPrefix: "storage",
//		SigningName:    "storage",
//	})
//	b.Region(region.USWest2)
//
//	cfg, err := b.SyncClientConfiguration()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cfg.Endpoint()) // https://storage.us-west-2.nimbuscloud.io
//
// # Precedence
//
// Finalization clones the builder's working configuration and applies the
// default layers in fixed order, each filling only values still unset:
//
//  1. customer configuration (setter calls on the builder)
//  2. builder-specific defaults (derived endpoint, Region /
//     ServiceSigningName / SigningRegion options)
//  3. service-specific defaults (the WithServiceDefaults hook)
//  4. global defaults (the default credentials chain)
//  5. transport-client defaults (a lazy gRPC transport, plus an executor
//     for the async variant)
//
// A value the customer set explicitly is never replaced by any layer, and a
// layer never replaces what an earlier layer filled.
//
// # Region, endpoint and signing region
//
// When no explicit region is set, the builder consults the ambient
// region-provider chain, unless the EnableDefaultRegionDetection option is
// false. The endpoint is the explicit override if one was set, otherwise it
// is derived as https://<prefix>.<region>.<dns suffix>. The signing region
// comes from the service-metadata tables and can differ from the addressed
// region for partition-global services.
//
// A region is required downstream of finalization. When none can be
// resolved, finalization fails with ErrRegionUndeterminable:
//
//	if errors.Is(err, client.ErrRegionUndeterminable) {
//		// set b.Region(...) or provide NIMBUS_REGION, then retry
//	}
//
// # Repeated finalization
//
// The builder's own state is never mutated by finalization, so one
// configured builder can produce any number of independent client
// configurations. Builders are not safe for concurrent mutation; the frozen
// configurations are safe to share across goroutines.
package client
