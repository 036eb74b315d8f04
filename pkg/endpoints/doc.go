// Package endpoints carries the static service-metadata tables of the Nimbus
// platform: which regions belong to which partition, the DNS suffix used to
// derive service endpoints, and the signing region of partition-global
// services.
//
// Derive an endpoint from a region:
//
//	u := endpoints.Endpoint(endpoints.DefaultProtocol, "storage", region.USWest2)
//	// https://storage.us-west-2.nimbuscloud.io
//
// Look up the signing region of a service:
//
//	sr, err := endpoints.SigningRegion("iam", region.EUWest1)
//	// "us-east-1", since iam is a partition-global service
//
// The tables are compiled in; no network lookups are performed. Regions newer
// than this SDK build still derive endpoints (the standard partition suffix
// is assumed) but fail signing-region lookup with ErrUnknownRegion.
package endpoints
