package endpoints

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/region"
)

// DefaultProtocol is the scheme used for derived service endpoints.
const DefaultProtocol = "https"

// ErrUnknownRegion is returned when a region belongs to no known partition.
var ErrUnknownRegion = errors.New("region not found in any partition")

// partition groups regions that share a DNS suffix.
type partition struct {
	id        string
	dnsSuffix string
	regions   map[region.Region]bool
}

var partitions = []partition{
	{
		id:        "nimbus",
		dnsSuffix: "nimbuscloud.io",
		regions: map[region.Region]bool{
			region.USEast1:      true,
			region.USWest2:      true,
			region.EUWest1:      true,
			region.EUCentral1:   true,
			region.APSoutheast1: true,
			region.APNortheast1: true,
		},
	},
	{
		id:        "nimbus-gov",
		dnsSuffix: "gov.nimbuscloud.io",
		regions: map[region.Region]bool{
			region.GovWest1: true,
		},
	},
}

// globalServices maps the endpoint prefix of partition-global services to the
// fixed region their requests are signed in. Services absent from this table
// sign in the region they are addressed in.
var globalServices = map[string]region.Region{
	"iam": region.USEast1,
	"cdn": region.USEast1,
}

// DNSSuffix returns the DNS suffix of the partition containing r. Regions not
// found in any partition table fall back to the standard partition suffix, so
// endpoint derivation keeps working for regions newer than this SDK build.
func DNSSuffix(r region.Region) string {
	for _, p := range partitions {
		if p.regions[r] {
			return p.dnsSuffix
		}
	}
	return partitions[0].dnsSuffix
}

// Endpoint derives the service endpoint URL for the given protocol, service
// endpoint prefix, and region, in the form
// <protocol>://<prefix>.<region>.<dns suffix>.
func Endpoint(protocol, endpointPrefix string, r region.Region) *url.URL {
	return &url.URL{
		Scheme: protocol,
		Host:   fmt.Sprintf("%s.%s.%s", endpointPrefix, r, DNSSuffix(r)),
	}
}

// SigningRegion returns the region used to sign requests for the named
// service when addressed in region r. For most services this is r itself;
// partition-global services sign in their fixed home region. Returns
// ErrUnknownRegion when r belongs to no known partition, since the signing
// scope of an unknown region cannot be established.
func SigningRegion(endpointPrefix string, r region.Region) (region.Region, error) {
	known := false
	for _, p := range partitions {
		if p.regions[r] {
			known = true
			break
		}
	}
	if !known {
		return "", fmt.Errorf("signing region for service %q: %w: %q", endpointPrefix, ErrUnknownRegion, r)
	}

	if home, ok := globalServices[endpointPrefix]; ok {
		return home, nil
	}
	return r, nil
}
