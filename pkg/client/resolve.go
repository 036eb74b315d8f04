package client

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/endpoints"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/region"
)

// ErrRegionUndeterminable is returned when signing-region resolution (or the
// builder-defaults layer) requires a region but none is configured and none
// can be detected. Set a region on the builder, or enable default region
// detection, and finalize again.
var ErrRegionUndeterminable = errors.New("the region could not be determined")

// resolveRegion returns the effective region: the explicitly configured one
// if present, otherwise whatever the ambient provider chain yields when
// detection is enabled. Idempotent within one finalization.
func (b *Builder) resolveRegion() (region.Region, bool) {
	if b.region != "" {
		return b.region, true
	}
	return b.regionFromProvider()
}

// regionFromProvider queries the region-provider chain once, gated by the
// EnableDefaultRegionDetection option (absent means enabled).
func (b *Builder) regionFromProvider() (region.Region, bool) {
	if !b.mutable.Overrides().DefaultRegionDetectionEnabled() {
		zap.L().Debug("default region detection disabled",
			zap.String("service", b.identity.EndpointPrefix))
		return "", false
	}
	r, ok := b.regionProvider.GetRegion()
	if ok {
		zap.L().Debug("region detected from provider chain",
			zap.String("service", b.identity.EndpointPrefix),
			zap.String("region", r.String()))
	}
	return r, ok
}

// resolveEndpoint returns the effective service endpoint. An explicitly
// configured endpoint is returned verbatim; otherwise an endpoint is derived
// from the resolved region. Returns no endpoint, not an error, when neither
// is available: the failure surfaces only where a non-empty endpoint is
// strictly required.
func (b *Builder) resolveEndpoint() (*url.URL, bool) {
	if u := b.mutable.Endpoint(); u != nil {
		return u, true
	}
	return b.endpointFromRegion()
}

// endpointFromRegion derives a DNS-style endpoint from the resolved region.
func (b *Builder) endpointFromRegion() (*url.URL, bool) {
	r, ok := b.resolveRegion()
	if !ok {
		return nil, false
	}
	u := endpoints.Endpoint(endpoints.DefaultProtocol, b.identity.EndpointPrefix, r)
	zap.L().Debug("endpoint derived from region",
		zap.String("service", b.identity.EndpointPrefix),
		zap.String("region", r.String()),
		zap.String("endpoint", u.String()))
	return u, true
}

// SigningRegion returns the region requests to this service are signed in.
// It fails with ErrRegionUndeterminable when no region can be resolved, and
// propagates service-metadata lookup failures unchanged.
func (b *Builder) SigningRegion() (region.Region, error) {
	r, ok := b.resolveRegion()
	if !ok {
		return "", fmt.Errorf("signing region: %w", ErrRegionUndeterminable)
	}
	return endpoints.SigningRegion(b.identity.EndpointPrefix, r)
}
