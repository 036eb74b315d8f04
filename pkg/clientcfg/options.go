package clientcfg

import (
	"errors"
	"fmt"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/region"
)

// ErrOptionMissing is returned by typed option getters when a required option
// is absent, which indicates the configuration was read before the default
// layers ran (or the pipeline ran incompletely).
var ErrOptionMissing = errors.New("client option not set")

// ClientOption is the key of a value in the override configuration. The set
// of keys is fixed; options carry cross-cutting settings through the default
// layers.
type ClientOption string

const (
	// OptionRegion is the resolved region of the client. Always present
	// after finalization.
	OptionRegion ClientOption = "Region"

	// OptionServiceSigningName is the name the target service signs
	// requests under.
	OptionServiceSigningName ClientOption = "ServiceSigningName"

	// OptionSigningRegion is the region requests are signed in, which may
	// differ from OptionRegion for partition-global services.
	OptionSigningRegion ClientOption = "SigningRegion"

	// OptionEnableDefaultRegionDetection gates the ambient region-provider
	// chain. Absent means enabled.
	OptionEnableDefaultRegionDetection ClientOption = "EnableDefaultRegionDetection"
)

// Overrides is an immutable set of client options. The zero value is an empty
// set. Build one with OverridesBuilder.
type Overrides struct {
	options map[ClientOption]any
}

// Option returns the raw value of an option.
func (o Overrides) Option(key ClientOption) (any, bool) {
	v, ok := o.options[key]
	return v, ok
}

// Region returns OptionRegion, or ErrOptionMissing when absent.
func (o Overrides) Region() (region.Region, error) {
	return o.regionOption(OptionRegion)
}

// SigningRegion returns OptionSigningRegion, or ErrOptionMissing when absent.
func (o Overrides) SigningRegion() (region.Region, error) {
	return o.regionOption(OptionSigningRegion)
}

// ServiceSigningName returns OptionServiceSigningName, or ErrOptionMissing
// when absent.
func (o Overrides) ServiceSigningName() (string, error) {
	v, ok := o.options[OptionServiceSigningName]
	if !ok {
		return "", fmt.Errorf("%s: %w", OptionServiceSigningName, ErrOptionMissing)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %T", OptionServiceSigningName, v)
	}
	return s, nil
}

// DefaultRegionDetectionEnabled reports whether the ambient region-provider
// chain may be consulted. An absent option means enabled.
func (o Overrides) DefaultRegionDetectionEnabled() bool {
	v, ok := o.options[OptionEnableDefaultRegionDetection]
	if !ok {
		return true
	}
	enabled, ok := v.(bool)
	if !ok {
		return true
	}
	return enabled
}

func (o Overrides) regionOption(key ClientOption) (region.Region, error) {
	v, ok := o.options[key]
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrOptionMissing)
	}
	r, ok := v.(region.Region)
	if !ok {
		return "", fmt.Errorf("%s: expected region, got %T", key, v)
	}
	return r, nil
}

// OverridesBuilder accumulates client options. Not safe for concurrent use.
type OverridesBuilder struct {
	options map[ClientOption]any
}

// NewOverridesBuilder returns an empty builder.
func NewOverridesBuilder() *OverridesBuilder {
	return &OverridesBuilder{options: make(map[ClientOption]any)}
}

// BuilderFrom returns a builder seeded with the options of o. The source
// Overrides is not affected by later builder mutation.
func BuilderFrom(o Overrides) *OverridesBuilder {
	b := NewOverridesBuilder()
	for k, v := range o.options {
		b.options[k] = v
	}
	return b
}

// Set stores an option value. Within one layer the last write for a key wins.
func (b *OverridesBuilder) Set(key ClientOption, value any) *OverridesBuilder {
	b.options[key] = value
	return b
}

// SetDefault stores an option value only when the key is still unset. Default
// layers use this so they never override a value the customer or a
// higher-precedence layer already filled.
func (b *OverridesBuilder) SetDefault(key ClientOption, value any) *OverridesBuilder {
	if _, ok := b.options[key]; !ok {
		b.options[key] = value
	}
	return b
}

// Has reports whether the key is set.
func (b *OverridesBuilder) Has(key ClientOption) bool {
	_, ok := b.options[key]
	return ok
}

// Build freezes the accumulated options. The builder may keep being used; the
// returned Overrides is unaffected.
func (b *OverridesBuilder) Build() Overrides {
	options := make(map[ClientOption]any, len(b.options))
	for k, v := range b.options {
		options[k] = v
	}
	return Overrides{options: options}
}
