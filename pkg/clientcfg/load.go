package clientcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/region"
)

// overridesDocument is the YAML shape accepted by ParseOverrides. Absent keys
// leave the corresponding option unset.
type overridesDocument struct {
	Region                       string `yaml:"region"`
	SigningRegion                string `yaml:"signing_region"`
	ServiceSigningName           string `yaml:"service_signing_name"`
	EnableDefaultRegionDetection *bool  `yaml:"enable_default_region_detection"`
}

// ParseOverrides builds an override configuration from a YAML document:
//
//	region: us-west-2
//	enable_default_region_detection: false
//
// Only present keys become options, so a parsed document composes with
// default layers the same way hand-built overrides do.
func ParseOverrides(data []byte) (Overrides, error) {
	var doc overridesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Overrides{}, fmt.Errorf("parse overrides document: %w", err)
	}

	b := NewOverridesBuilder()
	if doc.Region != "" {
		b.Set(OptionRegion, region.Region(doc.Region))
	}
	if doc.SigningRegion != "" {
		b.Set(OptionSigningRegion, region.Region(doc.SigningRegion))
	}
	if doc.ServiceSigningName != "" {
		b.Set(OptionServiceSigningName, doc.ServiceSigningName)
	}
	if doc.EnableDefaultRegionDetection != nil {
		b.Set(OptionEnableDefaultRegionDetection, *doc.EnableDefaultRegionDetection)
	}
	return b.Build(), nil
}

// LoadOverridesFile reads and parses a YAML overrides document from disk.
func LoadOverridesFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("read overrides file %s: %w", path, err)
	}
	return ParseOverrides(data)
}
