package clientcfg

import (
	"net/url"
	"testing"

	"github.com/nimbuscloud/nimbus-sdk-go/pkg/credentials"
	"github.com/nimbuscloud/nimbus-sdk-go/pkg/region"
)

// TestCloneIndependence verifies that a clone shares no mutable substructure
// with its source: mutating the clone's endpoint or overrides leaves the
// original untouched, and vice versa.
func TestCloneIndependence(t *testing.T) {
	orig := NewMutableClientConfiguration()
	orig.SetEndpoint(&url.URL{Scheme: "https", Host: "custom.example.com"})
	orig.SetOverrides(NewOverridesBuilder().Set(OptionRegion, region.USWest2).Build())

	clone := orig.Clone()

	clone.Endpoint().Host = "evil.example.com"
	if orig.Endpoint().Host != "custom.example.com" {
		t.Fatal("mutating the clone's endpoint changed the original")
	}

	clone.SetOverrides(BuilderFrom(clone.Overrides()).Set(OptionRegion, region.EUWest1).Build())
	if r, _ := orig.Overrides().Region(); r != region.USWest2 {
		t.Fatalf("mutating the clone's overrides changed the original: %s", r)
	}

	orig.SetEndpoint(nil)
	if clone.Endpoint() == nil {
		t.Fatal("clearing the original's endpoint changed the clone")
	}
}

// TestCloneSharesCapabilities verifies that capability references are shared
// rather than copied.
func TestCloneSharesCapabilities(t *testing.T) {
	provider := credentials.StaticProvider{Credentials: credentials.Credentials{
		AccessKeyID:     "NKIA",
		SecretAccessKey: "s",
	}}

	orig := NewMutableClientConfiguration()
	orig.SetCredentialsProvider(provider)

	clone := orig.Clone()
	if clone.CredentialsProvider() != credentials.Provider(provider) {
		t.Fatal("expected the clone to share the credentials provider reference")
	}
}

// TestFreezeSnapshot verifies that a frozen configuration is a snapshot:
// later mutation of the working configuration does not show through.
func TestFreezeSnapshot(t *testing.T) {
	work := NewMutableClientConfiguration()
	work.SetEndpoint(&url.URL{Scheme: "https", Host: "storage.us-west-2.nimbuscloud.io"})
	work.SetOverrides(NewOverridesBuilder().Set(OptionRegion, region.USWest2).Build())

	frozen := NewImmutableSyncConfiguration(work)

	work.SetEndpoint(&url.URL{Scheme: "https", Host: "other.example.com"})
	work.SetOverrides(NewOverridesBuilder().Set(OptionRegion, region.EUWest1).Build())

	if frozen.Endpoint().Host != "storage.us-west-2.nimbuscloud.io" {
		t.Fatalf("frozen endpoint changed: %s", frozen.Endpoint())
	}
	if r, _ := frozen.Overrides().Region(); r != region.USWest2 {
		t.Fatalf("frozen overrides changed: %s", r)
	}
}

// TestBuildIDsUnique verifies that every frozen configuration gets its own
// build ID.
func TestBuildIDsUnique(t *testing.T) {
	work := NewMutableClientConfiguration()

	first := NewImmutableSyncConfiguration(work)
	second := NewImmutableSyncConfiguration(work)
	async := NewImmutableAsyncConfiguration(work)

	if first.BuildID() == "" || second.BuildID() == "" || async.BuildID() == "" {
		t.Fatal("expected non-empty build IDs")
	}
	if first.BuildID() == second.BuildID() || first.BuildID() == async.BuildID() {
		t.Fatal("expected distinct build IDs per finalization")
	}
}
