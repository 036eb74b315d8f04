package region

// Region identifies a geographic partition of the Nimbus platform, such as
// "us-west-2". It is an opaque identifier; two regions are equal when their
// identifier strings are equal. The zero value means "no region".
type Region string

// Predefined regions of the standard nimbus partition.
var (
	USEast1      = Region("us-east-1")
	USWest2      = Region("us-west-2")
	EUWest1      = Region("eu-west-1")
	EUCentral1   = Region("eu-central-1")
	APSoutheast1 = Region("ap-southeast-1")
	APNortheast1 = Region("ap-northeast-1")
)

// Predefined regions of the nimbus-gov partition.
var (
	GovWest1 = Region("gov-west-1")
)

// String returns the region identifier.
func (r Region) String() string {
	return string(r)
}
