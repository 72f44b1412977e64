package settings

// Attribute names a device characteristic published by the device pack.
type Attribute string

const (
	CPUOption    Attribute = "Dcore"
	FPUOption    Attribute = "Dfpu"
	EndianOption Attribute = "Dendian"
)

// Values of the Dfpu attribute.
const (
	NoFPU = "NO_FPU"
	SPFPU = "SP_FPU"
	DPFPU = "DP_FPU"
)

// Values of the Dendian attribute.
const (
	LittleEndian = "Little-endian"
	BigEndian    = "Big-endian"
	Configurable = "Configurable"
)

// DeviceAttribute looks up a device characteristic. A missing attribute, or
// a nil settings handle (including a nil *Store), yields ("", false): the caller falls back to its
// default instead of failing.
func DeviceAttribute(key Attribute, s BuildSettings) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.DeviceAttribute(key)
}
