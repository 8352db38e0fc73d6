package domain

const (
	// DefaultRefreshRate is reported when no refresh rate source answers
	DefaultRefreshRate float32 = 60
	// DefaultSDRWhiteLevel is reported when the SDR white level is unknown (nits)
	DefaultSDRWhiteLevel float32 = 200
	// StandardDPI is the OS default screen DPI (USER_DEFAULT_SCREEN_DPI)
	StandardDPI uint32 = 96
)

// Resolved carries a value produced by a resolver together with whether the
// resolver actually succeeded. On failure Value holds the documented default.
type Resolved[T any] struct {
	Value T    `json:"value" yaml:"value"`
	OK    bool `json:"resolved" yaml:"resolved"`
}

// Found wraps a successfully resolved value
func Found[T any](v T) Resolved[T] {
	return Resolved[T]{Value: v, OK: true}
}

// Default wraps the fallback value used when resolution failed
func Default[T any](v T) Resolved[T] {
	return Resolved[T]{Value: v}
}

// LUID is a locally unique identifier assigned to an adapter by the OS
type LUID struct {
	LowPart  uint32 `json:"low" yaml:"low"`
	HighPart int32  `json:"high" yaml:"high"`
}

// Rational is a numerator/denominator pair as reported by the graphics stack
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// Rect is a desktop rectangle in virtual screen coordinates
type Rect struct {
	Left   int32 `json:"left" yaml:"left"`
	Top    int32 `json:"top" yaml:"top"`
	Right  int32 `json:"right" yaml:"right"`
	Bottom int32 `json:"bottom" yaml:"bottom"`
}

// Width returns the absolute horizontal extent
func (r Rect) Width() int32 {
	return abs32(r.Right - r.Left)
}

// Height returns the absolute vertical extent
func (r Rect) Height() int32 {
	return abs32(r.Bottom - r.Top)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// MonitorHandle is an opaque OS monitor handle (HMONITOR)
type MonitorHandle uintptr

// PixelFormat identifies a graphics stack surface format
type PixelFormat uint32

// FormatR8G8B8A8Unorm is the reference format used to list display modes
const FormatR8G8B8A8Unorm PixelFormat = 28

// FileTime is a raw 100ns tick count since 1601-01-01 UTC
type FileTime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// AdapterDescriptor describes one graphics adapter
type AdapterDescriptor struct {
	Index                 uint32         `json:"index" yaml:"index"`
	Description           string         `json:"description" yaml:"description"`
	VendorID              uint32         `json:"vendorId" yaml:"vendorId"`
	DeviceID              uint32         `json:"deviceId" yaml:"deviceId"`
	SubSysID              uint32         `json:"subSysId" yaml:"subSysId"`
	Revision              uint32         `json:"revision" yaml:"revision"`
	DedicatedVideoMemory  uint64         `json:"dedicatedVideoMemory" yaml:"dedicatedVideoMemory"`
	DedicatedSystemMemory uint64         `json:"dedicatedSystemMemory" yaml:"dedicatedSystemMemory"`
	SharedSystemMemory    uint64         `json:"sharedSystemMemory" yaml:"sharedSystemMemory"`
	LUID                  LUID           `json:"luid" yaml:"luid"`
	Software              bool           `json:"software" yaml:"software"`
	// Integrated is a heuristic: an adapter without a non-local memory
	// budget is assumed to share system memory.
	Integrated Resolved[bool] `json:"integrated" yaml:"integrated"`
}

// Vendor returns the vendor mapped from the PCI vendor ID
func (a AdapterDescriptor) Vendor() Vendor {
	return VendorFromID(uint64(a.VendorID))
}

// ExtendedOutput carries HDR and colour metadata of an output
type ExtendedOutput struct {
	BitsPerColor          uint32     `json:"bitsPerColor" yaml:"bitsPerColor"`
	ColorSpace            ColorSpace `json:"colorSpace" yaml:"colorSpace"`
	RedPrimary            [2]float32 `json:"redPrimary" yaml:"redPrimary"`
	GreenPrimary          [2]float32 `json:"greenPrimary" yaml:"greenPrimary"`
	BluePrimary           [2]float32 `json:"bluePrimary" yaml:"bluePrimary"`
	WhitePoint            [2]float32 `json:"whitePoint" yaml:"whitePoint"`
	MinLuminance          float32    `json:"minLuminance" yaml:"minLuminance"`
	MaxLuminance          float32    `json:"maxLuminance" yaml:"maxLuminance"`
	MaxFullFrameLuminance float32    `json:"maxFullFrameLuminance" yaml:"maxFullFrameLuminance"`
}

// OutputDescriptor describes one display output of an adapter
type OutputDescriptor struct {
	Index             uint32          `json:"index" yaml:"index"`
	DeviceName        string          `json:"deviceName" yaml:"deviceName"`
	DesktopRect       Rect            `json:"desktopRect" yaml:"desktopRect"`
	Rotation          Rotation        `json:"rotation" yaml:"rotation"`
	AttachedToDesktop bool            `json:"attachedToDesktop" yaml:"attachedToDesktop"`
	Monitor           MonitorHandle   `json:"-" yaml:"-"`
	MaxRefreshRate    float32         `json:"maxRefreshRate" yaml:"maxRefreshRate"`
	Extended          *ExtendedOutput `json:"extended,omitempty" yaml:"extended,omitempty"`
}

// DisplayPath is one active source to target connection of the OS display
// configuration
type DisplayPath struct {
	SourceAdapter LUID
	SourceID      uint32
	TargetAdapter LUID
	TargetID      uint32
	TargetRefresh Rational
}

// DriverInfo is the normalized driver version and date of an adapter
type DriverInfo struct {
	Version string `json:"version" yaml:"version"`
	Date    string `json:"date" yaml:"date"`
}

// OSVersion is the host operating system version
type OSVersion struct {
	Major uint32 `json:"major" yaml:"major"`
	Minor uint32 `json:"minor" yaml:"minor"`
	Build uint32 `json:"build" yaml:"build"`
}

// AtLeast reports whether v is the same as or newer than min
func (v OSVersion) AtLeast(min OSVersion) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	if v.Minor != min.Minor {
		return v.Minor > min.Minor
	}
	return v.Build >= min.Build
}

// DesktopSummary is the GDI view of the active desktop
type DesktopSummary struct {
	ActiveDisplays int  `json:"activeDisplays" yaml:"activeDisplays"`
	Primary        Rect `json:"primary" yaml:"primary"`
}

// OutputReport holds every attribute resolved for one output
type OutputReport struct {
	Output        OutputDescriptor  `json:"output" yaml:"output"`
	Primary       Resolved[bool]    `json:"primary" yaml:"primary"`
	FriendlyName  Resolved[string]  `json:"friendlyName" yaml:"friendlyName"`
	SDRWhiteLevel Resolved[float32] `json:"sdrWhiteLevel" yaml:"sdrWhiteLevel"`
	RefreshRate   Resolved[float32] `json:"refreshRate" yaml:"refreshRate"`
	DPI           Resolved[uint32]  `json:"dpi" yaml:"dpi"`
	Scale         uint32            `json:"scale" yaml:"scale"`
}

// AdapterReport holds every attribute resolved for one adapter
type AdapterReport struct {
	Adapter         AdapterDescriptor    `json:"adapter" yaml:"adapter"`
	Vendor          Vendor               `json:"vendor" yaml:"vendor"`
	VariableRefresh bool                 `json:"variableRefresh" yaml:"variableRefresh"`
	Driver          Resolved[DriverInfo] `json:"driver" yaml:"driver"`
	Outputs         []OutputReport       `json:"outputs" yaml:"outputs"`
}

// Report is the full result of one probe run
type Report struct {
	OS       OSVersion       `json:"os" yaml:"os"`
	Desktop  *DesktopSummary `json:"desktop,omitempty" yaml:"desktop,omitempty"`
	Adapters []AdapterReport `json:"adapters" yaml:"adapters"`
}
