package domain

import "io"

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/gpuprobe/internal/domain GraphicsFactory,GraphicsAdapter,DisplayOutput,DisplayConfig,DisplaySettings,DeviceContexts,DeviceTree,DeviceList,Device,Registry,RegistryKey,DPIQuerier,MonitorInfo

// GraphicsFactory is the graphics subsystem factory (IDXGIFactory1)
type GraphicsFactory interface {
	// EnumAdapter returns the adapter at index, or ErrNotFound past the end
	EnumAdapter(index uint32) (GraphicsAdapter, error)

	// AllowTearing reports whether tearing (variable refresh) presentation
	// is supported. Returns ErrUnsupported when the factory lacks the
	// extended capability query.
	AllowTearing() (bool, error)

	// Release drops the factory reference
	Release()
}

// GraphicsAdapter is one adapter handle obtained from a GraphicsFactory
type GraphicsAdapter interface {
	// Descriptor fetches the adapter description. Index is left to the caller.
	Descriptor() (AdapterDescriptor, error)

	// NonLocalMemoryBudget returns the budget of the non-local memory
	// segment group. Returns ErrUnsupported without the extended adapter
	// interface.
	NonLocalMemoryBudget() (uint64, error)

	// EnumOutput returns the output at index, or ErrNotFound past the end
	EnumOutput(index uint32) (DisplayOutput, error)

	// Release drops the adapter reference
	Release()
}

// DisplayOutput is one output handle obtained from a GraphicsAdapter
type DisplayOutput interface {
	// Descriptor fetches the basic output description
	Descriptor() (OutputDescriptor, error)

	// DisplayModes lists the refresh rates of every mode supported for format
	DisplayModes(format PixelFormat) ([]Rational, error)

	// ExtendedDescriptor fetches HDR and colour metadata. Returns
	// ErrUnsupported without the extended output interface.
	ExtendedDescriptor() (ExtendedOutput, error)

	// Release drops the output reference
	Release()
}

// DisplayConfig is the OS display configuration path/mode graph
type DisplayConfig interface {
	// BufferSizes returns the number of active paths and modes
	BufferSizes() (paths, modes uint32, err error)

	// QueryActivePaths fetches the active paths into buffers of the given
	// sizes. Returns ErrInsufficientBuffer if the topology grew meanwhile.
	QueryActivePaths(paths, modes uint32) ([]DisplayPath, error)

	// SourceDeviceName returns the GDI device name of the path's source
	SourceDeviceName(path DisplayPath) (string, error)

	// TargetFriendlyName returns the monitor friendly name of the path's target
	TargetFriendlyName(path DisplayPath) (string, error)

	// SDRWhiteLevel returns the raw SDR white level of the path's target
	SDRWhiteLevel(path DisplayPath) (uint32, error)
}

// DisplaySettings reads the current display settings of a GDI device
type DisplaySettings interface {
	// CurrentFrequency returns the current vertical refresh in Hz.
	// 0 and 1 mean "hardware default".
	CurrentFrequency(deviceName string) (uint32, error)
}

// DeviceContextHandle is an opaque GDI device context (HDC)
type DeviceContextHandle uintptr

// DeviceContexts creates and queries legacy GDI device contexts
type DeviceContexts interface {
	// Create opens a device context for the GDI device name
	Create(deviceName string) (DeviceContextHandle, error)

	// VerticalRefresh queries the VREFRESH device capability
	VerticalRefresh(dc DeviceContextHandle) int32

	// Delete releases a device context obtained from Create
	Delete(dc DeviceContextHandle) error
}

// DeviceProperty names a device tree property of a display device
type DeviceProperty int

const (
	PropertyDriverDesc DeviceProperty = iota
	PropertyDriverKey
	PropertyDriverProvider
	PropertyDriverVersion
	PropertyDriverDate
)

// DeviceTree opens listings of the system device tree
type DeviceTree interface {
	// PresentDisplayDevices lists present devices of the display class
	PresentDisplayDevices() (DeviceList, error)
}

// DeviceList is an open device information list
type DeviceList interface {
	// Device returns the device at index, or ErrNotFound past the end
	Device(index uint32) (Device, error)

	// Close destroys the device information list
	Close() error
}

// Device is one entry of a DeviceList
type Device interface {
	// StringProperty reads a string property. The result may carry the
	// trailing NUL padding of the OS buffer.
	StringProperty(key DeviceProperty) (string, error)

	// FileTimeProperty reads a FILETIME property
	FileTimeProperty(key DeviceProperty) (FileTime, error)
}

// Registry opens keys under HKEY_LOCAL_MACHINE
type Registry interface {
	OpenLocalMachineKey(path string) (RegistryKey, error)
}

// RegistryKey is an open registry key
type RegistryKey interface {
	// StringValue returns the value, or ErrNotFound if it does not exist
	StringValue(name string) (string, error)
	Close() error
}

// DPIQuerier reads per-monitor DPI
type DPIQuerier interface {
	// EffectiveDPI returns the effective horizontal DPI of the monitor
	EffectiveDPI(monitor MonitorHandle) (uint32, error)
}

// MonitorInfo reads monitor attributes
type MonitorInfo interface {
	// IsPrimary reports whether the monitor is the primary display
	IsPrimary(monitor MonitorHandle) (bool, error)
}

// Renderer writes a finished report
type Renderer interface {
	Render(w io.Writer, report *Report) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetFormat returns the report format (text, json or yaml)
	GetFormat() string

	// GetLogLevel returns the minimum diagnostic log level
	GetLogLevel() string

	// NoColor reports whether coloured text output is disabled
	NoColor() bool

	// Pause reports whether to wait for ENTER before exiting
	Pause() bool
}
