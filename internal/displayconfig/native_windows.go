//go:build windows
// +build windows

package displayconfig

import (
	"unsafe"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
	"github.com/genricoloni/gpuprobe/internal/winapi"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const (
	qdcOnlyActivePaths = 0x00000002

	deviceInfoGetSourceName    = 1
	deviceInfoGetTargetName    = 2
	deviceInfoGetSDRWhiteLevel = 11
	enumCurrentSettings        = 0xFFFFFFFF
	capsVerticalRefresh        = 116
)

type pathSourceInfo struct {
	AdapterID   domain.LUID
	ID          uint32
	ModeInfoIdx uint32
	StatusFlags uint32
}

type pathTargetInfo struct {
	AdapterID        domain.LUID
	ID               uint32
	ModeInfoIdx      uint32
	OutputTechnology uint32
	Rotation         uint32
	Scaling          uint32
	RefreshRate      domain.Rational
	ScanLineOrdering uint32
	TargetAvailable  int32
	StatusFlags      uint32
}

type pathInfo struct {
	SourceInfo pathSourceInfo
	TargetInfo pathTargetInfo
	Flags      uint32
}

type modeInfo struct {
	InfoType  uint32
	ID        uint32
	AdapterID domain.LUID
	Mode      [6]uint64
}

type deviceInfoHeader struct {
	Type      uint32
	Size      uint32
	AdapterID domain.LUID
	ID        uint32
}

type sourceDeviceName struct {
	Header            deviceInfoHeader
	ViewGdiDeviceName [32]uint16
}

type targetDeviceName struct {
	Header                    deviceInfoHeader
	Flags                     uint32
	OutputTechnology          uint32
	EdidManufactureID         uint16
	EdidProductCodeID         uint16
	ConnectorInstance         uint32
	MonitorFriendlyDeviceName [64]uint16
	MonitorDevicePath         [128]uint16
}

type sdrWhiteLevel struct {
	Header        deviceInfoHeader
	SDRWhiteLevel uint32
}

// Config reads the display configuration through user32
type Config struct {
	provider *loader.Provider
}

// NewConfig creates a display configuration source
func NewConfig(provider *loader.Provider) *Config {
	return &Config{provider: provider}
}

func (c *Config) BufferSizes() (uint32, uint32, error) {
	if !c.provider.Supports(loader.FeatureDisplayConfig) {
		return 0, 0, loader.Unsupported(loader.FeatureDisplayConfig)
	}
	proc, _ := c.provider.Proc(loader.User32, "GetDisplayConfigBufferSizes")
	var paths, modes uint32
	r, _, _ := proc.Call(qdcOnlyActivePaths,
		uintptr(unsafe.Pointer(&paths)), uintptr(unsafe.Pointer(&modes)))
	if err := winapi.Win32Status("GetDisplayConfigBufferSizes", uintptr(uint32(r))); err != nil {
		return 0, 0, err
	}
	return paths, modes, nil
}

func (c *Config) QueryActivePaths(pathCount, modeCount uint32) ([]domain.DisplayPath, error) {
	proc, err := c.provider.RequireProc(loader.User32, "QueryDisplayConfig")
	if err != nil {
		return nil, err
	}
	if pathCount == 0 {
		return nil, nil
	}

	paths := make([]pathInfo, pathCount)
	modes := make([]modeInfo, max(modeCount, 1))
	r, _, _ := proc.Call(qdcOnlyActivePaths,
		uintptr(unsafe.Pointer(&pathCount)), uintptr(unsafe.Pointer(&paths[0])),
		uintptr(unsafe.Pointer(&modeCount)), uintptr(unsafe.Pointer(&modes[0])),
		0)
	if err := winapi.Win32Status("QueryDisplayConfig", uintptr(uint32(r))); err != nil {
		return nil, err
	}

	result := make([]domain.DisplayPath, 0, pathCount)
	for _, p := range paths[:pathCount] {
		result = append(result, domain.DisplayPath{
			SourceAdapter: p.SourceInfo.AdapterID,
			SourceID:      p.SourceInfo.ID,
			TargetAdapter: p.TargetInfo.AdapterID,
			TargetID:      p.TargetInfo.ID,
			TargetRefresh: p.TargetInfo.RefreshRate,
		})
	}
	return result, nil
}

func (c *Config) deviceInfo(header *deviceInfoHeader) error {
	proc, err := c.provider.RequireProc(loader.User32, "DisplayConfigGetDeviceInfo")
	if err != nil {
		return err
	}
	r, _, _ := proc.Call(uintptr(unsafe.Pointer(header)))
	return winapi.Win32Status("DisplayConfigGetDeviceInfo", uintptr(uint32(r)))
}

func (c *Config) SourceDeviceName(path domain.DisplayPath) (string, error) {
	var info sourceDeviceName
	info.Header = deviceInfoHeader{
		Type:      deviceInfoGetSourceName,
		Size:      uint32(unsafe.Sizeof(info)),
		AdapterID: path.SourceAdapter,
		ID:        path.SourceID,
	}
	if err := c.deviceInfo(&info.Header); err != nil {
		return "", err
	}
	return windows.UTF16ToString(info.ViewGdiDeviceName[:]), nil
}

func (c *Config) TargetFriendlyName(path domain.DisplayPath) (string, error) {
	var info targetDeviceName
	info.Header = deviceInfoHeader{
		Type:      deviceInfoGetTargetName,
		Size:      uint32(unsafe.Sizeof(info)),
		AdapterID: path.TargetAdapter,
		ID:        path.TargetID,
	}
	if err := c.deviceInfo(&info.Header); err != nil {
		return "", err
	}
	return windows.UTF16ToString(info.MonitorFriendlyDeviceName[:]), nil
}

func (c *Config) SDRWhiteLevel(path domain.DisplayPath) (uint32, error) {
	var info sdrWhiteLevel
	info.Header = deviceInfoHeader{
		Type:      deviceInfoGetSDRWhiteLevel,
		Size:      uint32(unsafe.Sizeof(info)),
		AdapterID: path.TargetAdapter,
		ID:        path.TargetID,
	}
	if err := c.deviceInfo(&info.Header); err != nil {
		return 0, err
	}
	return info.SDRWhiteLevel, nil
}

// Settings reads the current display settings through user32
type Settings struct {
	provider *loader.Provider
}

// NewSettings creates a display settings source
func NewSettings(provider *loader.Provider) *Settings {
	return &Settings{provider: provider}
}

func (s *Settings) CurrentFrequency(deviceName string) (uint32, error) {
	proc, err := s.provider.RequireProc(loader.User32, "EnumDisplaySettingsW")
	if err != nil {
		return 0, err
	}
	name, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return 0, err
	}

	var mode win.DEVMODE
	mode.DmSize = uint16(unsafe.Sizeof(mode))
	r, _, lastErr := proc.Call(uintptr(unsafe.Pointer(name)), enumCurrentSettings,
		uintptr(unsafe.Pointer(&mode)))
	if r == 0 {
		return 0, winapi.Win32Error("EnumDisplaySettingsW", lastErr)
	}
	return mode.DmDisplayFrequency, nil
}

// DeviceContexts opens GDI device contexts through gdi32
type DeviceContexts struct {
	provider *loader.Provider
}

// NewDeviceContexts creates a device context source
func NewDeviceContexts(provider *loader.Provider) *DeviceContexts {
	return &DeviceContexts{provider: provider}
}

func (d *DeviceContexts) Create(deviceName string) (domain.DeviceContextHandle, error) {
	if !d.provider.Supports(loader.FeatureDeviceContext) {
		return 0, loader.Unsupported(loader.FeatureDeviceContext)
	}
	proc, _ := d.provider.Proc(loader.Gdi32, "CreateDCW")
	name, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return 0, err
	}
	hdc, _, lastErr := proc.Call(uintptr(unsafe.Pointer(name)), uintptr(unsafe.Pointer(name)), 0, 0)
	if hdc == 0 {
		return 0, winapi.Win32Error("CreateDCW", lastErr)
	}
	return domain.DeviceContextHandle(hdc), nil
}

func (d *DeviceContexts) VerticalRefresh(dc domain.DeviceContextHandle) int32 {
	proc, ok := d.provider.Proc(loader.Gdi32, "GetDeviceCaps")
	if !ok {
		return 0
	}
	r, _, _ := proc.Call(uintptr(dc), capsVerticalRefresh)
	return int32(r)
}

func (d *DeviceContexts) Delete(dc domain.DeviceContextHandle) error {
	proc, err := d.provider.RequireProc(loader.Gdi32, "DeleteDC")
	if err != nil {
		return err
	}
	r, _, lastErr := proc.Call(uintptr(dc))
	if r == 0 {
		return winapi.Win32Error("DeleteDC", lastErr)
	}
	return nil
}
