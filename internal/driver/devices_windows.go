//go:build windows
// +build windows

package driver

import (
	"errors"
	"unsafe"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
	"github.com/genricoloni/gpuprobe/internal/winapi"
	"golang.org/x/sys/windows"
)

const (
	digcfPresent = 0x00000002

	// propertyBufferChars sizes the string property buffer in UTF-16 units
	propertyBufferChars = 512
)

var guidDevClassDisplay = windows.GUID{Data1: 0x4d36e968, Data2: 0xe325, Data3: 0x11ce,
	Data4: [8]byte{0xbf, 0xc1, 0x08, 0x00, 0x2b, 0xe1, 0x03, 0x18}}

type devPropKey struct {
	FmtID windows.GUID
	PID   uint32
}

var (
	fmtDriverInfo = windows.GUID{Data1: 0xa8b865dd, Data2: 0x2e3d, Data3: 0x4094,
		Data4: [8]byte{0xad, 0x97, 0xe5, 0x93, 0xa7, 0x0c, 0x75, 0xd6}}
	fmtDevice = windows.GUID{Data1: 0xa45c254e, Data2: 0xdf1c, Data3: 0x4efd,
		Data4: [8]byte{0x80, 0x20, 0x67, 0xd1, 0x46, 0xa8, 0x50, 0xe0}}
)

var propertyKeys = map[domain.DeviceProperty]devPropKey{
	domain.PropertyDriverDesc:     {FmtID: fmtDriverInfo, PID: 4},
	domain.PropertyDriverKey:      {FmtID: fmtDevice, PID: 11},
	domain.PropertyDriverProvider: {FmtID: fmtDriverInfo, PID: 9},
	domain.PropertyDriverVersion:  {FmtID: fmtDriverInfo, PID: 3},
	domain.PropertyDriverDate:     {FmtID: fmtDriverInfo, PID: 2},
}

type devInfoData struct {
	Size      uint32
	ClassGUID windows.GUID
	DevInst   uint32
	Reserved  uintptr
}

// DeviceTree lists devices through setupapi
type DeviceTree struct {
	provider *loader.Provider
}

// NewDeviceTree creates a device tree source
func NewDeviceTree(provider *loader.Provider) *DeviceTree {
	return &DeviceTree{provider: provider}
}

func (t *DeviceTree) PresentDisplayDevices() (domain.DeviceList, error) {
	if !t.provider.Supports(loader.FeatureDeviceSetup) {
		return nil, loader.Unsupported(loader.FeatureDeviceSetup)
	}
	proc, _ := t.provider.Proc(loader.SetupAPI, "SetupDiGetClassDevsW")
	h, _, lastErr := proc.Call(uintptr(unsafe.Pointer(&guidDevClassDisplay)), 0, 0, digcfPresent)
	if h == 0 || windows.Handle(h) == windows.InvalidHandle {
		return nil, winapi.Win32Error("SetupDiGetClassDevsW", lastErr)
	}
	return &deviceList{provider: t.provider, handle: h}, nil
}

type deviceList struct {
	provider *loader.Provider
	handle   uintptr
}

func (l *deviceList) Device(index uint32) (domain.Device, error) {
	proc, _ := l.provider.Proc(loader.SetupAPI, "SetupDiEnumDeviceInfo")
	d := &device{list: l}
	d.data.Size = uint32(unsafe.Sizeof(d.data))
	r, _, lastErr := proc.Call(l.handle, uintptr(index), uintptr(unsafe.Pointer(&d.data)))
	if r == 0 {
		if errors.Is(lastErr, windows.ERROR_NO_MORE_ITEMS) {
			return nil, domain.ErrNotFound
		}
		return nil, winapi.Win32Error("SetupDiEnumDeviceInfo", lastErr)
	}
	return d, nil
}

func (l *deviceList) Close() error {
	proc, _ := l.provider.Proc(loader.SetupAPI, "SetupDiDestroyDeviceInfoList")
	r, _, lastErr := proc.Call(l.handle)
	if r == 0 {
		return winapi.Win32Error("SetupDiDestroyDeviceInfoList", lastErr)
	}
	return nil
}

type device struct {
	list *deviceList
	data devInfoData
}

func (d *device) property(key domain.DeviceProperty, buf unsafe.Pointer, size uintptr) error {
	pkey, ok := propertyKeys[key]
	if !ok {
		return domain.ErrUnsupported
	}
	proc, _ := d.list.provider.Proc(loader.SetupAPI, "SetupDiGetDevicePropertyW")
	var propType uint32
	r, _, lastErr := proc.Call(d.list.handle, uintptr(unsafe.Pointer(&d.data)),
		uintptr(unsafe.Pointer(&pkey)), uintptr(unsafe.Pointer(&propType)),
		uintptr(buf), size, 0, 0)
	if r == 0 {
		return winapi.Win32Error("SetupDiGetDevicePropertyW", lastErr)
	}
	return nil
}

func (d *device) StringProperty(key domain.DeviceProperty) (string, error) {
	var buf [propertyBufferChars]uint16
	if err := d.property(key, unsafe.Pointer(&buf[0]), unsafe.Sizeof(buf)); err != nil {
		return "", err
	}
	return winapi.UTF16ToStringRaw(buf[:]), nil
}

func (d *device) FileTimeProperty(key domain.DeviceProperty) (domain.FileTime, error) {
	var ft windows.Filetime
	if err := d.property(key, unsafe.Pointer(&ft), unsafe.Sizeof(ft)); err != nil {
		return domain.FileTime{}, err
	}
	return domain.FileTime{LowDateTime: ft.LowDateTime, HighDateTime: ft.HighDateTime}, nil
}
