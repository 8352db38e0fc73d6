//go:build windows
// +build windows

package dxgi

import (
	"syscall"
	"unsafe"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
	"github.com/genricoloni/gpuprobe/internal/winapi"
	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	iidFactory1 = windows.GUID{Data1: 0x770aae78, Data2: 0xf26f, Data3: 0x4dba,
		Data4: [8]byte{0xa8, 0x29, 0x25, 0x3c, 0x83, 0xd1, 0xb3, 0x87}}
	iidFactory5 = windows.GUID{Data1: 0x7632e1f5, Data2: 0xee65, Data3: 0x4dca,
		Data4: [8]byte{0x87, 0xfd, 0x84, 0xcd, 0x75, 0xf8, 0x83, 0x8d}}
	iidAdapter3 = windows.GUID{Data1: 0x645967a4, Data2: 0x1392, Data3: 0x4310,
		Data4: [8]byte{0xa7, 0x98, 0x80, 0x53, 0xce, 0x3e, 0x93, 0xfd}}
	iidOutput1 = windows.GUID{Data1: 0x00cddea8, Data2: 0x939b, Data3: 0x4b83,
		Data4: [8]byte{0xa3, 0x40, 0xa6, 0x85, 0x22, 0x66, 0x66, 0xcc}}
	iidOutput6 = windows.GUID{Data1: 0x068346e8, Data2: 0xaaec, Data3: 0x4b84,
		Data4: [8]byte{0xad, 0xd7, 0x13, 0x7f, 0x51, 0x3f, 0x77, 0xa1}}
)

const (
	featurePresentAllowTearing = 0
	memorySegmentGroupNonLocal = 1
	adapterFlagSoftware        = 2
)

type adapterDesc1 struct {
	Description           [128]uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uintptr
	DedicatedSystemMemory uintptr
	SharedSystemMemory    uintptr
	AdapterLuid           windows.LUID
	Flags                 uint32
}

type outputDesc struct {
	DeviceName         [32]uint16
	DesktopCoordinates win.RECT
	AttachedToDesktop  int32
	Rotation           uint32
	Monitor            win.HMONITOR
}

type outputDesc1 struct {
	outputDesc

	BitsPerColor          uint32
	ColorSpace            uint32
	RedPrimary            [2]float32
	GreenPrimary          [2]float32
	BluePrimary           [2]float32
	WhitePoint            [2]float32
	MinLuminance          float32
	MaxLuminance          float32
	MaxFullFrameLuminance float32
}

type modeDesc1 struct {
	Width            uint32
	Height           uint32
	RefreshRate      domain.Rational
	Format           uint32
	ScanlineOrdering uint32
	Scaling          uint32
	Stereo           int32
}

type videoMemoryInfo struct {
	Budget                  uint64
	CurrentUsage            uint64
	AvailableForReservation uint64
	CurrentReservation      uint64
}

// comObject is the layout shared by every COM interface pointer: the first
// word points at the vtable.
type comObject struct {
	vtbl unsafe.Pointer
}

func (o *comObject) this() uintptr {
	return uintptr(unsafe.Pointer(o))
}

func (o *comObject) release() {
	syscall.SyscallN((*iUnknownVtbl)(o.vtbl).Release, o.this())
}

func (o *comObject) queryInterface(op string, iid *windows.GUID) (*comObject, error) {
	var out *comObject
	r, _, _ := syscall.SyscallN((*iUnknownVtbl)(o.vtbl).QueryInterface, o.this(),
		uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out)))
	if err := winapi.CheckHResult(op, r); err != nil {
		return nil, err
	}
	return out, nil
}

// NewFactoryFunc returns a FactoryFunc that creates an IDXGIFactory1 through
// the provider's dxgi library
func NewFactoryFunc(provider *loader.Provider) FactoryFunc {
	return func() (domain.GraphicsFactory, error) {
		proc, err := provider.RequireProc(loader.DXGI, "CreateDXGIFactory1")
		if err != nil {
			return nil, err
		}
		var out *comObject
		r, _, _ := proc.Call(uintptr(unsafe.Pointer(&iidFactory1)), uintptr(unsafe.Pointer(&out)))
		if err := winapi.CheckHResult("CreateDXGIFactory1", r); err != nil {
			return nil, err
		}
		return &factory{obj: out}, nil
	}
}

type factory struct {
	obj *comObject
}

func (f *factory) vtbl() *iDXGIFactory1Vtbl {
	return (*iDXGIFactory1Vtbl)(f.obj.vtbl)
}

func (f *factory) EnumAdapter(index uint32) (domain.GraphicsAdapter, error) {
	var out *comObject
	r, _, _ := syscall.SyscallN(f.vtbl().EnumAdapters1, f.obj.this(),
		uintptr(index), uintptr(unsafe.Pointer(&out)))
	if err := winapi.CheckHResult("IDXGIFactory1::EnumAdapters1", r); err != nil {
		return nil, err
	}
	return &adapter{obj: out}, nil
}

func (f *factory) AllowTearing() (bool, error) {
	f5, err := f.obj.queryInterface("IDXGIFactory1::QueryInterface(IDXGIFactory5)", &iidFactory5)
	if err != nil {
		return false, err
	}
	defer f5.release()

	var allow int32
	r, _, _ := syscall.SyscallN((*iDXGIFactory5Vtbl)(f5.vtbl).CheckFeatureSupport, f5.this(),
		featurePresentAllowTearing, uintptr(unsafe.Pointer(&allow)), unsafe.Sizeof(allow))
	if err := winapi.CheckHResult("IDXGIFactory5::CheckFeatureSupport", r); err != nil {
		return false, err
	}
	return allow != 0, nil
}

func (f *factory) Release() {
	f.obj.release()
}

type adapter struct {
	obj *comObject
}

func (a *adapter) vtbl() *iDXGIAdapter1Vtbl {
	return (*iDXGIAdapter1Vtbl)(a.obj.vtbl)
}

func (a *adapter) Descriptor() (domain.AdapterDescriptor, error) {
	var desc adapterDesc1
	r, _, _ := syscall.SyscallN(a.vtbl().GetDesc1, a.obj.this(), uintptr(unsafe.Pointer(&desc)))
	if err := winapi.CheckHResult("IDXGIAdapter1::GetDesc1", r); err != nil {
		return domain.AdapterDescriptor{}, err
	}
	return domain.AdapterDescriptor{
		Description:           windows.UTF16ToString(desc.Description[:]),
		VendorID:              desc.VendorID,
		DeviceID:              desc.DeviceID,
		SubSysID:              desc.SubSysID,
		Revision:              desc.Revision,
		DedicatedVideoMemory:  uint64(desc.DedicatedVideoMemory),
		DedicatedSystemMemory: uint64(desc.DedicatedSystemMemory),
		SharedSystemMemory:    uint64(desc.SharedSystemMemory),
		LUID:                  domain.LUID{LowPart: desc.AdapterLuid.LowPart, HighPart: desc.AdapterLuid.HighPart},
		Software:              desc.Flags&adapterFlagSoftware != 0,
	}, nil
}

func (a *adapter) NonLocalMemoryBudget() (uint64, error) {
	a3, err := a.obj.queryInterface("IDXGIAdapter1::QueryInterface(IDXGIAdapter3)", &iidAdapter3)
	if err != nil {
		return 0, err
	}
	defer a3.release()

	var info videoMemoryInfo
	r, _, _ := syscall.SyscallN((*iDXGIAdapter3Vtbl)(a3.vtbl).QueryVideoMemoryInfo, a3.this(),
		0, memorySegmentGroupNonLocal, uintptr(unsafe.Pointer(&info)))
	if err := winapi.CheckHResult("IDXGIAdapter3::QueryVideoMemoryInfo", r); err != nil {
		return 0, err
	}
	return info.Budget, nil
}

func (a *adapter) EnumOutput(index uint32) (domain.DisplayOutput, error) {
	var out *comObject
	r, _, _ := syscall.SyscallN(a.vtbl().EnumOutputs, a.obj.this(),
		uintptr(index), uintptr(unsafe.Pointer(&out)))
	if err := winapi.CheckHResult("IDXGIAdapter::EnumOutputs", r); err != nil {
		return nil, err
	}
	return &output{obj: out}, nil
}

func (a *adapter) Release() {
	a.obj.release()
}

type output struct {
	obj *comObject
}

func (o *output) Descriptor() (domain.OutputDescriptor, error) {
	var desc outputDesc
	r, _, _ := syscall.SyscallN((*iDXGIOutputVtbl)(o.obj.vtbl).GetDesc, o.obj.this(),
		uintptr(unsafe.Pointer(&desc)))
	if err := winapi.CheckHResult("IDXGIOutput::GetDesc", r); err != nil {
		return domain.OutputDescriptor{}, err
	}
	return convertOutputDesc(&desc), nil
}

func convertOutputDesc(desc *outputDesc) domain.OutputDescriptor {
	return domain.OutputDescriptor{
		DeviceName: windows.UTF16ToString(desc.DeviceName[:]),
		DesktopRect: domain.Rect{
			Left:   desc.DesktopCoordinates.Left,
			Top:    desc.DesktopCoordinates.Top,
			Right:  desc.DesktopCoordinates.Right,
			Bottom: desc.DesktopCoordinates.Bottom,
		},
		Rotation:          domain.Rotation(desc.Rotation),
		AttachedToDesktop: desc.AttachedToDesktop != 0,
		Monitor:           domain.MonitorHandle(desc.Monitor),
	}
}

func (o *output) DisplayModes(format domain.PixelFormat) ([]domain.Rational, error) {
	o1, err := o.obj.queryInterface("IDXGIOutput::QueryInterface(IDXGIOutput1)", &iidOutput1)
	if err != nil {
		return nil, err
	}
	defer o1.release()

	getModes := (*iDXGIOutput1Vtbl)(o1.vtbl).GetDisplayModeList1
	var count uint32
	r, _, _ := syscall.SyscallN(getModes, o1.this(), uintptr(format), 0,
		uintptr(unsafe.Pointer(&count)), 0)
	if err := winapi.CheckHResult("IDXGIOutput1::GetDisplayModeList1", r); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	modes := make([]modeDesc1, count)
	r, _, _ = syscall.SyscallN(getModes, o1.this(), uintptr(format), 0,
		uintptr(unsafe.Pointer(&count)), uintptr(unsafe.Pointer(&modes[0])))
	if err := winapi.CheckHResult("IDXGIOutput1::GetDisplayModeList1", r); err != nil {
		return nil, err
	}

	rates := make([]domain.Rational, 0, count)
	for _, mode := range modes[:count] {
		rates = append(rates, mode.RefreshRate)
	}
	return rates, nil
}

func (o *output) ExtendedDescriptor() (domain.ExtendedOutput, error) {
	o6, err := o.obj.queryInterface("IDXGIOutput::QueryInterface(IDXGIOutput6)", &iidOutput6)
	if err != nil {
		return domain.ExtendedOutput{}, err
	}
	defer o6.release()

	var desc outputDesc1
	r, _, _ := syscall.SyscallN((*iDXGIOutput6Vtbl)(o6.vtbl).GetDesc1, o6.this(),
		uintptr(unsafe.Pointer(&desc)))
	if err := winapi.CheckHResult("IDXGIOutput6::GetDesc1", r); err != nil {
		return domain.ExtendedOutput{}, err
	}
	return domain.ExtendedOutput{
		BitsPerColor:          desc.BitsPerColor,
		ColorSpace:            domain.ColorSpace(desc.ColorSpace),
		RedPrimary:            desc.RedPrimary,
		GreenPrimary:          desc.GreenPrimary,
		BluePrimary:           desc.BluePrimary,
		WhitePoint:            desc.WhitePoint,
		MinLuminance:          desc.MinLuminance,
		MaxLuminance:          desc.MaxLuminance,
		MaxFullFrameLuminance: desc.MaxFullFrameLuminance,
	}, nil
}

func (o *output) Release() {
	o.obj.release()
}
