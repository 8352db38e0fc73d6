//go:build windows
// +build windows

package dpi

import (
	"unsafe"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
	"github.com/genricoloni/gpuprobe/internal/winapi"
	"github.com/lxn/win"
)

const (
	mdtEffectiveDPI = 0

	// dpiAwarenessContextPerMonitorAwareV2 is DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2, ((DPI_AWARENESS_CONTEXT)-4)
	dpiAwarenessContextPerMonitorAwareV2 = ^uintptr(3)
)

// Native implements the DPI and monitor sources with user32 and shcore
type Native struct {
	provider *loader.Provider
}

// NewNative creates the native DPI sources
func NewNative(provider *loader.Provider) *Native {
	return &Native{provider: provider}
}

func (n *Native) EffectiveDPI(monitor domain.MonitorHandle) (uint32, error) {
	proc, err := n.provider.RequireProc(loader.SHCore, "GetDpiForMonitor")
	if err != nil {
		return 0, err
	}
	var dpiX, dpiY uint32
	r, _, _ := proc.Call(uintptr(monitor), mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
	if err := winapi.CheckHResult("GetDpiForMonitor", r); err != nil {
		return 0, err
	}
	return dpiX, nil
}

func (n *Native) IsPrimary(monitor domain.MonitorHandle) (bool, error) {
	proc, err := n.provider.RequireProc(loader.User32, "GetMonitorInfoW")
	if err != nil {
		return false, err
	}
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	r, _, lastErr := proc.Call(uintptr(monitor), uintptr(unsafe.Pointer(&info)))
	if r == 0 {
		return false, winapi.Win32Error("GetMonitorInfoW", lastErr)
	}
	return info.DwFlags&win.MONITORINFOF_PRIMARY != 0, nil
}

func (n *Native) DeclarePerMonitorV2() error {
	proc, err := n.provider.RequireProc(loader.User32, "SetProcessDpiAwarenessContext")
	if err != nil {
		return err
	}
	r, _, lastErr := proc.Call(dpiAwarenessContextPerMonitorAwareV2)
	if r == 0 {
		return winapi.Win32Error("SetProcessDpiAwarenessContext", lastErr)
	}
	return nil
}
