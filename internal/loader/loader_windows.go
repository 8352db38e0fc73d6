//go:build windows
// +build windows

package loader

import (
	"github.com/genricoloni/gpuprobe/internal/domain"
	"golang.org/x/sys/windows"
)

// systemOpener loads DLLs from the system directory only
// (LOAD_LIBRARY_SEARCH_SYSTEM32), never from the application directory
type systemOpener struct{}

type systemModule struct {
	dll *windows.LazyDLL
}

func (systemOpener) Open(name string) (Module, error) {
	dll := windows.NewLazySystemDLL(name)
	if err := dll.Load(); err != nil {
		return nil, err
	}
	return systemModule{dll: dll}, nil
}

func (m systemModule) Find(symbol string) (Proc, error) {
	proc := m.dll.NewProc(symbol)
	if err := proc.Find(); err != nil {
		return nil, err
	}
	return proc, nil
}

// HostVersion returns the real OS version, unaffected by compatibility shims
func HostVersion() domain.OSVersion {
	info := windows.RtlGetVersion()
	return domain.OSVersion{
		Major: info.MajorVersion,
		Minor: info.MinorVersion,
		Build: info.BuildNumber,
	}
}
