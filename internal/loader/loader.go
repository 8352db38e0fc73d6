// Package loader resolves the optional native entry points the probe uses.
//
// Every library is loaded from the system directory at most once per
// Provider. A symbol is looked up only when its library loaded and the host
// OS is at least the release that introduced the symbol; otherwise it is
// reported unavailable and callers degrade.
package loader

import (
	"fmt"
	"sync"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"go.uber.org/zap"
)

// Library identifies one of the system libraries the probe may use
type Library int

const (
	User32 Library = iota
	Gdi32
	DXGI
	SHCore
	SetupAPI
)

// FileName returns the DLL name of the library
func (l Library) FileName() string {
	switch l {
	case User32:
		return "user32.dll"
	case Gdi32:
		return "gdi32.dll"
	case DXGI:
		return "dxgi.dll"
	case SHCore:
		return "shcore.dll"
	case SetupAPI:
		return "setupapi.dll"
	default:
		return fmt.Sprintf("library(%d)", int(l))
	}
}

// Minimum OS releases that introduced the symbols below
var (
	Windows2000  = domain.OSVersion{Major: 5, Minor: 0}
	WindowsVista = domain.OSVersion{Major: 6, Minor: 0}
	Windows7     = domain.OSVersion{Major: 6, Minor: 1}
	Windows81    = domain.OSVersion{Major: 6, Minor: 3}
	Windows10    = domain.OSVersion{Major: 10, Minor: 0}
	Windows10RS2 = domain.OSVersion{Major: 10, Minor: 0, Build: 15063}
)

// Symbol is a native entry point with its minimum OS release
type Symbol struct {
	Name  string
	Since domain.OSVersion
}

// Symbols is the fixed table of entry points resolved per library
var Symbols = map[Library][]Symbol{
	User32: {
		{Name: "GetMonitorInfoW", Since: Windows2000},
		{Name: "EnumDisplaySettingsW", Since: Windows2000},
		{Name: "GetDisplayConfigBufferSizes", Since: WindowsVista},
		{Name: "DisplayConfigGetDeviceInfo", Since: WindowsVista},
		{Name: "QueryDisplayConfig", Since: Windows7},
		{Name: "SetProcessDpiAwarenessContext", Since: Windows10RS2},
	},
	Gdi32: {
		{Name: "CreateDCW", Since: Windows2000},
		{Name: "DeleteDC", Since: Windows2000},
		{Name: "GetDeviceCaps", Since: Windows2000},
	},
	DXGI: {
		{Name: "CreateDXGIFactory1", Since: Windows7},
	},
	SHCore: {
		{Name: "GetDpiForMonitor", Since: Windows81},
	},
	SetupAPI: {
		{Name: "SetupDiDestroyDeviceInfoList", Since: Windows2000},
		{Name: "SetupDiEnumDeviceInfo", Since: Windows2000},
		{Name: "SetupDiGetClassDevsW", Since: WindowsVista},
		{Name: "SetupDiGetDevicePropertyW", Since: WindowsVista},
	},
}

// Feature is a group of entry points a component needs together
type Feature struct {
	Name     string
	Library  Library
	Requires []string
}

var (
	FeatureDisplayConfig = Feature{Name: "display configuration", Library: User32,
		Requires: []string{"GetDisplayConfigBufferSizes", "QueryDisplayConfig", "DisplayConfigGetDeviceInfo"}}
	FeatureDisplaySettings = Feature{Name: "display settings", Library: User32,
		Requires: []string{"EnumDisplaySettingsW"}}
	FeatureMonitorInfo = Feature{Name: "monitor info", Library: User32,
		Requires: []string{"GetMonitorInfoW"}}
	FeatureDPIAwareness = Feature{Name: "DPI awareness", Library: User32,
		Requires: []string{"SetProcessDpiAwarenessContext"}}
	FeatureDeviceContext = Feature{Name: "device context", Library: Gdi32,
		Requires: []string{"CreateDCW", "DeleteDC", "GetDeviceCaps"}}
	FeatureGraphicsFactory = Feature{Name: "graphics factory", Library: DXGI,
		Requires: []string{"CreateDXGIFactory1"}}
	FeatureMonitorDPI = Feature{Name: "per-monitor DPI", Library: SHCore,
		Requires: []string{"GetDpiForMonitor"}}
	FeatureDeviceSetup = Feature{Name: "device setup", Library: SetupAPI,
		Requires: []string{"SetupDiGetClassDevsW", "SetupDiDestroyDeviceInfoList", "SetupDiEnumDeviceInfo", "SetupDiGetDevicePropertyW"}}
)

// Proc is a resolved native entry point.
// *windows.LazyProc satisfies it.
type Proc interface {
	Call(a ...uintptr) (r1, r2 uintptr, lastErr error)
}

// Module is a loaded native library
type Module interface {
	Find(symbol string) (Proc, error)
}

// Opener loads native libraries
type Opener interface {
	Open(name string) (Module, error)
}

type library struct {
	once   sync.Once
	module Module
	procs  map[string]Proc
}

// Provider owns the library handles for the life of the process. Libraries
// are loaded lazily on first query; the result never changes afterwards, so
// concurrent reads are safe.
type Provider struct {
	logger  *zap.Logger
	opener  Opener
	version domain.OSVersion
	libs    map[Library]*library
}

// NewProvider creates a provider that loads libraries through opener and
// gates symbols against the given host version
func NewProvider(logger *zap.Logger, opener Opener, version domain.OSVersion) *Provider {
	libs := make(map[Library]*library, len(Symbols))
	for lib := range Symbols {
		libs[lib] = &library{}
	}
	return &Provider{
		logger:  logger,
		opener:  opener,
		version: version,
		libs:    libs,
	}
}

// NewSystemProvider creates a provider backed by the host's system directory
func NewSystemProvider(logger *zap.Logger) *Provider {
	version := HostVersion()
	logger.Debug("Host OS version detected",
		zap.Uint32("major", version.Major),
		zap.Uint32("minor", version.Minor),
		zap.Uint32("build", version.Build))
	return NewProvider(logger, systemOpener{}, version)
}

// HostOS returns the OS version symbols are gated against
func (p *Provider) HostOS() domain.OSVersion {
	return p.version
}

func (p *Provider) load(lib Library) *library {
	l, ok := p.libs[lib]
	if !ok {
		return nil
	}
	l.once.Do(func() {
		name := lib.FileName()
		module, err := p.opener.Open(name)
		if err != nil {
			p.logger.Warn("Failed to load library",
				zap.String("library", name),
				zap.Error(err))
			return
		}
		l.module = module
		l.procs = make(map[string]Proc)
		for _, sym := range Symbols[lib] {
			if !p.version.AtLeast(sym.Since) {
				p.logger.Debug("Symbol gated out by OS version",
					zap.String("library", name),
					zap.String("symbol", sym.Name))
				continue
			}
			proc, err := module.Find(sym.Name)
			if err != nil {
				p.logger.Warn("Failed to resolve symbol",
					zap.String("library", name),
					zap.String("symbol", sym.Name),
					zap.Error(err))
				continue
			}
			l.procs[sym.Name] = proc
		}
	})
	return l
}

// Available reports whether the library loaded
func (p *Provider) Available(lib Library) bool {
	l := p.load(lib)
	return l != nil && l.module != nil
}

// Proc returns the resolved entry point, or false if it is unavailable
func (p *Provider) Proc(lib Library, symbol string) (Proc, bool) {
	l := p.load(lib)
	if l == nil || l.module == nil {
		return nil, false
	}
	proc, ok := l.procs[symbol]
	return proc, ok
}

// Supports reports whether every entry point of the feature resolved
func (p *Provider) Supports(f Feature) bool {
	for _, sym := range f.Requires {
		if _, ok := p.Proc(f.Library, sym); !ok {
			return false
		}
	}
	return true
}

// RequireProc returns the entry point or an error wrapping
// domain.ErrUnsupported
func (p *Provider) RequireProc(lib Library, symbol string) (Proc, error) {
	proc, ok := p.Proc(lib, symbol)
	if !ok {
		return nil, fmt.Errorf("%s!%s: %w", lib.FileName(), symbol, domain.ErrUnsupported)
	}
	return proc, nil
}

// Unsupported returns an error wrapping domain.ErrUnsupported naming the
// feature
func Unsupported(f Feature) error {
	return fmt.Errorf("%s (%s): %w", f.Name, f.Library.FileName(), domain.ErrUnsupported)
}
