package loader

import (
	"errors"
	"sync"
	"testing"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeProc struct{ name string }

func (p fakeProc) Call(a ...uintptr) (uintptr, uintptr, error) { return 1, 0, nil }

type fakeModule struct {
	mu      *sync.Mutex
	missing map[string]bool
	finds   map[string]int
}

func (m fakeModule) Find(symbol string) (Proc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finds[symbol]++
	if m.missing[symbol] {
		return nil, errors.New("procedure not found")
	}
	return fakeProc{name: symbol}, nil
}

type fakeOpener struct {
	mu      sync.Mutex
	broken  map[string]bool
	missing map[string]bool
	opens   map[string]int
	finds   map[string]int
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{
		broken:  map[string]bool{},
		missing: map[string]bool{},
		opens:   map[string]int{},
		finds:   map[string]int{},
	}
}

func (o *fakeOpener) Open(name string) (Module, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.opens[name]++
	if o.broken[name] {
		return nil, errors.New("module not found")
	}
	return fakeModule{mu: &o.mu, missing: o.missing, finds: o.finds}, nil
}

func (o *fakeOpener) findCount(symbol string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.finds[symbol]
}

var windows11 = domain.OSVersion{Major: 10, Minor: 0, Build: 22631}

func TestProvider_LoadsEachLibraryOnce(t *testing.T) {
	opener := newFakeOpener()
	p := NewProvider(zap.NewNop(), opener, windows11)

	for i := 0; i < 3; i++ {
		assert.True(t, p.Available(User32))
		_, ok := p.Proc(User32, "QueryDisplayConfig")
		assert.True(t, ok)
	}

	assert.Equal(t, 1, opener.opens["user32.dll"])
	assert.Equal(t, 1, opener.findCount("QueryDisplayConfig"))
	assert.Zero(t, opener.opens["dxgi.dll"], "untouched libraries stay unloaded")
}

func TestProvider_ConcurrentFirstUse(t *testing.T) {
	opener := newFakeOpener()
	p := NewProvider(zap.NewNop(), opener, windows11)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Supports(FeatureDeviceSetup)
		}()
	}
	wg.Wait()

	opener.mu.Lock()
	defer opener.mu.Unlock()
	assert.Equal(t, 1, opener.opens["setupapi.dll"])
}

func TestProvider_MissingLibrary(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	opener := newFakeOpener()
	opener.broken["shcore.dll"] = true
	p := NewProvider(zap.New(core), opener, windows11)

	assert.False(t, p.Available(SHCore))
	_, ok := p.Proc(SHCore, "GetDpiForMonitor")
	assert.False(t, ok)
	assert.False(t, p.Supports(FeatureMonitorDPI))
	assert.Zero(t, opener.findCount("GetDpiForMonitor"), "symbols of a missing library are never looked up")

	// Other libraries are unaffected
	assert.True(t, p.Supports(FeatureGraphicsFactory))

	entries := logs.FilterMessage("Failed to load library").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "shcore.dll", entries[0].ContextMap()["library"])
}

func TestProvider_VersionGates(t *testing.T) {
	tests := []struct {
		name     string
		version  domain.OSVersion
		lib      Library
		proc     string
		resolved bool
	}{
		{"Vista has buffer sizes", WindowsVista, User32, "GetDisplayConfigBufferSizes", true},
		{"Vista lacks QueryDisplayConfig", WindowsVista, User32, "QueryDisplayConfig", false},
		{"Windows 7 has QueryDisplayConfig", Windows7, User32, "QueryDisplayConfig", true},
		{"Windows 8 lacks GetDpiForMonitor", domain.OSVersion{Major: 6, Minor: 2}, SHCore, "GetDpiForMonitor", false},
		{"Windows 8.1 has GetDpiForMonitor", Windows81, SHCore, "GetDpiForMonitor", true},
		{"Windows 10 1607 lacks DPI awareness context", domain.OSVersion{Major: 10, Build: 14393}, User32, "SetProcessDpiAwarenessContext", false},
		{"Windows 10 1703 has DPI awareness context", Windows10RS2, User32, "SetProcessDpiAwarenessContext", true},
		{"XP lacks CreateDXGIFactory1", domain.OSVersion{Major: 5, Minor: 1}, DXGI, "CreateDXGIFactory1", false},
		{"Zero version gates everything", domain.OSVersion{}, Gdi32, "CreateDCW", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener := newFakeOpener()
			p := NewProvider(zap.NewNop(), opener, tt.version)

			_, ok := p.Proc(tt.lib, tt.proc)
			assert.Equal(t, tt.resolved, ok)
			if !tt.resolved {
				assert.Zero(t, opener.findCount(tt.proc), "gated symbols must not be looked up")
			}
		})
	}
}

func TestProvider_MissingSymbol(t *testing.T) {
	opener := newFakeOpener()
	opener.missing["GetDeviceCaps"] = true
	p := NewProvider(zap.NewNop(), opener, windows11)

	assert.True(t, p.Available(Gdi32))
	_, ok := p.Proc(Gdi32, "CreateDCW")
	assert.True(t, ok)
	assert.False(t, p.Supports(FeatureDeviceContext))

	_, err := p.RequireProc(Gdi32, "GetDeviceCaps")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupported)
	assert.Contains(t, err.Error(), "gdi32.dll!GetDeviceCaps")
}

func TestProvider_UnknownLibrary(t *testing.T) {
	p := NewProvider(zap.NewNop(), newFakeOpener(), windows11)

	assert.False(t, p.Available(Library(42)))
	_, ok := p.Proc(Library(42), "Anything")
	assert.False(t, ok)
}

func TestOSVersion_AtLeast(t *testing.T) {
	assert.True(t, windows11.AtLeast(Windows10RS2))
	assert.True(t, Windows10RS2.AtLeast(Windows10RS2))
	assert.False(t, Windows10.AtLeast(Windows10RS2))
	assert.True(t, Windows81.AtLeast(Windows7))
	assert.False(t, Windows7.AtLeast(Windows81))
}
