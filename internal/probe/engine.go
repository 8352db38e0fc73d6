// Package probe drives one capability scan: it checks the mandatory
// capabilities, walks every adapter and output, resolves each attribute and
// hands the finished report to the renderer.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/genricoloni/gpuprobe/internal/desktop"
	"github.com/genricoloni/gpuprobe/internal/displayconfig"
	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/dpi"
	"github.com/genricoloni/gpuprobe/internal/driver"
	"github.com/genricoloni/gpuprobe/internal/dxgi"
	"github.com/genricoloni/gpuprobe/internal/loader"
	"go.uber.org/zap"
)

// ErrFatal marks a missing mandatory capability. The run is aborted.
var ErrFatal = errors.New("fatal precondition")

// Capabilities reports which system libraries loaded.
// *loader.Provider satisfies it.
type Capabilities interface {
	Available(lib loader.Library) bool
	HostOS() domain.OSVersion
}

// Engine orchestrates one probe run
type Engine struct {
	logger     *zap.Logger
	caps       Capabilities
	newFactory dxgi.FactoryFunc
	enumerator *dxgi.Enumerator
	display    *displayconfig.Resolver
	drivers    *driver.Resolver
	dpi        *dpi.Resolver
	screens    desktop.Screens
	renderer   domain.Renderer
}

// NewEngine creates a new probe engine
func NewEngine(
	logger *zap.Logger,
	caps Capabilities,
	newFactory dxgi.FactoryFunc,
	enumerator *dxgi.Enumerator,
	display *displayconfig.Resolver,
	drivers *driver.Resolver,
	dpiResolver *dpi.Resolver,
	screens desktop.Screens,
	renderer domain.Renderer,
) *Engine {
	return &Engine{
		logger:     logger,
		caps:       caps,
		newFactory: newFactory,
		enumerator: enumerator,
		display:    display,
		drivers:    drivers,
		dpi:        dpiResolver,
		screens:    screens,
		renderer:   renderer,
	}
}

// Run performs the probe and renders the report to w. A returned error
// wrapping ErrFatal means a mandatory capability is missing.
func (e *Engine) Run(ctx context.Context, w io.Writer) error {
	for _, lib := range []loader.Library{loader.User32, loader.DXGI} {
		if !e.caps.Available(lib) {
			return fmt.Errorf("%w: %s is required", ErrFatal, lib.FileName())
		}
	}

	if err := e.dpi.DeclareAwareness(); err != nil {
		return fmt.Errorf("%w: %w", ErrFatal, err)
	}

	factory, err := e.newFactory()
	if err != nil {
		return fmt.Errorf("%w: failed to create graphics factory: %w", ErrFatal, err)
	}
	defer factory.Release()

	report := e.Probe(ctx, factory)
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.renderer.Render(w, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// Probe builds the report for every adapter of factory. It stops between
// items once ctx is done.
func (e *Engine) Probe(ctx context.Context, factory domain.GraphicsFactory) *domain.Report {
	report := &domain.Report{
		OS:       e.caps.HostOS(),
		Adapters: []domain.AdapterReport{},
	}
	if e.screens != nil {
		report.Desktop = desktop.Summarize(e.logger, e.screens)
	}

	variableRefresh := e.enumerator.VariableRefreshSupported(factory)

	for adapter := range e.enumerator.Adapters(factory) {
		if ctx.Err() != nil {
			break
		}
		report.Adapters = append(report.Adapters, e.probeAdapter(ctx, adapter, variableRefresh))
	}

	e.logger.Debug("Probe finished", zap.Int("adapters", len(report.Adapters)))
	return report
}

func (e *Engine) probeAdapter(ctx context.Context, adapter dxgi.Adapter, variableRefresh bool) domain.AdapterReport {
	desc := adapter.Descriptor
	e.logger.Debug("Probing adapter",
		zap.Uint32("index", desc.Index),
		zap.String("description", desc.Description))

	result := domain.AdapterReport{
		Adapter:         desc,
		Vendor:          desc.Vendor(),
		VariableRefresh: variableRefresh,
		Driver:          e.drivers.Resolve(desc.Description),
		Outputs:         []domain.OutputReport{},
	}

	for output := range e.enumerator.Outputs(adapter.Handle) {
		if ctx.Err() != nil {
			break
		}
		result.Outputs = append(result.Outputs, e.probeOutput(output.Descriptor))
	}
	return result
}

func (e *Engine) probeOutput(desc domain.OutputDescriptor) domain.OutputReport {
	paths := e.display.Paths(desc.DeviceName)
	resolvedDPI := e.dpi.Resolve(desc.Monitor)

	return domain.OutputReport{
		Output:        desc,
		Primary:       e.dpi.IsPrimary(desc.Monitor),
		FriendlyName:  e.display.FriendlyName(paths),
		SDRWhiteLevel: e.display.SDRWhiteLevel(paths),
		RefreshRate:   e.display.RefreshRate(desc.DeviceName, paths),
		DPI:           resolvedDPI,
		Scale:         dpi.Scale(resolvedDPI.Value),
	}
}
