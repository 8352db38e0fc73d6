// Package dxgi walks the adapters of the graphics factory and the outputs of
// each adapter.
//
// Both walks are lazy and restartable: each starts at index 0, stops at the
// first "not found", and skips (after logging) any item whose descriptor
// cannot be fetched. Handles are released as soon as the loop body for that
// item returns.
package dxgi

import (
	"errors"
	"iter"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"go.uber.org/zap"
)

// FactoryFunc creates a graphics factory
type FactoryFunc func() (domain.GraphicsFactory, error)

// Adapter is an adapter handle with its descriptor, valid for one loop body
type Adapter struct {
	Handle     domain.GraphicsAdapter
	Descriptor domain.AdapterDescriptor
}

// Output is an output handle with its descriptor, valid for one loop body
type Output struct {
	Handle     domain.DisplayOutput
	Descriptor domain.OutputDescriptor
}

// Enumerator produces adapter and output sequences
type Enumerator struct {
	logger *zap.Logger
}

// NewEnumerator creates a new enumerator
func NewEnumerator(logger *zap.Logger) *Enumerator {
	return &Enumerator{logger: logger}
}

// VariableRefreshSupported probes tearing support once for the factory.
// A factory without the capability query does not support it.
func (e *Enumerator) VariableRefreshSupported(factory domain.GraphicsFactory) bool {
	allowed, err := factory.AllowTearing()
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			e.logger.Warn("Failed to query tearing support", zap.Error(err))
		}
		return false
	}
	return allowed
}

// Adapters yields every adapter of factory in index order
func (e *Enumerator) Adapters(factory domain.GraphicsFactory) iter.Seq[Adapter] {
	return func(yield func(Adapter) bool) {
		for index := uint32(0); ; index++ {
			handle, err := factory.EnumAdapter(index)
			if errors.Is(err, domain.ErrNotFound) {
				return
			}
			if err != nil {
				// EnumAdapters1 only fails otherwise on invalid calls, which
				// would repeat for every later index.
				e.logger.Warn("Adapter enumeration aborted",
					zap.Uint32("index", index),
					zap.Error(err))
				return
			}
			if !e.visitAdapter(index, handle, yield) {
				return
			}
		}
	}
}

func (e *Enumerator) visitAdapter(index uint32, handle domain.GraphicsAdapter, yield func(Adapter) bool) bool {
	defer handle.Release()

	desc, err := handle.Descriptor()
	if err != nil {
		e.logger.Warn("Skipping adapter",
			zap.String("op", "IDXGIAdapter1::GetDesc1"),
			zap.Uint32("index", index),
			zap.Error(err))
		return true
	}
	desc.Index = index
	desc.Integrated = e.integrated(handle)

	return yield(Adapter{Handle: handle, Descriptor: desc})
}

// integrated guesses whether the adapter is integrated: one without a
// non-local memory budget has no memory of its own to page into.
func (e *Enumerator) integrated(handle domain.GraphicsAdapter) domain.Resolved[bool] {
	budget, err := handle.NonLocalMemoryBudget()
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			e.logger.Warn("Failed to query non-local memory budget", zap.Error(err))
		}
		return domain.Default(false)
	}
	return domain.Found(budget == 0)
}

// Outputs yields every output of adapter in index order
func (e *Enumerator) Outputs(adapter domain.GraphicsAdapter) iter.Seq[Output] {
	return func(yield func(Output) bool) {
		for index := uint32(0); ; index++ {
			handle, err := adapter.EnumOutput(index)
			if errors.Is(err, domain.ErrNotFound) {
				return
			}
			if err != nil {
				e.logger.Warn("Output enumeration aborted",
					zap.Uint32("index", index),
					zap.Error(err))
				return
			}
			if !e.visitOutput(index, handle, yield) {
				return
			}
		}
	}
}

func (e *Enumerator) visitOutput(index uint32, handle domain.DisplayOutput, yield func(Output) bool) bool {
	defer handle.Release()

	desc, err := handle.Descriptor()
	if err != nil {
		e.logger.Warn("Skipping output",
			zap.String("op", "IDXGIOutput::GetDesc"),
			zap.Uint32("index", index),
			zap.Error(err))
		return true
	}
	desc.Index = index

	modes, err := handle.DisplayModes(domain.FormatR8G8B8A8Unorm)
	if err != nil && !errors.Is(err, domain.ErrUnsupported) {
		e.logger.Warn("Failed to list display modes",
			zap.String("device", desc.DeviceName),
			zap.Error(err))
	}
	desc.MaxRefreshRate = MaxRefreshRate(modes)

	ext, err := handle.ExtendedDescriptor()
	switch {
	case err == nil:
		desc.Extended = &ext
	case !errors.Is(err, domain.ErrUnsupported):
		e.logger.Warn("Failed to read extended output description",
			zap.String("op", "IDXGIOutput6::GetDesc1"),
			zap.String("device", desc.DeviceName),
			zap.Error(err))
	}

	return yield(Output{Handle: handle, Descriptor: desc})
}

// MaxRefreshRate returns the highest refresh rate among modes, never less
// than the default rate. Modes with a zero denominator are ignored.
func MaxRefreshRate(modes []domain.Rational) float32 {
	best := domain.DefaultRefreshRate
	for _, mode := range modes {
		if mode.Denominator == 0 {
			continue
		}
		if rate := float32(mode.Numerator) / float32(mode.Denominator); rate > best {
			best = rate
		}
	}
	return best
}
