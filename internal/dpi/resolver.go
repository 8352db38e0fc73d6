// Package dpi resolves per-monitor DPI and declares the process DPI
// awareness the probe needs to see unscaled values.
package dpi

import (
	"errors"
	"fmt"
	"math"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"go.uber.org/zap"
)

// AwarenessDeclarer sets the process-wide DPI awareness
type AwarenessDeclarer interface {
	// DeclarePerMonitorV2 declares per-monitor (v2) awareness. Returns
	// domain.ErrAccessDenied when awareness was already set, for example by
	// the application manifest.
	DeclarePerMonitorV2() error
}

// Resolver resolves monitor DPI and attributes
type Resolver struct {
	logger    *zap.Logger
	querier   domain.DPIQuerier
	monitors  domain.MonitorInfo
	awareness AwarenessDeclarer
}

// NewResolver creates a new resolver
func NewResolver(logger *zap.Logger, querier domain.DPIQuerier, monitors domain.MonitorInfo, awareness AwarenessDeclarer) *Resolver {
	return &Resolver{
		logger:    logger,
		querier:   querier,
		monitors:  monitors,
		awareness: awareness,
	}
}

// DeclareAwareness declares per-monitor DPI awareness once at startup. An
// unavailable entry point or an awareness that was already declared is not
// an error.
func (r *Resolver) DeclareAwareness() error {
	err := r.awareness.DeclarePerMonitorV2()
	switch {
	case err == nil:
		r.logger.Debug("Declared per-monitor DPI awareness")
		return nil
	case errors.Is(err, domain.ErrUnsupported):
		r.logger.Debug("DPI awareness declaration not available", zap.Error(err))
		return nil
	case errors.Is(err, domain.ErrAccessDenied):
		r.logger.Debug("DPI awareness already declared", zap.Error(err))
		return nil
	default:
		return fmt.Errorf("failed to declare DPI awareness: %w", err)
	}
}

// Resolve returns the effective DPI of monitor. On failure the value is the
// standard DPI and the result is not resolved.
func (r *Resolver) Resolve(monitor domain.MonitorHandle) domain.Resolved[uint32] {
	if monitor == 0 {
		return domain.Default(domain.StandardDPI)
	}
	dpi, err := r.querier.EffectiveDPI(monitor)
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			r.logger.Warn("Failed to read monitor DPI",
				zap.String("op", "GetDpiForMonitor"),
				zap.Error(err))
		}
		return domain.Default(domain.StandardDPI)
	}
	return domain.Found(dpi)
}

// Scale returns the scale factor of dpi in percent, rounded half away from
// zero
func Scale(dpi uint32) uint32 {
	ratio := float32(dpi) / float32(domain.StandardDPI) * 100
	return uint32(math.Round(float64(ratio)))
}

// IsPrimary reports whether monitor is the primary display
func (r *Resolver) IsPrimary(monitor domain.MonitorHandle) domain.Resolved[bool] {
	if monitor == 0 {
		return domain.Default(false)
	}
	primary, err := r.monitors.IsPrimary(monitor)
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			r.logger.Warn("Failed to read monitor info",
				zap.String("op", "GetMonitorInfoW"),
				zap.Error(err))
		}
		return domain.Default(false)
	}
	return domain.Found(primary)
}
