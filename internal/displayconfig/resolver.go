// Package displayconfig joins a graphics output with the OS display
// configuration paths that drive it and resolves the attributes only the
// display configuration knows: SDR white level, monitor friendly name and
// the current refresh rate.
package displayconfig

import (
	"errors"
	"fmt"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"go.uber.org/zap"
)

// maxQueryAttempts bounds the size-then-fetch loop of ActivePaths
const maxQueryAttempts = 8

// ErrTopologyUnstable is returned when the active paths kept changing
// between the size query and the fetch
var ErrTopologyUnstable = errors.New("display topology changed on every attempt")

// Resolver resolves per-output attributes from the display configuration
// and its legacy fallbacks
type Resolver struct {
	logger   *zap.Logger
	config   domain.DisplayConfig
	settings domain.DisplaySettings
	contexts domain.DeviceContexts
}

// NewResolver creates a new resolver
func NewResolver(logger *zap.Logger, config domain.DisplayConfig, settings domain.DisplaySettings, contexts domain.DeviceContexts) *Resolver {
	return &Resolver{
		logger:   logger,
		config:   config,
		settings: settings,
		contexts: contexts,
	}
}

// ActivePaths fetches every active display configuration path. The size
// query is repeated when the topology grows between the two calls, at most
// maxQueryAttempts times.
func (r *Resolver) ActivePaths() ([]domain.DisplayPath, error) {
	for attempt := 1; attempt <= maxQueryAttempts; attempt++ {
		pathCount, modeCount, err := r.config.BufferSizes()
		if err != nil {
			return nil, fmt.Errorf("failed to size display configuration: %w", err)
		}

		paths, err := r.config.QueryActivePaths(pathCount, modeCount)
		if errors.Is(err, domain.ErrInsufficientBuffer) {
			r.logger.Debug("Display topology changed, retrying",
				zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query display configuration: %w", err)
		}
		return paths, nil
	}
	return nil, ErrTopologyUnstable
}

// MatchPaths keeps the paths whose source GDI device name equals deviceName.
// A path whose name cannot be read is dropped.
func (r *Resolver) MatchPaths(paths []domain.DisplayPath, deviceName string) []domain.DisplayPath {
	if deviceName == "" {
		return nil
	}

	var matched []domain.DisplayPath
	for _, path := range paths {
		name, err := r.config.SourceDeviceName(path)
		if err != nil {
			r.logger.Warn("Failed to read source device name",
				zap.String("op", "DisplayConfigGetDeviceInfo"),
				zap.Uint32("source", path.SourceID),
				zap.Error(err))
			continue
		}
		if name == deviceName {
			matched = append(matched, path)
		}
	}
	return matched
}

// Paths returns the active paths driven by the named GDI device. Any failure
// to read the configuration yields no paths.
func (r *Resolver) Paths(deviceName string) []domain.DisplayPath {
	if deviceName == "" {
		return nil
	}
	paths, err := r.ActivePaths()
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			r.logger.Warn("Failed to read active display paths",
				zap.String("op", "QueryDisplayConfig"),
				zap.Error(err))
		}
		return nil
	}
	return r.MatchPaths(paths, deviceName)
}

// SDRWhiteLevelNits converts a raw SDR white level to nits. The raw value
// is in thousandths of the 80 nit reference level.
func SDRWhiteLevelNits(raw uint32) float32 {
	return float32(raw) / 1000 * 80
}

// SDRWhiteLevel returns the SDR white level of the first path that answers
func (r *Resolver) SDRWhiteLevel(paths []domain.DisplayPath) domain.Resolved[float32] {
	for _, path := range paths {
		raw, err := r.config.SDRWhiteLevel(path)
		if err != nil {
			r.logger.Warn("Failed to read SDR white level",
				zap.String("op", "DisplayConfigGetDeviceInfo"),
				zap.Uint32("target", path.TargetID),
				zap.Error(err))
			continue
		}
		return domain.Found(SDRWhiteLevelNits(raw))
	}
	return domain.Default(domain.DefaultSDRWhiteLevel)
}

// FriendlyName returns the monitor name of the first path that answers
func (r *Resolver) FriendlyName(paths []domain.DisplayPath) domain.Resolved[string] {
	for _, path := range paths {
		name, err := r.config.TargetFriendlyName(path)
		if err != nil {
			r.logger.Warn("Failed to read monitor friendly name",
				zap.String("op", "DisplayConfigGetDeviceInfo"),
				zap.Uint32("target", path.TargetID),
				zap.Error(err))
			continue
		}
		return domain.Found(name)
	}
	return domain.Default("")
}

// RefreshRate resolves the current refresh rate from, in order: the target
// rate of the matched paths, the current display settings of the device
// and the vertical refresh capability of a device context. Values of 0 and
// 1 from the legacy sources mean "hardware default" and are not answers.
func (r *Resolver) RefreshRate(deviceName string, paths []domain.DisplayPath) domain.Resolved[float32] {
	for _, path := range paths {
		rate := path.TargetRefresh
		if rate.Numerator > 0 && rate.Denominator > 0 {
			return domain.Found(float32(rate.Numerator) / float32(rate.Denominator))
		}
	}

	if deviceName == "" {
		return domain.Default(domain.DefaultRefreshRate)
	}

	if hz, ok := r.settingsRefresh(deviceName); ok {
		return domain.Found(hz)
	}
	if hz, ok := r.deviceContextRefresh(deviceName); ok {
		return domain.Found(hz)
	}
	return domain.Default(domain.DefaultRefreshRate)
}

func (r *Resolver) settingsRefresh(deviceName string) (float32, bool) {
	freq, err := r.settings.CurrentFrequency(deviceName)
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			r.logger.Warn("Failed to read current display settings",
				zap.String("op", "EnumDisplaySettingsW"),
				zap.String("device", deviceName),
				zap.Error(err))
		}
		return 0, false
	}
	if freq <= 1 {
		return 0, false
	}
	return float32(freq), true
}

func (r *Resolver) deviceContextRefresh(deviceName string) (float32, bool) {
	dc, err := r.contexts.Create(deviceName)
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) {
			r.logger.Warn("Failed to create device context",
				zap.String("op", "CreateDCW"),
				zap.String("device", deviceName),
				zap.Error(err))
		}
		return 0, false
	}
	defer func() {
		if err := r.contexts.Delete(dc); err != nil {
			r.logger.Warn("Failed to delete device context",
				zap.String("op", "DeleteDC"),
				zap.Error(err))
		}
	}()

	refresh := r.contexts.VerticalRefresh(dc)
	if refresh <= 1 {
		return 0, false
	}
	return float32(refresh), true
}
