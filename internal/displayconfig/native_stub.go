//go:build !windows
// +build !windows

package displayconfig

import (
	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
)

// Config reports the display configuration unavailable off Windows
type Config struct{}

// NewConfig creates a display configuration source
func NewConfig(_ *loader.Provider) *Config {
	return &Config{}
}

func (c *Config) BufferSizes() (uint32, uint32, error) {
	return 0, 0, loader.Unsupported(loader.FeatureDisplayConfig)
}

func (c *Config) QueryActivePaths(_, _ uint32) ([]domain.DisplayPath, error) {
	return nil, loader.Unsupported(loader.FeatureDisplayConfig)
}

func (c *Config) SourceDeviceName(domain.DisplayPath) (string, error) {
	return "", loader.Unsupported(loader.FeatureDisplayConfig)
}

func (c *Config) TargetFriendlyName(domain.DisplayPath) (string, error) {
	return "", loader.Unsupported(loader.FeatureDisplayConfig)
}

func (c *Config) SDRWhiteLevel(domain.DisplayPath) (uint32, error) {
	return 0, loader.Unsupported(loader.FeatureDisplayConfig)
}

// Settings reports display settings unavailable off Windows
type Settings struct{}

// NewSettings creates a display settings source
func NewSettings(_ *loader.Provider) *Settings {
	return &Settings{}
}

func (s *Settings) CurrentFrequency(string) (uint32, error) {
	return 0, loader.Unsupported(loader.FeatureDisplaySettings)
}

// DeviceContexts reports device contexts unavailable off Windows
type DeviceContexts struct{}

// NewDeviceContexts creates a device context source
func NewDeviceContexts(_ *loader.Provider) *DeviceContexts {
	return &DeviceContexts{}
}

func (d *DeviceContexts) Create(string) (domain.DeviceContextHandle, error) {
	return 0, loader.Unsupported(loader.FeatureDeviceContext)
}

func (d *DeviceContexts) VerticalRefresh(domain.DeviceContextHandle) int32 {
	return 0
}

func (d *DeviceContexts) Delete(domain.DeviceContextHandle) error {
	return nil
}
