//go:build !windows
// +build !windows

package driver

import (
	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
)

// DeviceTree reports the device tree unavailable off Windows
type DeviceTree struct{}

// NewDeviceTree creates a device tree source
func NewDeviceTree(_ *loader.Provider) *DeviceTree {
	return &DeviceTree{}
}

func (t *DeviceTree) PresentDisplayDevices() (domain.DeviceList, error) {
	return nil, loader.Unsupported(loader.FeatureDeviceSetup)
}

// Registry reports the registry unavailable off Windows
type Registry struct{}

// NewRegistry creates a registry source
func NewRegistry() *Registry {
	return &Registry{}
}

func (Registry) OpenLocalMachineKey(string) (domain.RegistryKey, error) {
	return nil, domain.ErrUnsupported
}
