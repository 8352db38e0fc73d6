//go:build !windows
// +build !windows

package dpi

import (
	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
)

// Native reports every DPI source unavailable off Windows
type Native struct{}

// NewNative creates the native DPI sources
func NewNative(_ *loader.Provider) *Native {
	return &Native{}
}

func (n *Native) EffectiveDPI(domain.MonitorHandle) (uint32, error) {
	return 0, loader.Unsupported(loader.FeatureMonitorDPI)
}

func (n *Native) IsPrimary(domain.MonitorHandle) (bool, error) {
	return false, loader.Unsupported(loader.FeatureMonitorInfo)
}

func (n *Native) DeclarePerMonitorV2() error {
	return loader.Unsupported(loader.FeatureDPIAwareness)
}
