//go:build !windows
// +build !windows

package dxgi

import (
	"fmt"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/loader"
)

// NewFactoryFunc returns a FactoryFunc that always fails off Windows
func NewFactoryFunc(_ *loader.Provider) FactoryFunc {
	return func() (domain.GraphicsFactory, error) {
		return nil, fmt.Errorf("dxgi.dll!CreateDXGIFactory1: %w", domain.ErrUnsupported)
	}
}
