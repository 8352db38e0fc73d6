//go:build !windows
// +build !windows

package loader

import (
	"fmt"

	"github.com/genricoloni/gpuprobe/internal/domain"
)

// systemOpener is a placeholder for platforms without the Windows graphics stack
type systemOpener struct{}

func (systemOpener) Open(name string) (Module, error) {
	return nil, fmt.Errorf("%s is only available on Windows: %w", name, domain.ErrUnsupported)
}

// HostVersion returns the zero version on non-Windows platforms, which gates
// out every symbol
func HostVersion() domain.OSVersion {
	return domain.OSVersion{}
}
