//go:build windows
// +build windows

package driver

import (
	"errors"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"golang.org/x/sys/windows/registry"
)

// Registry opens HKEY_LOCAL_MACHINE keys read-only
type Registry struct{}

// NewRegistry creates a registry source
func NewRegistry() *Registry {
	return &Registry{}
}

func (Registry) OpenLocalMachineKey(path string) (domain.RegistryKey, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	return registryKey{k: k}, nil
}

type registryKey struct {
	k registry.Key
}

func (r registryKey) StringValue(name string) (string, error) {
	value, _, err := r.k.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) {
		return "", domain.ErrNotFound
	}
	return value, err
}

func (r registryKey) Close() error {
	return r.k.Close()
}
