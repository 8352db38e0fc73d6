// Package driver finds the device tree entry of a graphics adapter and
// reports its driver version and date in the form the vendor publishes.
package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"go.uber.org/zap"
)

// classKeyPrefix is the HKLM path of the device class keys
const classKeyPrefix = `SYSTEM\CurrentControlSet\Control\Class\`

// Raw is the driver data read from the device tree before normalization
type Raw struct {
	KeyName  string
	Provider string
	Version  string
	Date     domain.FileTime
}

// rewriter normalizes the version of one vendor's drivers. Provider names
// are free text, so match is a case-sensitive substring.
type rewriter struct {
	match   string
	rewrite func(r *Resolver, raw Raw, version string) string
}

// Resolver resolves adapter driver information
type Resolver struct {
	logger    *zap.Logger
	tree      domain.DeviceTree
	registry  domain.Registry
	rewriters []rewriter
}

// NewResolver creates a new resolver
func NewResolver(logger *zap.Logger, tree domain.DeviceTree, registry domain.Registry) *Resolver {
	return &Resolver{
		logger:   logger,
		tree:     tree,
		registry: registry,
		rewriters: []rewriter{
			{match: "NVIDIA", rewrite: rewriteNvidia},
			{match: "Advanced Micro Devices", rewrite: (*Resolver).rewriteAMD},
			{match: "Intel", rewrite: rewriteIntel},
		},
	}
}

// Resolve finds the first present display device whose driver description
// contains description and normalizes its driver version and date
func (r *Resolver) Resolve(description string) domain.Resolved[domain.DriverInfo] {
	if description == "" {
		return domain.Default(domain.DriverInfo{})
	}

	raw, err := r.Lookup(description)
	if err != nil {
		if !errors.Is(err, domain.ErrUnsupported) && !errors.Is(err, domain.ErrNotFound) {
			r.logger.Warn("Failed to read driver information",
				zap.String("adapter", description),
				zap.Error(err))
		}
		return domain.Default(domain.DriverInfo{})
	}

	return domain.Found(domain.DriverInfo{
		Version: r.Normalize(raw),
		Date:    FormatDate(raw.Date),
	})
}

// Lookup scans the present display devices for description and reads the
// driver properties of the first match. It returns domain.ErrNotFound when no
// device matches.
func (r *Resolver) Lookup(description string) (raw Raw, err error) {
	list, err := r.tree.PresentDisplayDevices()
	if err != nil {
		return Raw{}, fmt.Errorf("failed to list display devices: %w", err)
	}
	defer func() {
		if closeErr := list.Close(); closeErr != nil {
			r.logger.Warn("Failed to destroy device information list",
				zap.String("op", "SetupDiDestroyDeviceInfoList"),
				zap.Error(closeErr))
		}
	}()

	device, err := r.find(list, description)
	if err != nil {
		return Raw{}, err
	}

	keyName, err := device.StringProperty(domain.PropertyDriverKey)
	if err != nil {
		return Raw{}, fmt.Errorf("failed to read driver key name: %w", err)
	}
	raw.KeyName = TruncateAtNUL(keyName)

	provider, err := device.StringProperty(domain.PropertyDriverProvider)
	if err != nil {
		return Raw{}, fmt.Errorf("failed to read driver provider: %w", err)
	}
	raw.Provider = TruncateAtNUL(provider)

	version, err := device.StringProperty(domain.PropertyDriverVersion)
	if err != nil {
		return Raw{}, fmt.Errorf("failed to read driver version: %w", err)
	}
	raw.Version = TruncateAtNUL(version)

	raw.Date, err = device.FileTimeProperty(domain.PropertyDriverDate)
	if err != nil {
		return Raw{}, fmt.Errorf("failed to read driver date: %w", err)
	}
	return raw, nil
}

func (r *Resolver) find(list domain.DeviceList, description string) (domain.Device, error) {
	for index := uint32(0); ; index++ {
		device, err := list.Device(index)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no display device matches %q: %w", description, domain.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate display devices: %w", err)
		}

		desc, err := device.StringProperty(domain.PropertyDriverDesc)
		if err != nil {
			continue
		}
		if strings.Contains(TruncateAtNUL(desc), description) {
			return device, nil
		}
	}
}

// Normalize applies every vendor rewrite whose provider pattern matches, in
// table order
func (r *Resolver) Normalize(raw Raw) string {
	version := raw.Version
	for _, rw := range r.rewriters {
		if strings.Contains(raw.Provider, rw.match) {
			version = rw.rewrite(r, raw, version)
		}
	}
	return version
}

// TruncateAtNUL cuts s at its first NUL character
func TruncateAtNUL(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// rewriteNvidia turns the internal version into the public one by keeping
// the last six characters without dots: 9.18.13.4788 becomes 347.88.
func rewriteNvidia(_ *Resolver, _ Raw, version string) string {
	if len(version) < 6 {
		return version
	}
	digits := strings.ReplaceAll(version[len(version)-6:], ".", "")
	if len(digits) < 3 {
		return version
	}
	return digits[:3] + "." + digits[3:]
}

// rewriteIntel drops the OS and DirectX parts: 27.20.100.8935 becomes
// 100.8935.
func rewriteIntel(_ *Resolver, _ Raw, version string) string {
	first := strings.IndexByte(version, '.')
	if first < 0 {
		return version
	}
	second := strings.IndexByte(version[first+1:], '.')
	if second < 0 {
		return version
	}
	return version[first+1+second+1:]
}

// rewriteAMD reads the marketing version from the driver's class key.
// Registry failures leave version unchanged.
func (r *Resolver) rewriteAMD(raw Raw, version string) string {
	if raw.KeyName == "" {
		return version
	}

	path := classKeyPrefix + raw.KeyName
	key, err := r.registry.OpenLocalMachineKey(path)
	if err != nil {
		r.logger.Warn("Failed to open registry key",
			zap.String("key", `HKEY_LOCAL_MACHINE\`+path),
			zap.Error(err))
		return version
	}
	defer func() {
		if err := key.Close(); err != nil {
			r.logger.Debug("Failed to close registry key", zap.Error(err))
		}
	}()

	if catalyst := r.registryString(key, "Catalyst_Version"); catalyst != "" {
		version = "Catalyst " + catalyst
	}
	if edition := r.registryString(key, "RadeonSoftwareEdition"); edition != "" {
		if release := r.registryString(key, "RadeonSoftwareVersion"); release != "" {
			version = edition + " " + release
		}
	}
	return version
}

func (r *Resolver) registryString(key domain.RegistryKey, name string) string {
	value, err := key.StringValue(name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			r.logger.Warn("Failed to access the registry",
				zap.String("value", name),
				zap.Error(err))
		}
		return ""
	}
	return value
}

const (
	fileTimeTicksPerSecond = 10_000_000
	// fileTimeUnixOffset is the number of seconds between 1601-01-01 and
	// 1970-01-01
	fileTimeUnixOffset = 11_644_473_600
)

// Time converts a FILETIME to UTC
func Time(ft domain.FileTime) time.Time {
	ticks := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	secs := int64(ticks/fileTimeTicksPerSecond) - fileTimeUnixOffset
	nsec := int64(ticks%fileTimeTicksPerSecond) * 100
	return time.Unix(secs, nsec).UTC()
}

// FormatDate formats a FILETIME as YYYY-M-D without zero padding
func FormatDate(ft domain.FileTime) string {
	t := Time(ft)
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}
