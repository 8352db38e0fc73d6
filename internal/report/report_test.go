package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type fakeConfig struct {
	format  string
	noColor bool
}

func (f fakeConfig) GetFormat() string   { return f.format }
func (f fakeConfig) GetLogLevel() string { return "info" }
func (f fakeConfig) NoColor() bool       { return f.noColor }
func (f fakeConfig) Pause() bool         { return false }

func sampleReport() *domain.Report {
	return &domain.Report{
		OS:      domain.OSVersion{Major: 10, Minor: 0, Build: 22631},
		Desktop: &domain.DesktopSummary{ActiveDisplays: 1, Primary: domain.Rect{Right: 2560, Bottom: 1440}},
		Adapters: []domain.AdapterReport{{
			Adapter: domain.AdapterDescriptor{
				Description:          "NVIDIA GeForce RTX 4070",
				VendorID:             0x10DE,
				DeviceID:             0x2786,
				DedicatedVideoMemory: 12 << 30,
				SharedSystemMemory:   16 << 30,
				Integrated:           domain.Found(false),
			},
			Vendor:          domain.VendorNvidia,
			VariableRefresh: true,
			Driver:          domain.Found(domain.DriverInfo{Version: "536.23", Date: "2023-7-9"}),
			Outputs: []domain.OutputReport{{
				Output: domain.OutputDescriptor{
					DeviceName:        `\\.\DISPLAY1`,
					DesktopRect:       domain.Rect{Left: 0, Top: 0, Right: 2560, Bottom: 1440},
					Rotation:          domain.RotationIdentity,
					AttachedToDesktop: true,
					MaxRefreshRate:    165,
					Extended: &domain.ExtendedOutput{
						BitsPerColor: 10,
						ColorSpace:   domain.ColorSpaceRGBFullG2084NoneP2020,
						RedPrimary:   [2]float32{0.68, 0.32},
						MaxLuminance: 600,
					},
				},
				Primary:       domain.Found(true),
				FriendlyName:  domain.Found("LG ULTRAGEAR"),
				SDRWhiteLevel: domain.Found(float32(240)),
				RefreshRate:   domain.Found(float32(143.981)),
				DPI:           domain.Found[uint32](144),
				Scale:         150,
			}},
		}},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format string
		want   domain.Renderer
	}{
		{"", &TextRenderer{}},
		{FormatText, &TextRenderer{}},
		{FormatJSON, JSONRenderer{}},
		{FormatYAML, YAMLRenderer{}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := NewRenderer(zap.NewNop(), fakeConfig{format: tt.format})
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := NewRenderer(zap.NewNop(), fakeConfig{format: "xml"})
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestTextRenderer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(true).Render(&out, sampleReport()))
	text := out.String()

	for _, want := range []string{
		"Operating system: Windows 10.0.22631",
		"Active displays: 1 (primary 2560x1440)",
		adapterRule,
		"GPU #1:",
		"Device name: NVIDIA GeForce RTX 4070",
		"Vendor ID: 0x10de (Nvidia)",
		"Device ID: 0x2786",
		"Dedicated video memory: 12 GiB",
		"Shared system memory: 16 GiB",
		"Variable refresh rate supported: Yes",
		"Software simulation (rendered by CPU): No",
		"Integrated device: No",
		"Driver: 536.23 (2023-7-9)",
		outputRule,
		"Output #1:",
		`Device name: \\.\DISPLAY1`,
		"Display name: LG ULTRAGEAR",
		"Primary display: Yes",
		"Desktop geometry: x: 0, y: 0, width: 2560, height: 1440",
		"Rotation: 0 degree",
		"Maximum refresh rate: 165 Hz",
		"Bits per color: 10",
		"Color space: [HDR] RGB (0-255), gamma: 2084",
		"Red primary: 0.68, 0.32",
		"Maximum luminance: 600 nit",
		"SDR white level: 240 nit",
		"Current refresh rate: 143.981 Hz",
		"Dots-per-inch: 144 (150%)",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "\x1b[", "colour disabled")
}

func TestTextRenderer_UnresolvedFieldsOmitted(t *testing.T) {
	report := sampleReport()
	a := &report.Adapters[0]
	a.Vendor = domain.VendorUnknown
	a.Adapter.VendorID = 0x1234
	a.Adapter.Integrated = domain.Default(false)
	a.Driver = domain.Default(domain.DriverInfo{})
	o := &a.Outputs[0]
	o.Output.Extended = nil
	o.FriendlyName = domain.Default("")
	o.SDRWhiteLevel = domain.Default(domain.DefaultSDRWhiteLevel)
	o.DPI = domain.Default(domain.StandardDPI)
	report.Desktop = nil

	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(true).Render(&out, report))
	text := out.String()

	assert.Contains(t, text, "Vendor ID: 0x1234\n")
	for _, absent := range []string{
		"Active displays",
		"Integrated device",
		"Driver:",
		"Display name",
		"Bits per color",
		"SDR white level",
		"Dots-per-inch",
	} {
		assert.NotContains(t, text, absent)
	}
}

// withTerminal overrides the color package's terminal detection
func withTerminal(t *testing.T, tty bool) {
	saved := color.NoColor
	color.NoColor = !tty
	t.Cleanup(func() { color.NoColor = saved })
}

func TestTextRenderer_Colors(t *testing.T) {
	tests := []struct {
		name     string
		tty      bool
		noColor  bool
		wantANSI bool
	}{
		{"terminal", true, false, true},
		{"piped output", false, false, false},
		{"disabled on terminal", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withTerminal(t, tt.tty)

			var out bytes.Buffer
			require.NoError(t, NewTextRenderer(tt.noColor).Render(&out, sampleReport()))
			assert.Equal(t, tt.wantANSI, strings.Contains(out.String(), "\x1b["))
		})
	}
}

func TestTextRenderer_OutputDividerIsRed(t *testing.T) {
	withTerminal(t, true)

	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(false).Render(&out, sampleReport()))
	assert.Contains(t, out.String(), color.New(color.FgRed).Sprint(outputRule))
	assert.Contains(t, out.String(), color.New(color.FgYellow).Sprint("Output #1:"))
}

func TestTextRenderer_NumbersByEnumerationIndex(t *testing.T) {
	report := sampleReport()
	report.Adapters[0].Adapter.Index = 1
	report.Adapters[0].Outputs[0].Output.Index = 2

	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(true).Render(&out, report))
	assert.Contains(t, out.String(), "GPU #2:")
	assert.Contains(t, out.String(), "Output #3:")
	assert.NotContains(t, out.String(), "GPU #1:")
}

type failingWriter struct {
	n int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("broken pipe")
	}
	f.n--
	return len(p), nil
}

func TestTextRenderer_WriteError(t *testing.T) {
	w := &failingWriter{n: 3}
	err := NewTextRenderer(true).Render(w, sampleReport())
	assert.EqualError(t, err, "broken pipe")
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&out, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))

	adapters := decoded["adapters"].([]any)
	require.Len(t, adapters, 1)
	adapter := adapters[0].(map[string]any)
	assert.Equal(t, "Nvidia", adapter["vendor"])

	output := adapter["outputs"].([]any)[0].(map[string]any)
	assert.Equal(t, "0", output["output"].(map[string]any)["rotation"])
	assert.NotContains(t, output["output"], "Monitor")
	assert.Equal(t, map[string]any{"value": 240.0, "resolved": true}, output["sdrWhiteLevel"])
}

func TestYAMLRenderer(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, YAMLRenderer{}.Render(&out, sampleReport()))

	var decoded struct {
		OS       domain.OSVersion `yaml:"os"`
		Adapters []struct {
			Vendor string `yaml:"vendor"`
			Driver struct {
				Value    domain.DriverInfo `yaml:"value"`
				Resolved bool              `yaml:"resolved"`
			} `yaml:"driver"`
		} `yaml:"adapters"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))

	assert.Equal(t, uint32(22631), decoded.OS.Build)
	require.Len(t, decoded.Adapters, 1)
	assert.Equal(t, "Nvidia", decoded.Adapters[0].Vendor)
	assert.True(t, decoded.Adapters[0].Driver.Resolved)
	assert.Equal(t, "536.23", decoded.Adapters[0].Driver.Value.Version)
}
