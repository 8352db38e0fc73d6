package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/genricoloni/gpuprobe/internal/domain"
)

const (
	adapterRule = "##############################"
	outputRule  = "-------------------------------"
)

// TextRenderer writes the report in the console layout
type TextRenderer struct {
	rule    *color.Color
	adapter *color.Color
	output  *color.Color
	divider *color.Color
}

// NewTextRenderer creates a text renderer. Without noColor, colours follow
// the terminal detection of the color package.
func NewTextRenderer(noColor bool) *TextRenderer {
	r := &TextRenderer{
		rule:    color.New(color.FgBlue),
		adapter: color.New(color.FgGreen),
		output:  color.New(color.FgYellow),
		divider: color.New(color.FgRed),
	}
	if noColor {
		for _, c := range []*color.Color{r.rule, r.adapter, r.output, r.divider} {
			c.DisableColor()
		}
	}
	return r
}

// textWriter keeps the first write error so rendering code stays linear
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *textWriter) colored(c *color.Color, text string) {
	if t.err != nil {
		return
	}
	_, t.err = c.Fprintln(t.w, text)
}

func (r *TextRenderer) Render(w io.Writer, report *domain.Report) error {
	t := &textWriter{w: w}

	t.line("Operating system: Windows %d.%d.%d", report.OS.Major, report.OS.Minor, report.OS.Build)
	if d := report.Desktop; d != nil {
		t.line("Active displays: %d (primary %dx%d)", d.ActiveDisplays, d.Primary.Width(), d.Primary.Height())
	}

	for _, a := range report.Adapters {
		r.renderAdapter(t, a)
	}
	t.colored(r.rule, adapterRule)
	return t.err
}

// renderAdapter numbers adapters and outputs by their OS enumeration index,
// so skipped items leave gaps
func (r *TextRenderer) renderAdapter(t *textWriter, a domain.AdapterReport) {
	d := a.Adapter

	t.colored(r.rule, adapterRule)
	t.colored(r.adapter, fmt.Sprintf("GPU #%d:", d.Index+1))
	t.line("Device name: %s", d.Description)
	if a.Vendor != domain.VendorUnknown {
		t.line("Vendor ID: 0x%x (%s)", d.VendorID, a.Vendor)
	} else {
		t.line("Vendor ID: 0x%x", d.VendorID)
	}
	t.line("Device ID: 0x%x", d.DeviceID)
	t.line("Subsystem ID: 0x%x", d.SubSysID)
	t.line("Revision: 0x%x", d.Revision)
	t.line("Adapter LUID: %08x-%08x", uint32(d.LUID.HighPart), d.LUID.LowPart)
	t.line("Dedicated video memory: %s", humanize.IBytes(d.DedicatedVideoMemory))
	t.line("Dedicated system memory: %s", humanize.IBytes(d.DedicatedSystemMemory))
	t.line("Shared system memory: %s", humanize.IBytes(d.SharedSystemMemory))
	t.line("Variable refresh rate supported: %s", yesNo(a.VariableRefresh))
	t.line("Software simulation (rendered by CPU): %s", yesNo(d.Software))
	if d.Integrated.OK {
		t.line("Integrated device: %s", yesNo(d.Integrated.Value))
	}
	if a.Driver.OK {
		t.line("Driver: %s (%s)", a.Driver.Value.Version, a.Driver.Value.Date)
	}

	for _, o := range a.Outputs {
		r.renderOutput(t, o)
	}
}

func (r *TextRenderer) renderOutput(t *textWriter, o domain.OutputReport) {
	d := o.Output
	rect := d.DesktopRect

	t.colored(r.divider, outputRule)
	t.colored(r.output, fmt.Sprintf("Output #%d:", d.Index+1))
	t.line("Device name: %s", d.DeviceName)
	if o.FriendlyName.OK {
		t.line("Display name: %s", o.FriendlyName.Value)
	}
	if o.Primary.OK {
		t.line("Primary display: %s", yesNo(o.Primary.Value))
	}
	t.line("Desktop geometry: x: %d, y: %d, width: %d, height: %d", rect.Left, rect.Top, rect.Width(), rect.Height())
	t.line("Attached to desktop: %s", yesNo(d.AttachedToDesktop))
	t.line("Rotation: %s degree", d.Rotation)
	t.line("Maximum refresh rate: %s Hz", formatFloat(d.MaxRefreshRate))

	if ext := d.Extended; ext != nil {
		t.line("Bits per color: %d", ext.BitsPerColor)
		t.line("Color space: %s", ext.ColorSpace)
		t.line("Red primary: %s", formatPair(ext.RedPrimary))
		t.line("Green primary: %s", formatPair(ext.GreenPrimary))
		t.line("Blue primary: %s", formatPair(ext.BluePrimary))
		t.line("White point: %s", formatPair(ext.WhitePoint))
		t.line("Minimum luminance: %s nit", formatFloat(ext.MinLuminance))
		t.line("Maximum luminance: %s nit", formatFloat(ext.MaxLuminance))
		t.line("Maximum average full frame luminance: %s nit", formatFloat(ext.MaxFullFrameLuminance))
	}

	if o.SDRWhiteLevel.OK {
		t.line("SDR white level: %s nit", formatFloat(o.SDRWhiteLevel.Value))
	}
	if o.RefreshRate.OK {
		t.line("Current refresh rate: %s Hz", formatFloat(o.RefreshRate.Value))
	}
	if o.DPI.OK {
		t.line("Dots-per-inch: %d (%d%%)", o.DPI.Value, o.Scale)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatPair(p [2]float32) string {
	return formatFloat(p[0]) + ", " + formatFloat(p[1])
}
