// Package desktop summarizes the desktop as GDI sees it, as a cross-check
// of the outputs reported by the graphics stack.
package desktop

import (
	"image"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// Screens reports the active displays and their bounds
type Screens interface {
	NumActiveDisplays() int
	DisplayBounds(index int) image.Rectangle
}

type gdiScreens struct{}

func (gdiScreens) NumActiveDisplays() int {
	return screenshot.NumActiveDisplays()
}

func (gdiScreens) DisplayBounds(index int) image.Rectangle {
	return screenshot.GetDisplayBounds(index)
}

// NewScreens returns the host's screens
func NewScreens() Screens {
	return gdiScreens{}
}

// Summarize counts the active displays and reads the bounds of the primary
// one. It returns nil when no display is active.
func Summarize(logger *zap.Logger, screens Screens) *domain.DesktopSummary {
	n := screens.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected")
		return nil
	}

	bounds := primaryBounds(logger, screens, n)
	summary := &domain.DesktopSummary{
		ActiveDisplays: n,
		Primary: domain.Rect{
			Left:   int32(bounds.Min.X),
			Top:    int32(bounds.Min.Y),
			Right:  int32(bounds.Max.X),
			Bottom: int32(bounds.Max.Y),
		},
	}

	logger.Debug("Desktop detected",
		zap.Int("displays", n),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))

	return summary
}

// primaryBounds returns the bounds of the display anchored at the virtual
// screen origin, where Windows always places the primary display. Displays
// are not listed primary first.
func primaryBounds(logger *zap.Logger, screens Screens, n int) image.Rectangle {
	for i := range n {
		if b := screens.DisplayBounds(i); b.Min == (image.Point{}) {
			return b
		}
	}
	logger.Warn("No display at the desktop origin, using the first one",
		zap.Int("displays", n))
	return screens.DisplayBounds(0)
}
