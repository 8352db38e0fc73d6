// Package report renders a probe report as console text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format other than text, json or yaml
var ErrUnknownFormat = fmt.Errorf("unknown report format (want %s, %s or %s)", FormatText, FormatJSON, FormatYAML)

// NewRenderer returns the renderer selected by the configuration
func NewRenderer(logger *zap.Logger, cfg domain.Config) (domain.Renderer, error) {
	switch cfg.GetFormat() {
	case FormatText, "":
		return NewTextRenderer(cfg.NoColor()), nil
	case FormatJSON:
		return JSONRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		logger.Error("Unsupported report format", zap.String("format", cfg.GetFormat()))
		return nil, fmt.Errorf("%q: %w", cfg.GetFormat(), ErrUnknownFormat)
	}
}

// JSONRenderer writes the report as indented JSON
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// YAMLRenderer writes the report as a YAML document
type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, report *domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
