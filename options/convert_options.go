package options

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpfaulkner/colorimetry/photometry"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const DefaultLuminance = 1.0

// DefaultWhitePoint is the irradiance of a magnitude 0 star.
var DefaultWhitePoint = photometry.StarMagnitude(0).Irradiance()

var ErrUnknownConfigFormat = errors.New("unknown config format")

// ConvertOptions controls the CLI conversions. Zero fields take defaults.
type ConvertOptions struct {
	Debug bool `toml:"debug" yaml:"debug"`

	// WhitePoint is the irradiance (W/m^2) shown as full white.
	WhitePoint    float64 `toml:"white_point" yaml:"white_point"`
	ContrastRatio float64 `toml:"contrast_ratio" yaml:"contrast_ratio"`

	// Luminance given to colours built from chromaticity alone.
	Luminance float32 `toml:"luminance" yaml:"luminance"`
}

func NewConvertOptions(options *ConvertOptions) *ConvertOptions {

	opt := &ConvertOptions{
		WhitePoint:    DefaultWhitePoint,
		ContrastRatio: photometry.DefaultContrastRatio,
		Luminance:     DefaultLuminance,
	}
	if options != nil {
		opt.Debug = options.Debug
		if options.WhitePoint != 0 {
			opt.WhitePoint = options.WhitePoint
		}
		if options.ContrastRatio != 0 {
			opt.ContrastRatio = options.ContrastRatio
		}
		if options.Luminance != 0 {
			opt.Luminance = options.Luminance
		}
	}
	return opt
}

// DisplayMapping builds the irradiance mapping described by the options.
func (o *ConvertOptions) DisplayMapping() (*photometry.DisplayMapping, error) {
	return photometry.NewDisplayMappingWithContrast(o.WhitePoint, o.ContrastRatio)
}

// Load reads options from a TOML (.toml) or YAML (.yaml, .yml) file.
func Load(path string) (*ConvertOptions, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options: %w", err)
	}

	return Parse(filepath.Ext(path), data)
}

// Parse decodes options in the format named by ext.
func Parse(ext string, data []byte) (*ConvertOptions, error) {

	var raw ConvertOptions
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding toml options: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding yaml options: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}

	opt := NewConvertOptions(&raw)
	log.Debugf("options: white point %g contrast %g luminance %g", opt.WhitePoint, opt.ContrastRatio, opt.Luminance)
	return opt, nil
}
