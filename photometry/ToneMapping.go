package photometry

import (
	"errors"
)

// DefaultContrastRatio is the simulated display contrast, white:black.
const DefaultContrastRatio = 100000.0

var (
	ErrInvalidWhitePoint    = errors.New("white point must be positive")
	ErrInvalidContrastRatio = errors.New("contrast ratio must be at least 1")
)

// DisplayMapping compresses irradiance into a [0,1] display level.
// Irradiance at or above WhitePoint is full white, at or below
// WhitePoint/ContrastRatio is black, and in between is a straight line.
// The ramp is deliberately linear, not logarithmic.
type DisplayMapping struct {
	WhitePoint    float64
	ContrastRatio float64
}

func NewDisplayMapping(whitePoint float64) *DisplayMapping {
	dm := &DisplayMapping{}
	dm.WhitePoint = whitePoint
	dm.ContrastRatio = DefaultContrastRatio
	return dm
}

func NewDisplayMappingWithContrast(whitePoint float64, contrastRatio float64) (*DisplayMapping, error) {
	dm := &DisplayMapping{
		WhitePoint:    whitePoint,
		ContrastRatio: contrastRatio,
	}
	if err := dm.Validate(); err != nil {
		return nil, err
	}
	return dm, nil
}

func (dm *DisplayMapping) Validate() error {
	if dm.WhitePoint <= 0 {
		return ErrInvalidWhitePoint
	}
	if dm.ContrastRatio < 1 {
		return ErrInvalidContrastRatio
	}
	return nil
}

func (dm *DisplayMapping) BlackPoint() float64 {
	return dm.WhitePoint / dm.ContrastRatio
}

// Level maps irradiance to a display level in [0,1].
func (dm *DisplayMapping) Level(irradiance float64) float64 {
	if irradiance >= dm.WhitePoint {
		return 1.0
	}
	blackPoint := dm.BlackPoint()
	if irradiance <= blackPoint {
		return 0.0
	}
	return (irradiance - blackPoint) / (dm.WhitePoint - blackPoint)
}

// ColorLevel maps irradiance to a display level assuming a 100000:1
// contrast ratio.
func ColorLevel(irradiance float64, whitePoint float64) float64 {
	return NewDisplayMapping(whitePoint).Level(irradiance)
}
