package color

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinColorTemp ColorTemp = 1667
	MaxColorTemp ColorTemp = 25000
)

var ErrColorTempOutOfRange = errors.New("color temperature outside Planckian locus approximation range")

// ColorTemp is a blackbody colour temperature in Kelvin.
type ColorTemp uint16

func NewColorTemp(k uint16) ColorTemp {
	return ColorTemp(k)
}

// ToCIEXY returns the chromaticity of the blackbody on the Planckian locus,
// using the cubic spline approximation of Kim et al. Only valid between
// 1667K and 25000K; anything else is an error, never an extrapolation.
func (ct ColorTemp) ToCIEXY() (CIEXY, error) {
	if ct < MinColorTemp || ct > MaxColorTemp {
		return CIEXY{}, fmt.Errorf("%w: %dK", ErrColorTempOutOfRange, ct)
	}

	t := float64(ct)

	var x float64
	if t < 4000.0 {
		x = -0.2661239*math.Pow(10, 9)/math.Pow(t, 3) -
			0.2343580*math.Pow(10, 6)/math.Pow(t, 2) +
			0.8776956*math.Pow(10, 3)/t +
			0.179910
	} else {
		x = -3.0258469*math.Pow(10, 9)/math.Pow(t, 3) +
			2.1070379*math.Pow(10, 6)/math.Pow(t, 2) +
			0.2226347*math.Pow(10, 3)/t +
			0.240390
	}

	var y float64
	switch {
	case t < 2222.0:
		y = -1.1063814*math.Pow(x, 3) -
			1.34811020*math.Pow(x, 2) +
			2.18444832*x -
			0.20219683
	case t < 4000.0:
		y = -0.9549476*math.Pow(x, 3) -
			1.37418593*math.Pow(x, 2) +
			2.09137015*x -
			0.16748867
	default:
		y = 3.0817580*math.Pow(x, 3) -
			5.87338670*math.Pow(x, 2) +
			3.75112997*x -
			0.37001483
	}

	return CIEXY{X: float32(x), Y: float32(y)}, nil
}

// ToXYZ is the blackbody at the given luminance. The result is tagged D65
// so it can go straight to sRGB; no adaptation is applied since the
// blackbody chromaticity is absolute.
func (ct ColorTemp) ToXYZ(luminance float32) (XYZ[D65], error) {
	xy, err := ct.ToCIEXY()
	if err != nil {
		return XYZ[D65]{}, err
	}
	return XYZFromChromaticity[D65](xy, luminance), nil
}

func (ct ColorTemp) String() string {
	return fmt.Sprintf("%dK", uint16(ct))
}
