package color

import (
	"fmt"

	"github.com/kpfaulkner/colorimetry/util"
)

// CIEPrimaries describes a gamut: three primaries and a white point, all as
// CIE 1931 chromaticities.
type CIEPrimaries struct {
	Red   CIEXY
	Green CIEXY
	Blue  CIEXY
	White CIEXY
}

func NewCIEPrimaries(red CIEXY, green CIEXY, blue CIEXY, white CIEXY) CIEPrimaries {
	return CIEPrimaries{Red: red, Green: green, Blue: blue, White: white}
}

var (
	// ACESAP0Primaries covers the whole spectral locus (ACES2065-1).
	ACESAP0Primaries = CIEPrimaries{
		Red:   CIEXY{X: 0.73470, Y: 0.26530},
		Green: CIEXY{X: 0.00000, Y: 1.00000},
		Blue:  CIEXY{X: 0.00010, Y: -0.07700},
		White: WhiteD60,
	}

	// ACESAP1Primaries is the working gamut of ACEScg / ACEScc.
	ACESAP1Primaries = CIEPrimaries{
		Red:   CIEXY{X: 0.713, Y: 0.293},
		Green: CIEXY{X: 0.165, Y: 0.830},
		Blue:  CIEXY{X: 0.128, Y: 0.044},
		White: WhiteD60,
	}

	// Rec2020Primaries as published with this library. The white is kept
	// exactly as given, (0.3217, 0.3290).
	Rec2020Primaries = CIEPrimaries{
		Red:   CIEXY{X: 0.708, Y: 0.292},
		Green: CIEXY{X: 0.170, Y: 0.797},
		Blue:  CIEXY{X: 0.131, Y: 0.046},
		White: CIEXY{X: 0.3217, Y: 0.3290},
	}

	SRGBPrimaries = CIEPrimaries{
		Red:   CIEXY{X: 0.64, Y: 0.33},
		Green: CIEXY{X: 0.30, Y: 0.60},
		Blue:  CIEXY{X: 0.15, Y: 0.06},
		White: WhiteD65,
	}
)

// Matches determines if all four points are equal.
func (cp *CIEPrimaries) Matches(other *CIEPrimaries) bool {
	if cp == nil || other == nil {
		return cp == other
	}
	return cp.Red.Matches(&other.Red) &&
		cp.Green.Matches(&other.Green) &&
		cp.Blue.Matches(&other.Blue) &&
		cp.White.Matches(&other.White)
}

// RGBToXYZ derives the linear RGB to XYZ matrix for the gamut, relative to
// its own white. Columns are the primaries' XYZ scaled so that RGB (1,1,1)
// lands on the white at Y = 1. Derived in float64.
func (cp *CIEPrimaries) RGBToXYZ() (util.Matrix3[float32], error) {
	if err := cp.White.Validate(); err != nil {
		return util.Matrix3[float32]{}, err
	}

	r := xyzColumn(cp.Red)
	g := xyzColumn(cp.Green)
	b := xyzColumn(cp.Blue)
	primaries := util.NewMatrix3(
		r.X, g.X, b.X,
		r.Y, g.Y, b.Y,
		r.Z, g.Z, b.Z)

	inverse, err := primaries.Inverse()
	if err != nil {
		return util.Matrix3[float32]{}, fmt.Errorf("primaries are collinear: %w", err)
	}
	scale := inverse.MulVector(xyzColumn(cp.White))
	diag := util.Diagonal3(scale)
	return util.ToFloat32(primaries.Mul(&diag)), nil
}

// XYZToRGB is the inverse of RGBToXYZ.
func (cp *CIEPrimaries) XYZToRGB() (util.Matrix3[float32], error) {
	m, err := cp.RGBToXYZ()
	if err != nil {
		return util.Matrix3[float32]{}, err
	}
	wide := util.ToFloat64(m)
	inv, err := wide.Inverse()
	if err != nil {
		return util.Matrix3[float32]{}, err
	}
	return util.ToFloat32(inv), nil
}

// xyzColumn is the unit luminance XYZ of a chromaticity in float64.
func xyzColumn(xy CIEXY) util.Vector3[float64] {
	x := float64(xy.X)
	y := float64(xy.Y)
	if y == 0 {
		y = float64(Epsilon)
	}
	return util.NewVector3(x/y, 1.0, (1.0-x-float64(xy.Y))/y)
}
