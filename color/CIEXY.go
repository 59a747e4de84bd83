package color

import (
	"errors"
	"fmt"
)

// Epsilon replaces an exactly zero denominator when projecting between
// XYZ and xy, so black and degenerate chromaticities never divide by zero.
const Epsilon float32 = 1e-10

var ErrInvalidChromaticity = errors.New("invalid chromaticity")

// CIEXY is a CIE 1931 chromaticity coordinate (hue and saturation only).
type CIEXY struct {
	X float32
	Y float32
}

func NewCIEXY(x float32, y float32) CIEXY {
	return CIEXY{X: x, Y: y}
}

// Z is the implied third coordinate, 1 - x - y.
func (cxy CIEXY) Z() float32 {
	return 1.0 - cxy.X - cxy.Y
}

// Matches determines if values are equal.
func (cxy *CIEXY) Matches(other *CIEXY) bool {
	if cxy == nil || other == nil {
		return cxy == other
	}
	return cxy.X == other.X && cxy.Y == other.Y
}

// Validate checks the point can act as a white point: x in [0,1], y in (0,1].
// Primaries are not validated this way since ACES AP0 blue has a negative y.
func (cxy CIEXY) Validate() error {
	if cxy.X < 0 || cxy.X > 1 || cxy.Y <= 0 || cxy.Y > 1 {
		return fmt.Errorf("%w: (%v, %v)", ErrInvalidChromaticity, cxy.X, cxy.Y)
	}
	return nil
}

// ToXYZ returns the unit luminance tristimulus (x/y, 1, z/y) as a raw,
// untagged vector.
func (cxy CIEXY) ToXYZ() (float32, float32, float32) {
	y := cxy.Y
	if y == 0 {
		y = Epsilon
	}
	invY := 1.0 / y
	return cxy.X * invY, 1.0, cxy.Z() * invY
}

func (cxy CIEXY) String() string {
	return fmt.Sprintf("xy(%.6f, %.6f)", cxy.X, cxy.Y)
}

// CIEXYY is chromaticity plus luminance, the xyY form of an XYZ value.
type CIEXYY struct {
	X         float32
	Y         float32
	Luminance float32
}

func NewCIEXYY(x float32, y float32, luminance float32) CIEXYY {
	return CIEXYY{X: x, Y: y, Luminance: luminance}
}

// Chromaticity drops the luminance.
func (v CIEXYY) Chromaticity() CIEXY {
	return CIEXY{X: v.X, Y: v.Y}
}

func (v CIEXYY) String() string {
	return fmt.Sprintf("xyY(%.6f, %.6f, %.6f)", v.X, v.Y, v.Luminance)
}
