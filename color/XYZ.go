package color

import (
	"fmt"

	"github.com/kpfaulkner/colorimetry/util"
)

// XYZ is a CIE 1931 tristimulus value expressed relative to the white of
// illuminant I. Normalised values have Y = 1.0 for that white.
type XYZ[I Illuminant] struct {
	X float32
	Y float32
	Z float32
}

func NewXYZ[I Illuminant](x float32, y float32, z float32) XYZ[I] {
	return XYZ[I]{X: x, Y: y, Z: z}
}

func xyzFromVector[I Illuminant](v util.Vector3[float32]) XYZ[I] {
	return XYZ[I]{X: v.X, Y: v.Y, Z: v.Z}
}

func (c XYZ[I]) Vector() util.Vector3[float32] {
	return util.NewVector3(c.X, c.Y, c.Z)
}

// Luminance is the Y channel.
func (c XYZ[I]) Luminance() float32 {
	return c.Y
}

// SetLuminance rescales all three channels so Y becomes luminance.
// Black (Y == 0) has no chromaticity to preserve so is left unchanged.
func (c *XYZ[I]) SetLuminance(luminance float32) {
	if c.Y == 0 {
		return
	}
	scale := luminance / c.Y
	c.X *= scale
	c.Y *= scale
	c.Z *= scale
}

// WhitePoint of the illuminant this value is relative to.
func (c XYZ[I]) WhitePoint() CIEXY {
	var i I
	return i.WhitePoint()
}

// Chromaticity projects to xy. A zero sum is replaced by Epsilon so black
// maps to (0, 0) instead of NaN.
func (c XYZ[I]) Chromaticity() CIEXY {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		sum = Epsilon
	}
	return CIEXY{X: c.X / sum, Y: c.Y / sum}
}

func (c XYZ[I]) ToXYY() CIEXYY {
	xy := c.Chromaticity()
	return CIEXYY{X: xy.X, Y: xy.Y, Luminance: c.Y}
}

// XYZFromXYY is the inverse of ToXYY. Luminance comes from v; no
// renormalisation is applied, so channels may exceed 1.0.
func XYZFromXYY[I Illuminant](v CIEXYY) XYZ[I] {
	y := v.Y
	if y == 0 {
		y = Epsilon
	}
	return XYZ[I]{
		X: v.X * v.Luminance / y,
		Y: v.Luminance,
		Z: (1.0 - v.X - v.Y) * v.Luminance / y,
	}
}

// XYZFromChromaticity re-imposes luminance on a bare chromaticity.
func XYZFromChromaticity[I Illuminant](xy CIEXY, luminance float32) XYZ[I] {
	return XYZFromXYY[I](CIEXYY{X: xy.X, Y: xy.Y, Luminance: luminance})
}

// White returns the reference white of I at luminance 1.
func White[I Illuminant]() XYZ[I] {
	var i I
	return XYZFromChromaticity[I](i.WhitePoint(), 1.0)
}

func (c XYZ[I]) String() string {
	var i I
	return fmt.Sprintf("XYZ[%s](%.6f, %.6f, %.6f)", i.Name(), c.X, c.Y, c.Z)
}
