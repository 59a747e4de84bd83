package color

import (
	"github.com/kpfaulkner/colorimetry/util"
)

var (
	// Bradford adapted D65 -> D50 and back (Lindbloom). Each is the other's
	// inverse to float precision.
	d65ToD50 = util.NewMatrix3[float32](
		1.0478112, 0.0228866, -0.0501270,
		0.0295424, 0.9904844, -0.0170491,
		-0.0092345, 0.0150436, 0.7521316)

	d50ToD65 = util.NewMatrix3[float32](
		0.9555766, -0.0230393, 0.0631636,
		-0.0282895, 1.0099416, 0.0210077,
		0.0122982, -0.0204830, 1.3299098)

	// Bradford cone response matrix and its inverse.
	bradford = util.NewMatrix3[float64](
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296)

	bradfordInverse = util.NewMatrix3[float64](
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867)
)

// D65ToD50Matrix returns a copy of the fixed D65 -> D50 adaptation.
func D65ToD50Matrix() util.Matrix3[float32] {
	return d65ToD50
}

// D50ToD65Matrix returns a copy of the fixed D50 -> D65 adaptation.
func D50ToD65Matrix() util.Matrix3[float32] {
	return d50ToD65
}

func AdaptD65ToD50(c XYZ[D65]) XYZ[D50] {
	return xyzFromVector[D50](d65ToD50.MulVector(c.Vector()))
}

func AdaptD50ToD65(c XYZ[D50]) XYZ[D65] {
	return xyzFromVector[D65](d50ToD65.MulVector(c.Vector()))
}

// Adapt converts between any two tagged whites with a Bradford transform
// derived from their chromaticities. For D65 <-> D50 prefer AdaptD65ToD50 /
// AdaptD50ToD65 which use the published fixed matrices.
//
//	acesWhite := color.Adapt[color.D60](color.White[color.D65]())
func Adapt[To Illuminant, From Illuminant](c XYZ[From]) XYZ[To] {
	var to To
	var from From
	targetWP := to.WhitePoint()
	currentWP := from.WhitePoint()
	if targetWP.Matches(&currentWP) {
		return XYZ[To]{X: c.X, Y: c.Y, Z: c.Z}
	}

	m := adaptationMatrix(targetWP, currentWP)
	v := m.MulVector(util.NewVector3(float64(c.X), float64(c.Y), float64(c.Z)))
	return XYZ[To]{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// BradfordMatrix is the XYZ -> XYZ adaptation taking currentWP to targetWP.
func BradfordMatrix(targetWP CIEXY, currentWP CIEXY) (util.Matrix3[float32], error) {
	if err := targetWP.Validate(); err != nil {
		return util.Matrix3[float32]{}, err
	}
	if err := currentWP.Validate(); err != nil {
		return util.Matrix3[float32]{}, err
	}
	if targetWP.Matches(&currentWP) {
		return util.Identity3[float32](), nil
	}
	return util.ToFloat32(adaptationMatrix(targetWP, currentWP)), nil
}

// adaptationMatrix assumes both white points are valid, so neither cone
// response can be zero.
func adaptationMatrix(targetWP CIEXY, currentWP CIEXY) util.Matrix3[float64] {
	target := bradford.MulVector(xyzColumn(targetWP))
	current := bradford.MulVector(xyzColumn(currentWP))
	gain := util.Diagonal3(util.NewVector3(
		target.X/current.X,
		target.Y/current.Y,
		target.Z/current.Z))
	return util.MatrixMultiply(&bradfordInverse, &gain, &bradford)
}
