package color

import (
	"github.com/kpfaulkner/colorimetry/util"
)

var (
	// CAT02, from CIECAM02 (Moroney, Fairchild, Hunt et al. 2002)
	xyzToLMS = util.NewMatrix3[float32](
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834)

	lmsToXYZ = util.NewMatrix3[float32](
		1.0961238, -0.278869, 0.18274519,
		0.45436904, 0.47353318, 0.07209781,
		-0.0096276095, -0.0056980313, 1.0153257)
)

// LMS is the long, medium, short cone response space. Use it when moving
// between white points.
type LMS struct {
	L float32
	M float32
	S float32
}

func NewLMS(l float32, m float32, s float32) LMS {
	return LMS{L: l, M: m, S: s}
}

func (c LMS) Vector() util.Vector3[float32] {
	return util.NewVector3(c.L, c.M, c.S)
}

func LMSFromXYZ(xyz XYZ[D65]) LMS {
	v := xyzToLMS.MulVector(xyz.Vector())
	return LMS{L: v.X, M: v.Y, S: v.Z}
}

func (c LMS) ToXYZ() XYZ[D65] {
	return xyzFromVector[D65](lmsToXYZ.MulVector(c.Vector()))
}
