package color

import (
	"github.com/kpfaulkner/colorimetry/util"
)

var (
	xyzToAces = util.NewMatrix3[float32](
		1.0498110175, 0.0000000000, -0.0000974845,
		-0.4959030231, 1.3733130458, 0.0982400361,
		0.0000000000, 0.0000000000, 0.9912520182)

	acesToXYZ = util.NewMatrix3[float32](
		0.9525523959, 0.0000000000, 0.0000936786,
		0.3439664498, 0.7281660966, -0.0721325464,
		0.0000000000, 0.0000000000, 1.0088251844)
)

// Aces is ACES2065-1: linear, AP0 primaries (ACESAP0Primaries), D60 white.
// A perfect white diffuser is (1,1,1) and 18% grey is (0.18,0.18,0.18).
// Values are scene referred and may fall outside [0,1].
type Aces struct {
	R float32
	G float32
	B float32
}

func NewAces(r float32, g float32, b float32) Aces {
	return Aces{R: r, G: g, B: b}
}

func (a Aces) Vector() util.Vector3[float32] {
	return util.NewVector3(a.R, a.G, a.B)
}

func AcesFromXYZ(xyz XYZ[D60]) Aces {
	v := xyzToAces.MulVector(xyz.Vector())
	return Aces{R: v.X, G: v.Y, B: v.Z}
}

func (a Aces) ToXYZ() XYZ[D60] {
	return xyzFromVector[D60](acesToXYZ.MulVector(a.Vector()))
}
