package color

import (
	"testing"

	"github.com/kpfaulkner/colorimetry/util"
	"github.com/stretchr/testify/assert"
)

func TestLMSToFrom(t *testing.T) {
	a := NewLMS(0.123, 1.0, 0.234)
	b := a.ToXYZ()
	c := LMSFromXYZ(b)

	assert.True(t, a.Vector().ApproxEqual(c.Vector(), roundTripTolerance), "expected %v, got %v", a, c)
}

func TestXYZToFromLMS(t *testing.T) {
	for _, tc := range []struct {
		name string
		xyz  XYZ[D65]
	}{
		{name: "white", xyz: White[D65]()},
		{name: "green", xyz: NewXYZ[D65](0.25, 0.40, 0.10)},
		{name: "saturated", xyz: NewXYZ[D65](0.4, 0.6, 0.23)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			back := LMSFromXYZ(tc.xyz).ToXYZ()
			assertXYZInDelta(t, tc.xyz, back, roundTripTolerance)
		})
	}
}

func TestLMSFromXYZ(t *testing.T) {
	lms := LMSFromXYZ(NewXYZ[D65](0.4, 0.6, 0.23))
	assert.InDelta(t, 0.7328*0.4+0.4296*0.6-0.1624*0.23, lms.L, 1e-6)
	assert.InDelta(t, -0.7036*0.4+1.6975*0.6+0.0061*0.23, lms.M, 1e-6)
	assert.InDelta(t, 0.0030*0.4+0.0136*0.6+0.9834*0.23, lms.S, 1e-6)
}

func TestLMSMatricesAreInverse(t *testing.T) {
	product := xyzToLMS.Mul(&lmsToXYZ)
	identity := util.Identity3[float32]()
	assert.True(t, product.ApproxEqual(&identity, 1e-6))
}
