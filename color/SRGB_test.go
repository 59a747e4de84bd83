package color

import (
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYZToSRGB24(t *testing.T) {
	xyz := NewXYZ[D65](0.25, 0.40, 0.10)
	lsrgb := LinearSRGBFromXYZ(xyz)
	srgb := lsrgb.ToSRGB()
	srgb24 := srgb.ToSRGB24()
	assert.Equal(t, NewSRGB24(106, 190, 55), srgb24)

	assert.Equal(t, srgb24, XYZToSRGB24(xyz))
}

func TestXYZToFromLinearSRGB(t *testing.T) {
	for _, tc := range []struct {
		name string
		xyz  XYZ[D65]
	}{
		{name: "green", xyz: NewXYZ[D65](0.25, 0.40, 0.10)},
		{name: "white", xyz: White[D65]()},
		{name: "out of gamut", xyz: NewXYZ[D65](0.123, 1.0, 0.234)},
		{name: "black", xyz: NewXYZ[D65](0, 0, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			back := LinearSRGBFromXYZ(tc.xyz).ToXYZ()
			assertXYZInDelta(t, tc.xyz, back, roundTripTolerance)
		})
	}
}

func TestD65WhiteIsLinearSRGBWhite(t *testing.T) {
	c := LinearSRGBFromXYZ(NewXYZ[D65](0.95047, 1.0, 1.08883))
	assert.InDelta(t, 1.0, c.R, 1e-5)
	assert.InDelta(t, 1.0, c.G, 1e-5)
	assert.InDelta(t, 1.0, c.B, 1e-5)
}

func TestToAndFromLinear(t *testing.T) {
	srgb := NewSRGB(0.1245, 0.0924, 0.9812)

	l := LinearSRGBFromSRGB(srgb)
	srgb2 := l.ToSRGB()

	assert.InDelta(t, srgb.R, srgb2.R, roundTripTolerance)
	assert.InDelta(t, srgb.G, srgb2.G, roundTripTolerance)
	assert.InDelta(t, srgb.B, srgb2.B, roundTripTolerance)
	assert.Equal(t, l, srgb.ToLinear())
}

func TestTransferFunction(t *testing.T) {

	for _, tc := range []struct {
		name    string
		linear  float32
		encoded float32
	}{
		{name: "zero", linear: 0, encoded: 0},
		{name: "linear segment", linear: 0.001, encoded: 0.01292},
		{name: "knee", linear: 0.0031308, encoded: 0.04044994},
		{name: "mid grey", linear: 0.18, encoded: 0.46135613},
		{name: "one", linear: 1, encoded: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.encoded, EncodeComponent(tc.linear), 1e-6)
			assert.InDelta(t, tc.linear, DecodeComponent(tc.encoded), 1e-6)
		})
	}
}

func TestTransferFunctionClampsAboveOne(t *testing.T) {
	assert.Equal(t, float32(1.0), EncodeComponent(4.0))
	assert.Equal(t, float32(1.0), DecodeComponent(1.5))

	// no clamp below zero, negative values follow the linear segment
	assert.InDelta(t, -0.1292, EncodeComponent(-0.01), 1e-7)
}

func TestScaleBrightness(t *testing.T) {
	x := NewLinearSRGB(0.5, 0.5, 0.5)
	assert.InDelta(t, 0.5, x.Brightness(), 1e-6)

	x.SetBrightness(0.8)
	assert.True(t, x.Brightness() > 0.799999)
	assert.True(t, x.Brightness() < 0.800001)

	y := NewLinearSRGB(0.5, 0.1, 0.4)
	y.SetBrightness(0.8)
	assert.True(t, y.Brightness() > 0.799999)
	assert.True(t, y.Brightness() < 0.800001)

	y.SetBrightness(0.2)
	assert.True(t, y.Brightness() > 0.199999)
	assert.True(t, y.Brightness() < 0.200001)
}

func TestBrightnessAndLuminanceDiffer(t *testing.T) {
	c := NewLinearSRGB(0.2, 0.6, 0.9)
	assert.InDelta(t, 0.299*0.2+0.587*0.6+0.114*0.9, c.Brightness(), 1e-6)
	assert.InDelta(t, 0.2126729*0.2+0.7151522*0.6+0.0721750*0.9, c.Luminance(), 1e-6)
	assert.NotEqual(t, c.Brightness(), c.Luminance())

	// luminance is the Y of the XYZ conversion
	assert.InDelta(t, c.ToXYZ().Y, c.Luminance(), 1e-7)
}

func TestSetLuminance(t *testing.T) {
	c := NewLinearSRGB(0.2, 0.6, 0.9)
	c.SetLuminance(0.25)
	assert.InDelta(t, 0.25, c.Luminance(), 1e-6)
	assert.InDelta(t, 3.0, c.G/c.R, 1e-5)
}

func TestRescaleBlackIsNoop(t *testing.T) {
	black := NewLinearSRGB(0, 0, 0)

	c := black
	c.SetBrightness(0.8)
	assert.Equal(t, black, c)

	c.SetLuminance(0.8)
	assert.Equal(t, black, c)

	c.SetMaxBrightness()
	assert.Equal(t, black, c)
	assertFinite(t, c.R, c.G, c.B)
}

func TestSetMaxBrightness(t *testing.T) {
	c := NewLinearSRGB(2, 1, 0.5)
	c.SetMaxBrightness()
	assert.Equal(t, NewLinearSRGB(1, 0.5, 0.25), c)

	odd := NewLinearSRGB(0.3, 0.7, 0.1)
	odd.SetMaxBrightness()
	assert.Equal(t, float32(1.0), odd.G)
	assert.InDelta(t, 0.3/0.7, odd.R, 1e-6)
}

func TestQuantizationIdempotent(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				q := NewSRGB24(uint8(r), uint8(g), uint8(b))
				if got := q.ToSRGB().ToSRGB24(); got != q {
					t.Fatalf("quantize(dequantize(%v)) = %v", q, got)
				}
			}
		}
	}
}

func TestQuantizationThroughLinear(t *testing.T) {
	for v := 0; v < 256; v++ {
		q := NewSRGB24(uint8(v), uint8(255-v), uint8(v/2))
		got := LinearSRGBFromSRGB(q.ToSRGB()).ToSRGB().ToSRGB24()
		assert.Equal(t, q, got)
	}
}

func TestQuantizationRounds(t *testing.T) {
	assert.Equal(t, NewSRGB24(0, 128, 255), NewSRGB(0.001, 0.5, 0.999).ToSRGB24())
	// saturate rather than wrap
	assert.Equal(t, NewSRGB24(0, 255, 0), NewSRGB(-0.5, 1.5, 0).ToSRGB24())
}

func TestSRGB24Color(t *testing.T) {
	var c stdcolor.Color = NewSRGB24(0x12, 0x34, 0x56)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x1212), r)
	assert.Equal(t, uint32(0x3434), g)
	assert.Equal(t, uint32(0x5656), b)
	assert.Equal(t, uint32(0xffff), a)

	assert.Equal(t, NewSRGB24(0x12, 0x34, 0x56), SRGB24FromColor(c))
	assert.Equal(t, NewSRGB24(0x7f, 0x3f, 0), SRGB24FromColor(stdcolor.RGBA{R: 0x40, G: 0x20, B: 0, A: 0x80}))
}

func TestSRGB24ToXYZ(t *testing.T) {
	xyz := SRGB24ToXYZ(NewSRGB24(106, 190, 55))
	assertXYZInDelta(t, NewXYZ[D65](0.25, 0.40, 0.10), xyz, 3e-3)
}

func BenchmarkXYZToSRGB24(b *testing.B) {
	xyz := NewXYZ[D65](0.25, 0.40, 0.10)
	for i := 0; i < b.N; i++ {
		_ = XYZToSRGB24(xyz)
	}
}
