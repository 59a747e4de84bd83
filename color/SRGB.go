package color

import (
	stdcolor "image/color"

	"github.com/chewxy/math32"
	"github.com/kpfaulkner/colorimetry/util"
)

var (
	xyzToLinearSRGB = util.NewMatrix3[float32](
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252)

	linearSRGBToXYZ = util.NewMatrix3[float32](
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041)

	// legacy NTSC weighting, not a luminance
	brightnessWeights = util.NewVector3[float32](0.299, 0.587, 0.114)
	// Y row of linearSRGBToXYZ
	luminanceWeights = linearSRGBToXYZ.Row(1)
)

// LinearSRGB is physically linear light in sRGB primaries, D65 white.
// Components are scene referred and may be negative or exceed 1.0; nothing
// here clamps them.
type LinearSRGB struct {
	R float32
	G float32
	B float32
}

// SRGB is gamma encoded, display referred sRGB, nominally in [0,1].
type SRGB struct {
	R float32
	G float32
	B float32
}

// SRGB24 is 8 bits per channel sRGB.
type SRGB24 struct {
	R uint8
	G uint8
	B uint8
}

func NewLinearSRGB(r float32, g float32, b float32) LinearSRGB {
	return LinearSRGB{R: r, G: g, B: b}
}

func NewSRGB(r float32, g float32, b float32) SRGB {
	return SRGB{R: r, G: g, B: b}
}

func NewSRGB24(r uint8, g uint8, b uint8) SRGB24 {
	return SRGB24{R: r, G: g, B: b}
}

func linearSRGBFromVector(v util.Vector3[float32]) LinearSRGB {
	return LinearSRGB{R: v.X, G: v.Y, B: v.Z}
}

func (c LinearSRGB) Vector() util.Vector3[float32] {
	return util.NewVector3(c.R, c.G, c.B)
}

func LinearSRGBFromXYZ(xyz XYZ[D65]) LinearSRGB {
	return linearSRGBFromVector(xyzToLinearSRGB.MulVector(xyz.Vector()))
}

func (c LinearSRGB) ToXYZ() XYZ[D65] {
	return xyzFromVector[D65](linearSRGBToXYZ.MulVector(c.Vector()))
}

// EncodeComponent applies the sRGB transfer function (linear -> gamma),
// assuming the 2 degree observer. Results above 1.0 are clamped to 1.0.
// Negative input stays on the linear segment; callers wanting [0,1] output
// must clamp first.
func EncodeComponent(v float32) float32 {
	var e float32
	if v <= 0.0031308 {
		e = 12.92 * v
	} else {
		e = 1.055*math32.Pow(v, 1.0/2.4) - 0.055
	}
	if e > 1.0 {
		e = 1.0
	}
	return e
}

// DecodeComponent is the inverse transfer function (gamma -> linear),
// clamped to 1.0 on overflow.
func DecodeComponent(v float32) float32 {
	var d float32
	if v <= 0.04045 {
		d = v / 12.92
	} else {
		d = math32.Pow((v+0.055)/1.055, 2.4)
	}
	if d > 1.0 {
		d = 1.0
	}
	return d
}

// ToSRGB applies gamma correction.
func (c LinearSRGB) ToSRGB() SRGB {
	return SRGB{
		R: EncodeComponent(c.R),
		G: EncodeComponent(c.G),
		B: EncodeComponent(c.B),
	}
}

func LinearSRGBFromSRGB(c SRGB) LinearSRGB {
	return LinearSRGB{
		R: DecodeComponent(c.R),
		G: DecodeComponent(c.G),
		B: DecodeComponent(c.B),
	}
}

func (c SRGB) ToLinear() LinearSRGB {
	return LinearSRGBFromSRGB(c)
}

// Brightness is the legacy 0.299/0.587/0.114 weighting. It is not the same
// thing as Luminance.
func (c LinearSRGB) Brightness() float32 {
	return brightnessWeights.Dot(c.Vector())
}

// Luminance is relative luminance Y for D65 sRGB.
func (c LinearSRGB) Luminance() float32 {
	return luminanceWeights.Dot(c.Vector())
}

// SetBrightness rescales all channels so Brightness() == brightness.
// Result can go beyond 1.0. No-op for zero brightness.
func (c *LinearSRGB) SetBrightness(brightness float32) {
	c.rescale(brightness, c.Brightness())
}

// SetLuminance rescales all channels so Luminance() == luminance.
// No-op for zero luminance.
func (c *LinearSRGB) SetLuminance(luminance float32) {
	c.rescale(luminance, c.Luminance())
}

// SetMaxBrightness scales the colour so its largest channel is exactly 1.0,
// bringing overflowing values into range without a hue shift.
func (c *LinearSRGB) SetMaxBrightness() {
	max := c.Vector().MaxComponent()
	if max <= 0 || max != max {
		return
	}
	// divide rather than multiply by 1/max so max/max is exactly 1
	c.R /= max
	c.G /= max
	c.B /= max
}

func (c *LinearSRGB) rescale(target float32, current float32) {
	if current == 0 {
		return
	}
	scale := target / current
	c.R *= scale
	c.G *= scale
	c.B *= scale
}

// ToSRGB24 quantises with round(v*255). Values outside [0,1] saturate.
func (c SRGB) ToSRGB24() SRGB24 {
	return SRGB24{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
	}
}

func quantize(v float32) uint8 {
	if v != v {
		return 0
	}
	return uint8(util.Clamp(math32.Round(v*255.0), 0, 255))
}

// ToSRGB dequantises to the [0,1] encoded scale.
func (c SRGB24) ToSRGB() SRGB {
	return SRGB{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
	}
}

// RGBA implements image/color.Color. SRGB24 is always opaque.
func (c SRGB24) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// SRGB24FromColor takes any image/color.Color, un-premultiplying alpha.
func SRGB24FromColor(c stdcolor.Color) SRGB24 {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return SRGB24{R: n.R, G: n.G, B: n.B}
}

// XYZToSRGB24 runs the whole chain: XYZ -> linear -> gamma -> 8 bit.
func XYZToSRGB24(xyz XYZ[D65]) SRGB24 {
	return LinearSRGBFromXYZ(xyz).ToSRGB().ToSRGB24()
}

// SRGB24ToXYZ is the reverse chain.
func SRGB24ToXYZ(c SRGB24) XYZ[D65] {
	return c.ToSRGB().ToLinear().ToXYZ()
}
