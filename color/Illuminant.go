package color

// Reference white chromaticities.
var (
	WhiteD50 = CIEXY{X: 0.34567, Y: 0.35850}
	WhiteD60 = CIEXY{X: 0.32168, Y: 0.33767}
	WhiteD65 = CIEXY{X: 0.31270, Y: 0.32900}
)

// D50 is the ICC profile connection space white.
type D50 struct{}

// D60 is the ACES white.
type D60 struct{}

// D65 is the sRGB / Rec.709 / Rec.2020 white.
type D65 struct{}

func (D50) WhitePoint() CIEXY { return WhiteD50 }
func (D60) WhitePoint() CIEXY { return WhiteD60 }
func (D65) WhitePoint() CIEXY { return WhiteD65 }

func (D50) Name() string { return "D50" }
func (D60) Name() string { return "D60" }
func (D65) Name() string { return "D65" }

// Illuminant is the set of reference whites an XYZ value can be tagged with.
// The tag lives only in the type: XYZ[D50] and XYZ[D65] cannot be mixed
// without going through an adaptation function.
type Illuminant interface {
	D50 | D60 | D65
	WhitePoint() CIEXY
	Name() string
}
