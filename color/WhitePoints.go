package color

import (
	"errors"
	"fmt"
	"strings"
)

// Whites with no Illuminant tag. Colours relative to these are handled as
// untagged tristimulus through BradfordMatrix.
var (
	WhiteE   = CIEXY{X: 1.0 / 3, Y: 1.0 / 3}
	WhiteDCI = CIEXY{X: 0.314, Y: 0.351}
)

var ErrUnknownWhitePoint = errors.New("unknown white point")

// WhitePointByName looks up a reference white: D50, D60, D65, E or DCI.
func WhitePointByName(name string) (CIEXY, error) {
	switch strings.ToUpper(name) {
	case "D50":
		return WhiteD50, nil
	case "D60":
		return WhiteD60, nil
	case "D65":
		return WhiteD65, nil
	case "E":
		return WhiteE, nil
	case "DCI":
		return WhiteDCI, nil
	}
	return CIEXY{}, fmt.Errorf("%w: %s", ErrUnknownWhitePoint, name)
}

// AdaptTo maps c onto an arbitrary white, returning plain tristimulus.
func AdaptTo[I Illuminant](c XYZ[I], white CIEXY) (float32, float32, float32, error) {
	m, err := BradfordMatrix(white, c.WhitePoint())
	if err != nil {
		return 0, 0, 0, err
	}
	v := m.MulVector(c.Vector())
	return v.X, v.Y, v.Z, nil
}
