package photometry

import (
	"math"
)

// abIrradianceFactor converts AB flux (erg s^-1 cm^-2 Hz^-1) to W/m^2 at
// green (550nm, 545,077,196,363,636.3 Hz):
//
//	100 (cm/m) * 100 (cm/m) * 1e-7 (J/erg) / 545077196363636.3 Hz
const abIrradianceFactor = 5.45077e+16

// abZeroPoint is the AB magnitude offset: m(AB) = -2.5 log10(f) - 48.60
const abZeroPoint = 48.60

// StarMagnitude is an apparent magnitude. Brighter objects have lower
// magnitudes; every 5 magnitudes is a factor of 100 in brightness.
type StarMagnitude float64

// Brightness relative to magnitude 0.
func (m StarMagnitude) Brightness() float64 {
	return math.Pow(10.0, -float64(m)*0.4)
}

func StarMagnitudeFromBrightness(brightness float64) StarMagnitude {
	return StarMagnitude(-2.5 * math.Log10(brightness))
}

// Irradiance in watts per square metre, via the AB magnitude system.
func (m StarMagnitude) Irradiance() float64 {
	return abIrradianceFactor * math.Pow(10.0, (float64(m)+abZeroPoint)/-2.5)
}

func StarMagnitudeFromIrradiance(irradiance float64) StarMagnitude {
	return StarMagnitude(-2.5*math.Log10(irradiance/abIrradianceFactor) - abZeroPoint)
}
