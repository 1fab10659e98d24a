// Package pet computes daily potential evapotranspiration estimates from
// temperature envelopes, for building forcing series where measured ET is
// unavailable.
package pet

import "math"

// Chang heat index and derived exponent, modified Thornthwaite
const heatIndex = 41.47044637

var expnt = 6.75e-7*heatIndex*heatIndex*heatIndex -
	7.72e-5*heatIndex*heatIndex +
	1.7912e-2*heatIndex +
	0.49239

// Chang2019 returns the modified daily Thornthwaite potential
// evapotranspiration [mm/d] from daily temperature extremes tx, tn [°C] and
// photoperiod [hr]. Effective temperatures at or below zero yield no ET;
// a polynomial form takes over at and above 26°C.
func Chang2019(tx, tn, photoperiod float64) float64 {
	teff := .5 * .69 * (3.*tx - tn)
	c := photoperiod / 360.
	switch {
	case teff >= 26.:
		return c * (-415.85 + 32.24*teff - .43*teff*teff)
	case teff > 0.:
		return 16. * c * math.Pow(10.*teff/heatIndex, expnt)
	default:
		return 0.
	}
}
