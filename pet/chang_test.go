package pet

import (
	"math"
	"testing"
)

func TestChang2019Branches(t *testing.T) {
	// effective temperature at or below zero yields no ET
	if ep := Chang2019(-5., -10., 12.); ep != 0. {
		t.Errorf("cold ET = %f, want 0", ep)
	}
	if ep := Chang2019(0., 0., 12.); ep != 0. { // teff exactly 0
		t.Errorf("freezing ET = %f, want 0", ep)
	}

	// moderate regime: power law, positive and increasing with temperature
	e15 := Chang2019(15., 8., 12.)
	e20 := Chang2019(20., 10., 12.)
	if e15 <= 0. || e20 <= e15 {
		t.Errorf("moderate ET not increasing: %f, %f", e15, e20)
	}

	// hot regime (teff >= 26): offset polynomial form
	teff := .5 * .69 * (3.*40. - 20.)
	want := 14. / 360. * (-415.85 + 32.24*teff - .43*teff*teff)
	if ep := Chang2019(40., 20., 14.); math.Abs(ep-want) > 1e-12 {
		t.Errorf("hot ET = %f, want %f", ep, want)
	}
}

func TestChang2019PhotoperiodScaling(t *testing.T) {
	// both regimes scale linearly with photoperiod
	if a, b := Chang2019(20., 10., 6.), Chang2019(20., 10., 12.); math.Abs(b-2.*a) > 1e-12 {
		t.Errorf("photoperiod scaling: %f, %f", a, b)
	}
	if a, b := Chang2019(40., 20., 6.), Chang2019(40., 20., 12.); math.Abs(b-2.*a) > 1e-12 {
		t.Errorf("photoperiod scaling (hot): %f, %f", a, b)
	}
}
