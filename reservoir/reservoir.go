package reservoir

import "math"

// Res is a generic linear reservoir. Accepts new water (recharge), and
// releases it to other reservoirs and/or out of the system (discharge) at a
// rate proportional to the water held in storage.
type Res struct {
	Sto    float64 // stored water depth
	Cap    float64 // storage ceiling; math.Inf(1) for an unbounded reservoir
	Tefold float64 // e-folding depletion time, in units of the timestep
	Fdisch float64 // fraction of depleted water exfiltrated to stream discharge
	Exf    float64 // exfiltration from the last Discharge call
	Inf    float64 // infiltration (to the next reservoir down) from the last Discharge call
	exs    float64 // overflow held for the next Discharge call
}

// New reservoir constructor. tefold: e-folding depletion time (same units as
// the timestep, typically days); fdisch: fraction of depleted water routed to
// stream discharge, the remainder infiltrating downward; cap: maximum water
// depth held.
func New(tefold, fdisch, cap float64) *Res {
	return &Res{
		Cap:    cap,
		Tefold: tefold,
		Fdisch: fdisch,
		Exf:    math.NaN(),
		Inf:    math.NaN(),
	}
}

// NewUncapped builds a reservoir with no storage ceiling.
func NewUncapped(tefold, fdisch float64) *Res { return New(tefold, fdisch, math.Inf(1)) }

// Recharge adds water; h may be negative (evapotranspiration loss). A
// reservoir drawn below empty by evapotranspiration is reset to empty on
// entry and the amount is discarded: ET may deplete the top layer to dry,
// never into deficit, and over-depletion is not passed to lower layers.
func (r *Res) Recharge(h float64) {
	if r.Sto < 0. {
		r.Sto = 0.
	} else if r.Sto+h <= r.Cap {
		r.Sto += h
	} else {
		r.exs += r.Sto + h - r.Cap
		r.Sto = r.Cap
	}
}

// Discharge depletes storage over one timestep dt following first-order
// (exponential) decay, splitting the depleted water between exfiltration and
// infiltration. Overflow held from Recharge exits entirely as exfiltration,
// bypassing the infiltration split.
func (r *Res) Discharge(dt float64) (exf, inf float64) {
	dh := r.Sto * (1. - math.Exp(-dt/r.Tefold))
	r.Exf = r.exs + dh*r.Fdisch
	r.Inf = dh * (1. - r.Fdisch)
	r.Sto -= dh
	r.exs = 0.
	return r.Exf, r.Inf
}

// Excess reports the overflow currently held for the next Discharge call.
func (r *Res) Excess() float64 { return r.exs }
