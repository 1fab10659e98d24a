package reservoir

import (
	"math"
	"testing"
)

func TestMassBalance(t *testing.T) {
	// uncapped reservoir, one step: exf+inf = sto0 + recharge - sto1
	r := NewUncapped(3.3, .4)
	r.Sto = 7.
	s0 := r.Sto
	r.Recharge(2.5)
	rch := r.Sto - s0
	exf, inf := r.Discharge(1.)
	if d := exf + inf - (s0 + rch - r.Sto); math.Abs(d) > 1e-12 {
		t.Errorf("mass balance violated by %e", d)
	}
}

func TestOverflow(t *testing.T) {
	r := New(5., .25, 10.)
	r.Sto = 8.
	r.Recharge(5.)
	if r.Sto != 10. {
		t.Errorf("Sto = %f, want 10", r.Sto)
	}
	if r.Excess() != 3. {
		t.Errorf("excess = %f, want 3", r.Excess())
	}

	// overflow exits entirely as exfiltration, regardless of Fdisch
	dh := r.Sto * (1. - math.Exp(-1./r.Tefold))
	exf, inf := r.Discharge(1.)
	if math.Abs(exf-(3.+dh*.25)) > 1e-12 {
		t.Errorf("exf = %f, want %f", exf, 3.+dh*.25)
	}
	if math.Abs(inf-dh*.75) > 1e-12 {
		t.Errorf("inf = %f, want %f", inf, dh*.75)
	}
	if r.Excess() != 0. {
		t.Errorf("excess not reset: %f", r.Excess())
	}
}

func TestETFloor(t *testing.T) {
	// over-depletion by ET leaves a within-step deficit that the next
	// Recharge call resets to empty, discarding its own amount
	r := NewUncapped(5., 1.)
	r.Sto = 2.
	r.Recharge(-5.)
	if r.Sto != -3. {
		t.Errorf("Sto = %f, want -3", r.Sto)
	}
	r.Recharge(4.)
	if r.Sto != 0. {
		t.Errorf("Sto = %f, want 0 (amount discarded on floor)", r.Sto)
	}
	r.Recharge(3.)
	if r.Sto != 3. {
		t.Errorf("Sto = %f, want 3 (floor must not persist)", r.Sto)
	}
}

func TestDecayLimits(t *testing.T) {
	r := NewUncapped(5., 1.)
	r.Sto = 10.
	r.Discharge(1e6)
	if r.Sto > 1e-9 {
		t.Errorf("Sto = %e after dt>>tefold, want ~0", r.Sto)
	}

	r = NewUncapped(5., 1.)
	r.Sto = 10.
	exf, inf := r.Discharge(1e-12)
	if exf+inf > 1e-9 {
		t.Errorf("depleted %e as dt->0, want ~0", exf+inf)
	}
}
