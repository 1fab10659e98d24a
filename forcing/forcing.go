// Package forcing holds the atmospheric exchange series driving a cascade
// run: rainfall and (optionally) evapotranspiration, one value per timestep.
package forcing

import (
	"fmt"
	"time"
)

// Forcing timeseries for a single lumped column. Rainfall and ET share the
// date axis; EP may be nil when ET is neglected.
type Forcing struct {
	T           []time.Time
	P, EP       []float64 // rainfall and evapotranspiration depths per step
	IntervalSec float64
}

// Check validates series lengths against the date axis. Length mismatches
// are caught here, at configuration time, rather than surfacing as range
// errors mid-run.
func (frc *Forcing) Check() error {
	if len(frc.P) != len(frc.T) {
		return fmt.Errorf(" forcing.Check: %d rainfall values for %d dates", len(frc.P), len(frc.T))
	}
	if frc.EP != nil && len(frc.EP) != len(frc.P) {
		return fmt.Errorf(" forcing.Check: %d evapotranspiration values for %d rainfall values", len(frc.EP), len(frc.P))
	}
	return nil
}

// CheckAndPrint validates and summarizes the forcing set.
func (frc *Forcing) CheckAndPrint() error {
	if err := frc.Check(); err != nil {
		return err
	}
	nt := len(frc.T)
	fmt.Println("Forcing summary:")
	fmt.Printf(" %v to %v (%d timesteps, interval %ds)\n", frc.T[0], frc.T[nt-1], nt, int64(frc.IntervalSec))

	sp, se := 0., 0.
	for i := range frc.T {
		sp += frc.P[i]
		if frc.EP != nil {
			se += frc.EP[i]
		}
	}
	f := 365.24 * 86400. / frc.IntervalSec / float64(nt)
	fmt.Printf(" totals (mm/yr): P: %.1f   EP: %.1f\n", sp*f, se*f)
	return nil
}
