// Package cascade chains linear reservoirs into a vertical hierarchy that
// routes water downward through the column or out to the stream, converting a
// rainfall timeseries (less evapotranspiration) into a discharge hydrograph.
package cascade

import (
	"fmt"

	"github.com/JambayBHUTAN/bucket-hydrology/reservoir"
)

// Cascade drives forcing through an ordered stack of reservoirs, surface
// first, deepest last. The order defines the flow hierarchy. State is wholly
// owned: reservoirs must not be shared with a second concurrently-running
// Cascade.
type Cascade struct {
	rsv      []*reservoir.Res
	dt       float64
	tm       []float64
	rain, ep []float64
	q        []float64
}

// New cascade constructor. dt: timestep length (typically days); rsv:
// subsurface layers ordered surface to deep.
func New(dt float64, rsv ...*reservoir.Res) *Cascade {
	return &Cascade{rsv: rsv, dt: dt}
}

// Initialize sets reservoir water levels from a parallel list, e.g. exported
// from a spin-up run. No-op when levels is nil.
func (c *Cascade) Initialize(levels []float64) error {
	if levels == nil {
		return nil
	}
	if len(levels) != len(c.rsv) {
		return fmt.Errorf(" cascade.Initialize: %d levels given for %d reservoirs", len(levels), len(c.rsv))
	}
	for i, r := range c.rsv {
		r.Sto = levels[i]
	}
	return nil
}

// ExportLevels returns the current reservoir water levels in construction
// order, for reinitialization (e.g. to restart after a spin-up phase or to
// resume a paused run).
func (c *Cascade) ExportLevels() []float64 {
	h := make([]float64, len(c.rsv))
	for i, r := range c.rsv {
		h[i] = r.Sto
	}
	return h
}

// Update advances the cascade one timestep and returns total stream
// discharge. The top layer is special: it exchanges with the atmosphere.
// Recharge is applied before discharge within the same step, a first-order
// explicit approximation.
func (c *Cascade) Update(rain, ep float64) float64 {
	c.rsv[0].Recharge(rain - ep)
	q, f := c.rsv[0].Discharge(c.dt)
	for i := 1; i < len(c.rsv); i++ {
		c.rsv[i].Recharge(f)
		var qi float64
		qi, f = c.rsv[i].Discharge(c.dt)
		q += qi
	}
	return q
}

// Time returns the time axis of the last run [timestep units].
func (c *Cascade) Time() []float64 { return c.tm }

// Rain returns the configured rainfall series.
func (c *Cascade) Rain() []float64 { return c.rain }

// Discharge returns the hydrograph produced by the last run, one value per
// forcing step.
func (c *Cascade) Discharge() []float64 { return c.q }
