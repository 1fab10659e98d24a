package cascade

import (
	"fmt"

	"github.com/JambayBHUTAN/bucket-hydrology/pet"
)

// SetRainfall sets the rainfall forcing series, one depth per timestep. The
// series is copied; the caller's slice is not retained.
func (c *Cascade) SetRainfall(rain []float64) {
	c.rain = append([]float64(nil), rain...)
}

// SetEvapotranspiration sets a user-supplied ET series, bypassing the
// built-in formula. Its length must match the rainfall series.
func (c *Cascade) SetEvapotranspiration(ep []float64) error {
	if c.rain != nil && len(ep) != len(c.rain) {
		return fmt.Errorf(" cascade.SetEvapotranspiration: series length %d does not match rainfall length %d", len(ep), len(c.rain))
	}
	c.ep = append([]float64(nil), ep...)
	return nil
}

// BuildEvapotranspiration derives the ET series from parallel daily maximum
// and minimum temperature [°C] and photoperiod [hr] series using the Chang
// (2019) modified Thornthwaite formula. ET is applied to the top reservoir
// only.
func (c *Cascade) BuildEvapotranspiration(tx, tn, photoperiod []float64) error {
	if len(tn) != len(tx) || len(photoperiod) != len(tx) {
		return fmt.Errorf(" cascade.BuildEvapotranspiration: series lengths do not agree (%d/%d/%d)", len(tx), len(tn), len(photoperiod))
	}
	ep := make([]float64, len(tx))
	for i := range tx {
		ep[i] = pet.Chang2019(tx[i], tn[i], photoperiod[i])
	}
	return c.SetEvapotranspiration(ep)
}

// Run simulates the full forcing series, rebuilding the time axis and
// discharge hydrograph. rain may be nil if a rainfall series was set
// previously; useEP neglects evapotranspiration when false.
func (c *Cascade) Run(rain []float64, useEP bool) error {
	if rain != nil {
		if c.rain != nil {
			fmt.Println(" warning: overwriting existing rainfall time series")
		}
		c.SetRainfall(rain)
	}
	if c.rain == nil {
		return fmt.Errorf(" cascade.Run: no rainfall time series set")
	}
	if useEP {
		if len(c.ep) != len(c.rain) {
			return fmt.Errorf(" cascade.Run: evapotranspiration series length %d does not match rainfall length %d", len(c.ep), len(c.rain))
		}
	} else {
		fmt.Println(" warning: neglecting evapotranspiration")
	}

	nt := len(c.rain)
	c.tm = make([]float64, nt)
	c.q = make([]float64, 0, nt)
	for i, p := range c.rain {
		c.tm[i] = float64(i) * c.dt
		if useEP {
			c.q = append(c.q, c.Update(p, c.ep[i]))
		} else {
			c.q = append(c.q, c.Update(p, 0.))
		}
	}
	return nil
}
