package cascade

import (
	"fmt"
	"math"
)

// NashSutcliffe computes the Nash-Sutcliffe model efficiency of the last
// run's hydrograph against an observed discharge series. Positions where
// either series is non-finite are excluded from both sums; ndrop reports how
// many were excluded (an advisory is printed when nonzero). A zero-variance
// observed series yields a non-finite efficiency.
func (c *Cascade) NashSutcliffe(obs []float64) (nse float64, ndrop int) {
	n := len(c.q)
	if len(obs) < n {
		n = len(obs)
	}

	fo, fs := make([]float64, 0, n), make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(obs[i]*c.q[i]) || math.IsInf(obs[i]*c.q[i], 0) {
			ndrop++
			continue
		}
		fo = append(fo, obs[i])
		fs = append(fs, c.q[i])
	}
	if ndrop > 0 {
		fmt.Printf(" calculated with %d no-data points\n", ndrop)
	}

	om := 0.
	for _, v := range fo {
		om += v
	}
	om /= float64(len(fo))

	num, den := 0., 0.
	for i := range fo {
		num += (fs[i] - fo[i]) * (fs[i] - fo[i])
		den += (fo[i] - om) * (fo[i] - om)
	}
	return 1. - num/den, ndrop
}
