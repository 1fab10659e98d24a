// Package postpro renders and summarizes cascade output. Presentation only:
// it consumes the time axis, forcing and discharge series, and an optional
// observed hydrograph; the simulation core holds no rendering dependency.
package postpro

import (
	"fmt"
	"math"
	"time"

	mmplt "github.com/maseology/mmPlot"
	"github.com/maseology/mmio"
	"github.com/maseology/objfunc"
)

// filterFinite drops positions where either series is non-finite.
func filterFinite(dt []time.Time, obs, sim []float64) ([]time.Time, []float64, []float64, int) {
	fdt, fo, fs, nd := make([]time.Time, 0, len(sim)), make([]float64, 0, len(sim)), make([]float64, 0, len(sim)), 0
	for i := range sim {
		if math.IsNaN(obs[i]*sim[i]) || math.IsInf(obs[i]*sim[i], 0) {
			nd++
			continue
		}
		fdt = append(fdt, dt[i])
		fo = append(fo, obs[i])
		fs = append(fs, sim[i])
	}
	return fdt, fo, fs, nd
}

// Report writes the observed-vs-simulated hydrograph (csv and png) and
// prints fit statistics, returning the Nash-Sutcliffe efficiency.
func Report(outdirprfx string, dt []time.Time, obs, sim []float64) float64 {
	fdt, fo, fs, nd := filterFinite(dt, obs, sim)
	if nd > 0 {
		fmt.Printf(" calculated with %d no-data points\n", nd)
	}

	kge := objfunc.KGE(fo, fs)
	nse := objfunc.NSE(fo, fs)
	rmse := objfunc.RMSE(fo, fs)
	bias := objfunc.Bias(fo, fs)
	fmt.Printf("  KGE: %.3f  NSE: %.3f  RMSE: %.3f  Bias: %.3f\n", kge, nse, rmse, bias)

	mmio.WriteCsvDateFloats(outdirprfx+"hdgrph.csv", "date,obs,sim", fdt, fo, fs)
	mmplt.ObsSim(outdirprfx+"hyd.png", fo, fs)
	return nse
}

// WriteHydrograph writes the simulated hydrograph with its rainfall forcing,
// no observations needed.
func WriteHydrograph(outdirprfx string, dt []time.Time, rain, sim []float64) {
	mmio.WriteCsvDateFloats(outdirprfx+"hdgrph.csv", "date,rain,sim", dt, rain, sim)
}
