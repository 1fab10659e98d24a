package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"

	"github.com/JambayBHUTAN/bucket-hydrology/cascade"
	"github.com/JambayBHUTAN/bucket-hydrology/forcing"
	"github.com/JambayBHUTAN/bucket-hydrology/postpro"
	"github.com/JambayBHUTAN/bucket-hydrology/reservoir"
)

func main() {
	frcfp := flag.String("frc", "", "forcing csv (date,rain[,ep])")
	prmfp := flag.String("prm", "", "reservoir parameter csv (tefold,fdisch,cap per layer, surface first)")
	obsfp := flag.String("obs", "", "observed discharge csv (date,value), optional")
	chkfp := flag.String("chk", "", "water-level checkpoint (gob), read if present, written after spin-up")
	outp := flag.String("o", "", "output directory prefix")
	dt := flag.Float64("dt", 1., "timestep length (days)")
	spinup := flag.Bool("spinup", false, "run the series once for spin-up before the scored pass")
	html := flag.Bool("html", false, "also render an interactive html hydrograph")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	if *frcfp == "" || *prmfp == "" {
		log.Fatalf(" run error: -frc and -prm are required")
	}

	// load forcing
	frc, err := forcing.LoadCsv(*frcfp)
	if err != nil {
		log.Fatalf(" run error: %v", err)
	}
	if err := frc.CheckAndPrint(); err != nil {
		log.Fatalf(" run error: %v", err)
	}
	tt.Print("Forcing load complete\n")

	// build cascade from the layer parameter table
	c := cascade.New(*dt, loadReservoirs(*prmfp)...)
	c.SetRainfall(frc.P)
	if frc.EP != nil {
		if err := c.SetEvapotranspiration(frc.EP); err != nil {
			log.Fatalf(" run error: %v", err)
		}
	}

	// seed from a prior checkpoint
	if *chkfp != "" {
		if _, ok := mmio.FileExists(*chkfp); ok {
			h, err := cascade.LoadGobLevels(*chkfp)
			if err != nil {
				log.Fatalf(" run error: %v", err)
			}
			if err := c.Initialize(h); err != nil {
				log.Fatalf(" run error: %v", err)
			}
			fmt.Printf(" initialized from checkpoint %s\n", *chkfp)
		}
	}

	if *spinup {
		spin(c, frc)
		if *chkfp != "" {
			if err := c.SaveGobLevels(*chkfp); err != nil {
				log.Fatalf(" run error: %v", err)
			}
		}
		tt.Print("Spin-up complete\n")
	}

	// scored pass
	if err := c.Run(nil, frc.EP != nil); err != nil {
		log.Fatalf(" run error: %v", err)
	}
	tt.Print("Simulation complete\n")

	if *obsfp != "" {
		_, obs, err := forcing.LoadObsCsv(*obsfp)
		if err != nil {
			log.Fatalf(" run error: %v", err)
		}
		if len(obs) != len(frc.T) {
			log.Fatalf(" run error: %d observations for %d forcing steps", len(obs), len(frc.T))
		}
		nse, nd := c.NashSutcliffe(obs)
		fmt.Printf(" NSE: %.3f (%d points dropped)\n", nse, nd)
		postpro.Report(*outp, frc.T, obs, c.Discharge())
		if *html {
			if err := postpro.RenderHTML(*outp+"hyd.html", frc.T, frc.P, c.Discharge(), obs); err != nil {
				log.Fatalf(" run error: %v", err)
			}
		}
	} else {
		postpro.WriteHydrograph(*outp, frc.T, frc.P, c.Discharge())
		if *html {
			if err := postpro.RenderHTML(*outp+"hyd.html", frc.T, frc.P, c.Discharge(), nil); err != nil {
				log.Fatalf(" run error: %v", err)
			}
		}
	}
}

// spin drives the full series once, step by step, to settle reservoir
// storage before the scored pass.
func spin(c *cascade.Cascade, frc *forcing.Forcing) {
	uiprogress.Start()
	bar := uiprogress.AddBar(len(frc.T)).AppendCompleted().PrependElapsed()
	for i := range frc.T {
		ep := 0.
		if frc.EP != nil {
			ep = frc.EP[i]
		}
		c.Update(frc.P[i], ep)
		bar.Incr()
	}
	uiprogress.Stop()
}

// loadReservoirs reads the layer parameter table, ordered surface to deep.
// A non-positive or missing cap is taken as unbounded.
func loadReservoirs(fp string) []*reservoir.Res {
	tbl, err := mmio.ReadCSV(fp, 1)
	if err != nil {
		log.Fatalf(" run error: reading %s: %v", fp, err)
	}
	if len(tbl) == 0 {
		log.Fatalf(" run error: %s: no reservoir layers given", fp)
	}
	rsv := make([]*reservoir.Res, len(tbl))
	for i, ln := range tbl {
		if len(ln) < 2 {
			log.Fatalf(" run error: %s line %d: need tefold,fdisch[,cap]", fp, i+1)
		}
		hmax := math.Inf(1)
		if len(ln) > 2 && ln[2] > 0. {
			hmax = ln[2]
		}
		rsv[i] = reservoir.New(ln[0], ln[1], hmax)
	}
	return rsv
}
