package forcing

import (
	"fmt"
	"math"

	"github.com/maseology/goHydro/pet"

	bpet "github.com/JambayBHUTAN/bucket-hydrology/pet"
)

// BuildEPMakkink fills the ET series from daily temperature extremes [°C]
// and global shortwave radiation kg [W/m²], using the Makkink
// radiation-based formulation at standard pressure. Series parallel the
// forcing date axis.
func (frc *Forcing) BuildEPMakkink(tx, tn, kg []float64) error {
	if len(tx) != len(frc.T) || len(tn) != len(frc.T) || len(kg) != len(frc.T) {
		return fmt.Errorf(" forcing.BuildEPMakkink: series lengths do not match date axis (%d)", len(frc.T))
	}
	frc.EP = make([]float64, len(frc.T))
	for i := range frc.T {
		tm := (tx[i] + tn[i]) / 2.
		if math.IsNaN(tm) || math.IsNaN(kg[i]) {
			return fmt.Errorf(" forcing.BuildEPMakkink: NaN at step %d", i)
		}
		frc.EP[i] = pet.Makkink(kg[i], tm, 101300., 0.61, -1.2e-4) * 1000. // [m/d] to [mm/d]
	}
	return frc.Check()
}

// BuildEPChang fills the ET series from daily temperature extremes [°C] and
// photoperiod [hr] using the Chang (2019) modified Thornthwaite formula, for
// when radiation data are unavailable.
func (frc *Forcing) BuildEPChang(tx, tn, photoperiod []float64) error {
	if len(tx) != len(frc.T) || len(tn) != len(frc.T) || len(photoperiod) != len(frc.T) {
		return fmt.Errorf(" forcing.BuildEPChang: series lengths do not match date axis (%d)", len(frc.T))
	}
	frc.EP = make([]float64, len(frc.T))
	for i := range frc.T {
		frc.EP[i] = bpet.Chang2019(tx[i], tn[i], photoperiod[i])
	}
	return frc.Check()
}
