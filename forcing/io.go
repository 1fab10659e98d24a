package forcing

import (
	"encoding/csv"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const dateFormat = "2006-01-02"

// LoadCsv reads a "date,rain[,ep]" file (header line expected, dates
// yyyy-mm-dd, depths in mm per step). intervalSec is inferred from the first
// two dates.
func LoadCsv(fp string) (*Forcing, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" forcing.LoadCsv %v", err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	if _, err := rdr.Read(); err != nil { // header
		return nil, fmt.Errorf(" forcing.LoadCsv %v", err)
	}

	var frc Forcing
	hasEP := false
	for ln := 2; ; ln++ {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf(" forcing.LoadCsv %v", err)
		}
		t, err := time.Parse(dateFormat, rec[0])
		if err != nil {
			return nil, fmt.Errorf(" forcing.LoadCsv line %d: date parse error: %v", ln, err)
		}
		p, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf(" forcing.LoadCsv line %d: %v", ln, err)
		}
		frc.T = append(frc.T, t)
		frc.P = append(frc.P, p)
		if len(rec) > 2 && rec[2] != "" {
			e, err := strconv.ParseFloat(rec[2], 64)
			if err != nil {
				return nil, fmt.Errorf(" forcing.LoadCsv line %d: %v", ln, err)
			}
			frc.EP = append(frc.EP, e)
			hasEP = true
		}
	}
	if !hasEP {
		frc.EP = nil
	}
	if len(frc.T) > 1 {
		frc.IntervalSec = frc.T[1].Sub(frc.T[0]).Seconds()
	} else {
		frc.IntervalSec = 86400.
	}
	if err := frc.Check(); err != nil {
		return nil, err
	}
	return &frc, nil
}

// LoadObsCsv reads an observed-discharge "date,value" file for hydrograph
// evaluation; values in the same depth-per-step units as the model output.
func LoadObsCsv(fp string) ([]time.Time, []float64, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, nil, fmt.Errorf(" forcing.LoadObsCsv %v", err)
	}
	defer f.Close()

	rdr := csv.NewReader(f)
	if _, err := rdr.Read(); err != nil { // header
		return nil, nil, fmt.Errorf(" forcing.LoadObsCsv %v", err)
	}

	var dts []time.Time
	var obs []float64
	for ln := 2; ; ln++ {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf(" forcing.LoadObsCsv %v", err)
		}
		t, err := time.Parse(dateFormat, rec[0])
		if err != nil {
			return nil, nil, fmt.Errorf(" forcing.LoadObsCsv line %d: date parse error: %v", ln, err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf(" forcing.LoadObsCsv line %d: %v", ln, err)
		}
		dts = append(dts, t)
		obs = append(obs, v)
	}
	return dts, obs, nil
}

// SaveGob caches the forcing set.
func (frc *Forcing) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" forcing.SaveGob %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(frc); err != nil {
		return fmt.Errorf(" forcing.SaveGob %v", err)
	}
	return nil
}

// LoadGob reads a forcing set cached with SaveGob.
func LoadGob(fp string) (*Forcing, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" forcing.LoadGob %v", err)
	}
	defer f.Close()
	var frc Forcing
	if err := gob.NewDecoder(f).Decode(&frc); err != nil {
		return nil, fmt.Errorf(" forcing.LoadGob %v", err)
	}
	return &frc, nil
}
