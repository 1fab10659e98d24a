package forcing

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, s string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fp, []byte(s), 0644); err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestLoadCsv(t *testing.T) {
	fp := writeTemp(t, "frc.csv", "date,rain,ep\n2020-01-01,10.5,1.2\n2020-01-02,0,1.4\n2020-01-03,3.25,1.1\n")
	frc, err := LoadCsv(fp)
	if err != nil {
		t.Fatal(err)
	}
	if len(frc.T) != 3 || len(frc.P) != 3 || len(frc.EP) != 3 {
		t.Fatalf("lengths: %d/%d/%d, want 3", len(frc.T), len(frc.P), len(frc.EP))
	}
	if frc.P[0] != 10.5 || frc.EP[2] != 1.1 {
		t.Errorf("parse: P[0]=%f EP[2]=%f", frc.P[0], frc.EP[2])
	}
	if frc.IntervalSec != 86400. {
		t.Errorf("IntervalSec = %f, want 86400", frc.IntervalSec)
	}
	if !frc.T[1].Equal(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date parse: %v", frc.T[1])
	}
}

func TestLoadCsvNoEP(t *testing.T) {
	fp := writeTemp(t, "frc.csv", "date,rain\n2020-01-01,10\n2020-01-02,0\n")
	frc, err := LoadCsv(fp)
	if err != nil {
		t.Fatal(err)
	}
	if frc.EP != nil {
		t.Errorf("EP = %v, want nil", frc.EP)
	}
}

func TestCheckMismatch(t *testing.T) {
	frc := Forcing{
		T:           []time.Time{time.Now(), time.Now().AddDate(0, 0, 1)},
		P:           []float64{1., 2.},
		EP:          []float64{1.},
		IntervalSec: 86400.,
	}
	if err := frc.Check(); err == nil {
		t.Error("expected length-mismatch error")
	}
	frc.EP = nil
	if err := frc.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestBuildEPChang(t *testing.T) {
	frc := Forcing{
		T:           []time.Time{time.Now(), time.Now().AddDate(0, 0, 1)},
		P:           []float64{1., 2.},
		IntervalSec: 86400.,
	}
	if err := frc.BuildEPChang([]float64{20., -5.}, []float64{10., -10.}, []float64{12., 8.}); err != nil {
		t.Fatal(err)
	}
	if frc.EP[0] <= 0. || frc.EP[1] != 0. {
		t.Errorf("EP = %v", frc.EP)
	}
	if err := frc.BuildEPChang([]float64{20.}, []float64{10.}, []float64{12.}); err == nil {
		t.Error("expected length-mismatch error")
	}
}

func TestGobRoundTrip(t *testing.T) {
	frc := Forcing{
		T:           []time.Time{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		P:           []float64{4.2},
		EP:          []float64{.8},
		IntervalSec: 86400.,
	}
	fp := filepath.Join(t.TempDir(), "frc.gob")
	if err := frc.SaveGob(fp); err != nil {
		t.Fatal(err)
	}
	frc2, err := LoadGob(fp)
	if err != nil {
		t.Fatal(err)
	}
	if !frc2.T[0].Equal(frc.T[0]) || frc2.P[0] != frc.P[0] || frc2.EP[0] != frc.EP[0] || frc2.IntervalSec != frc.IntervalSec {
		t.Errorf("round trip mismatch: %+v", frc2)
	}
}
