package cascade

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveGobLevels checkpoints the current reservoir water levels, e.g. at the
// end of a spin-up run.
func (c *Cascade) SaveGobLevels(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" cascade.SaveGobLevels %v", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(c.ExportLevels()); err != nil {
		return fmt.Errorf(" cascade.SaveGobLevels %v", err)
	}
	return nil
}

// LoadGobLevels reads a water-level checkpoint written by SaveGobLevels, for
// passing to Initialize.
func LoadGobLevels(fp string) ([]float64, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf(" cascade.LoadGobLevels %v", err)
	}
	defer f.Close()
	var h []float64
	if err := gob.NewDecoder(f).Decode(&h); err != nil {
		return nil, fmt.Errorf(" cascade.LoadGobLevels %v", err)
	}
	return h, nil
}
