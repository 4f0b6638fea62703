package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/AnkushinDaniil/doubleslit/entity/mode"
)

// writeCSV writes the particle impacts in Particles mode and the intensity
// profile otherwise.
func writeCSV(w io.Writer, result *Result) error {
	cw := csv.NewWriter(w)

	if result.Sim.Config().Mode == mode.Particles {
		if err := cw.Write([]string{"x", "y", "z"}); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for _, p := range result.Sim.Points() {
			if err := cw.Write([]string{formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z)}); err != nil {
				return fmt.Errorf("failed to write point: %w", err)
			}
		}
	} else {
		if err := cw.Write([]string{"x", "intensity"}); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		x, values := result.Profile.X(), result.Profile.Values()
		for i := range x {
			if err := cw.Write([]string{formatFloat(x[i]), formatFloat(values[i])}); err != nil {
				return fmt.Errorf("failed to write sample: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
