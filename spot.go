package printcolor

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/alitto/pond"
	"github.com/brandquad/printcolor/colorutils"
)

const DefaultSpotThreshold = 5.0

type SpotColorEntry struct {
	Color          colorutils.CMYK `json:"color"`
	Hex            string          `json:"hex"`
	NearestPantone string          `json:"nearest_pantone"`
	DeltaE         float64         `json:"delta_e"`
	Reason         string          `json:"reason"`
}

type SpotSeparation struct {
	SpotColors    []SpotColorEntry `json:"spot_colors"`
	ProcessColors []SpotColorEntry `json:"process_colors"`
	Reasoning     string           `json:"reasoning"`
}

// SeparateSpots splits colors into spot candidates, which have a Pantone
// entry within threshold, and process colors reproduced from CMYK. Input
// order is kept inside each group. Nearest matches are looked up on a pool
// of workers goroutines.
func (db *Database) SeparateSpots(colors []colorutils.CMYK, threshold float64, workers int) (*SpotSeparation, error) {
	if len(colors) == 0 {
		return nil, invalidInput("colors list must not be empty")
	}
	if !(threshold > 0) {
		return nil, invalidInput("threshold must be positive, got %g", threshold)
	}
	for i, c := range colors {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
	}
	if _, err := db.load(); err != nil {
		return nil, err
	}
	workers = max(1, min(workers, len(colors)))

	st := time.Now()
	log.Printf("[>] Separating %d colors, threshold %g, %d workers", len(colors), threshold, workers)

	panicHandler := func(p interface{}) {
		log.Printf("[!] Spot task panicked: %v", p)
	}
	pool := pond.New(workers, len(colors), pond.MinWorkers(workers), pond.PanicHandler(panicHandler))

	entries := make([]SpotColorEntry, len(colors))
	for i, c := range colors {
		i, c := i, c
		pool.Submit(func() {
			entries[i] = db.classifySpot(c, threshold)
		})
	}
	pool.StopAndWait()
	if pool.FailedTasks() > 0 {
		return nil, errors.New("spot separation failed")
	}

	result := &SpotSeparation{
		SpotColors:    []SpotColorEntry{},
		ProcessColors: []SpotColorEntry{},
	}
	for _, e := range entries {
		if e.DeltaE <= threshold {
			result.SpotColors = append(result.SpotColors, e)
		} else {
			result.ProcessColors = append(result.ProcessColors, e)
		}
	}
	result.Reasoning = fmt.Sprintf("Analyzed %d colors with Delta E threshold %g. "+
		"%d recommended as spot colors, %d as process colors. "+
		"Spot colors have a close Pantone match and will be more consistent across print runs. "+
		"Process colors are better served by standard CMYK mixing.",
		len(colors), threshold, len(result.SpotColors), len(result.ProcessColors))

	log.Printf("[<] Separated %d spot and %d process colors in %s",
		len(result.SpotColors), len(result.ProcessColors), time.Since(st))
	return result, nil
}

// classifySpot expects a validated color and a loaded database.
func (db *Database) classifySpot(c colorutils.CMYK, threshold float64) SpotColorEntry {
	rgb, err := colorutils.Cmyk2rgb(c)
	if err != nil {
		panic(err)
	}
	nearest, distance, err := db.Nearest(colorutils.Rgb2lab(rgb))
	if err != nil {
		panic(err)
	}

	e := SpotColorEntry{
		Color:          c,
		Hex:            rgb.Hex,
		NearestPantone: nearest.Name,
		DeltaE:         colorutils.RoundDeltaE(distance),
	}
	if e.DeltaE <= threshold {
		e.Reason = fmt.Sprintf("Close match to %s (Delta E = %g). Use as spot color for best accuracy.",
			e.NearestPantone, e.DeltaE)
	} else {
		e.Reason = fmt.Sprintf("No close Pantone match (nearest: %s, Delta E = %g). Reproduce as process (CMYK) color.",
			e.NearestPantone, e.DeltaE)
	}
	return e
}
