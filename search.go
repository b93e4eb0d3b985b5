package printcolor

import (
	"fmt"
	"sort"

	"github.com/brandquad/printcolor/colorutils"
)

const DefaultSearchLimit = 5

// SearchTarget is the color a proximity search is centered on, either a
// HexTarget or a CMYKTarget.
type SearchTarget interface {
	// Mode describes the target for the search echo, e.g. "hex #FF0000".
	Mode() string
	lab() (colorutils.Lab, error)
}

type HexTarget string

func (h HexTarget) Mode() string {
	return "hex " + string(h)
}

func (h HexTarget) lab() (colorutils.Lab, error) {
	return colorutils.Hex2lab(string(h))
}

type CMYKTarget colorutils.CMYK

func (c CMYKTarget) Mode() string {
	return colorutils.CMYK(c).String()
}

func (c CMYKTarget) lab() (colorutils.Lab, error) {
	return colorutils.Cmyk2lab(colorutils.CMYK(c))
}

// SearchQuery carries loosely typed search input, as it arrives from flags
// or JSON, where every field is optional.
type SearchQuery struct {
	Hex string   `json:"hex_color,omitempty"`
	C   *float64 `json:"c,omitempty"`
	M   *float64 `json:"m,omitempty"`
	Y   *float64 `json:"y,omitempty"`
	K   *float64 `json:"k,omitempty"`
}

// Target requires exactly one of a hex color or all four CMYK channels.
func (q SearchQuery) Target() (SearchTarget, error) {
	channels := []*float64{q.C, q.M, q.Y, q.K}
	set := 0
	for _, ch := range channels {
		if ch != nil {
			set++
		}
	}

	switch {
	case q.Hex != "" && set > 0:
		return nil, invalidInput("hex color and CMYK values are mutually exclusive")
	case q.Hex != "":
		return HexTarget(q.Hex), nil
	case set == len(channels):
		return CMYKTarget{C: *q.C, M: *q.M, Y: *q.Y, K: *q.K}, nil
	case set > 0:
		return nil, invalidInput("incomplete CMYK values, all four of c, m, y, k are required")
	}
	return nil, invalidInput("provide either a hex color or all four CMYK values (c, m, y, k)")
}

// RankedMatch is a search hit with its CIE76 distance to the target,
// rounded to 2 decimals.
type RankedMatch struct {
	MatchResult
	DeltaE float64 `json:"delta_e"`
}

type SearchResult struct {
	Matches    []RankedMatch `json:"matches"`
	SearchType string        `json:"search_type"`
}

type ranked struct {
	entry    *Entry
	distance float64
}

// Search returns the limit entries closest to target in Lab space, nearest
// first. Equal distances keep dataset order. A non-positive limit means
// DefaultSearchLimit, a limit past the dataset size returns everything.
func (db *Database) Search(target SearchTarget, limit int) (*SearchResult, error) {
	if target == nil {
		return nil, invalidInput("provide either a hex color or all four CMYK values (c, m, y, k)")
	}
	targetLab, err := target.lab()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	entries, err := db.load()
	if err != nil {
		return nil, err
	}

	scored := make([]ranked, len(entries))
	for i := range entries {
		scored[i] = ranked{
			entry:    &entries[i],
			distance: colorutils.DeltaE(targetLab, entries[i].lab),
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].distance < scored[j].distance
	})

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	limit = min(limit, len(scored))

	matches := make([]RankedMatch, 0, limit)
	for _, s := range scored[:limit] {
		matches = append(matches, RankedMatch{
			MatchResult: s.entry.Match(),
			DeltaE:      colorutils.RoundDeltaE(s.distance),
		})
	}
	return &SearchResult{Matches: matches, SearchType: target.Mode()}, nil
}

// Nearest is the single closest entry to lab and its unrounded distance.
func (db *Database) Nearest(lab colorutils.Lab) (Entry, float64, error) {
	entries, err := db.load()
	if err != nil {
		return Entry{}, 0, err
	}

	best, bestDistance := 0, colorutils.DeltaE(lab, entries[0].lab)
	for i := 1; i < len(entries); i++ {
		if d := colorutils.DeltaE(lab, entries[i].lab); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return entries[best], bestDistance, nil
}
