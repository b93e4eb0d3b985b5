package printcolor

import (
	"fmt"
	"log"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/brandquad/printcolor/assets"
	"github.com/brandquad/printcolor/colorutils"
)

// Entry is a named reference color.
type Entry struct {
	Name string          `json:"name"`
	CMYK colorutils.CMYK `json:"cmyk"`

	rgb colorutils.RGB
	lab colorutils.Lab
}

func (e Entry) RGB() colorutils.RGB {
	return e.rgb
}

func (e Entry) Lab() colorutils.Lab {
	return e.lab
}

// MatchResult is an entry enriched with its RGB hex rendering.
type MatchResult struct {
	Name string  `json:"name"`
	C    float64 `json:"c"`
	M    float64 `json:"m"`
	Y    float64 `json:"y"`
	K    float64 `json:"k"`
	Hex  string  `json:"hex"`
}

func (e Entry) Match() MatchResult {
	return MatchResult{
		Name: e.Name,
		C:    e.CMYK.C,
		M:    e.CMYK.M,
		Y:    e.CMYK.Y,
		K:    e.CMYK.K,
		Hex:  e.rgb.Hex,
	}
}

// Database is a read-only Pantone reference set. The dataset is read on
// first use and shared by all goroutines afterwards.
type Database struct {
	source string
	read   func() ([]byte, error)

	once    sync.Once
	entries []Entry
	index   map[string]int
	err     error
}

// NewDatabase uses the dataset embedded in the binary.
func NewDatabase() *Database {
	return &Database{
		source: "embedded",
		read:   func() ([]byte, error) { return assets.Pantones(), nil },
	}
}

// NewDatabaseFromFile reads the dataset from path on first use.
func NewDatabaseFromFile(path string) *Database {
	return &Database{
		source: path,
		read:   func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// NewDatabaseFromBytes wraps an in-memory dataset, name is only used in logs.
func NewDatabaseFromBytes(name string, data []byte) *Database {
	return &Database{
		source: name,
		read:   func() ([]byte, error) { return data, nil },
	}
}

func (db *Database) load() ([]Entry, error) {
	db.once.Do(func() {
		st := time.Now()
		log.Printf("[>] Loading Pantone database from %s", db.source)

		db.entries, db.index, db.err = db.build()
		if db.err != nil {
			log.Printf("[!] Pantone database unavailable: %v", db.err)
			return
		}
		log.Printf("[<] Loaded %d Pantone colors in %s", len(db.entries), time.Since(st))
	})
	return db.entries, db.err
}

func (db *Database) build() ([]Entry, map[string]int, error) {
	data, err := db.read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	colors, err := assets.DecodePantones(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	entries := make([]Entry, 0, len(colors))
	index := make(map[string]int, len(colors))
	for i, color := range colors {
		if len(color.Components) != 4 {
			return nil, nil, fmt.Errorf("%w: entry %d (%q) has %d components, want 4",
				ErrDataUnavailable, i, color.Name, len(color.Components))
		}
		cmyk := colorutils.CMYK{C: color.Components[0], M: color.Components[1], Y: color.Components[2], K: color.Components[3]}
		rgb, err := colorutils.Cmyk2rgb(cmyk)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: entry %d (%q): %w", ErrDataUnavailable, i, color.Name, err)
		}

		key := normalizeKey(color.Name)
		if key == "" {
			return nil, nil, fmt.Errorf("%w: entry %d has an empty name", ErrDataUnavailable, i)
		}
		if prev, ok := index[key]; ok {
			return nil, nil, fmt.Errorf("%w: %q and %q share the lookup key %q",
				ErrDataUnavailable, entries[prev].Name, color.Name, key)
		}
		index[key] = len(entries)
		entries = append(entries, Entry{
			Name: color.Name,
			CMYK: cmyk,
			rgb:  rgb,
			lab:  colorutils.Rgb2lab(rgb),
		})
	}
	return entries, index, nil
}

// Load returns the entries in dataset order. Every call returns the same
// contents, the caller owns the returned slice.
func (db *Database) Load() ([]Entry, error) {
	entries, err := db.load()
	if err != nil {
		return nil, err
	}
	return slices.Clone(entries), nil
}

// Len is the number of loaded entries, 0 when the dataset is unavailable.
func (db *Database) Len() int {
	entries, _ := db.load()
	return len(entries)
}

// Lookup finds an entry by its normalized name.
func (db *Database) Lookup(name string) (Entry, bool, error) {
	entries, err := db.load()
	if err != nil {
		return Entry{}, false, err
	}
	i, ok := db.index[normalizeKey(name)]
	if !ok {
		return Entry{}, false, nil
	}
	return entries[i], true, nil
}
