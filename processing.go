package printcolor

import (
	"log"
	"sync"

	"github.com/brandquad/printcolor/colorutils"
)

type Config struct {
	DatasetPath        string
	SearchLimit        int
	SpotThreshold      float64
	DeltaEFormula      colorutils.Formula
	MaxCpuCount        int
	ICCProfileFilepath string
	SwatchSize         int
	DebugMode          bool
}

// Service bundles the database and calculators behind one configuration.
// It is safe for concurrent use.
type Service struct {
	c  Config
	db *Database

	substratesOnce sync.Once
	substrates     *SubstrateTable
	substratesErr  error
}

func New(c Config) *Service {
	if c.SearchLimit <= 0 {
		c.SearchLimit = DefaultSearchLimit
	}
	if !(c.SpotThreshold > 0) {
		c.SpotThreshold = DefaultSpotThreshold
	}
	if c.DeltaEFormula == "" {
		c.DeltaEFormula = colorutils.CIE76
	}
	if c.MaxCpuCount <= 0 {
		c.MaxCpuCount = 1
	}

	db := NewDatabase()
	if c.DatasetPath != "" {
		db = NewDatabaseFromFile(c.DatasetPath)
	}
	if c.DebugMode {
		log.Println("DEBUG MODE ON")
		log.Printf("[D] dataset %s, search limit %d, spot threshold %g, formula %s",
			db.source, c.SearchLimit, c.SpotThreshold, c.DeltaEFormula)
	}
	return &Service{c: c, db: db}
}

func (s *Service) Config() Config {
	return s.c
}

func (s *Service) Database() *Database {
	return s.db
}

func (s *Service) Resolve(name string) (MatchResult, error) {
	return s.db.Resolve(name)
}

// Search uses the configured limit when limit is not positive.
func (s *Service) Search(q SearchQuery, limit int) (*SearchResult, error) {
	target, err := q.Target()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.c.SearchLimit
	}
	return s.db.Search(target, limit)
}

func (s *Service) DeltaE(a, b colorutils.CMYK) (DeltaEResult, error) {
	return DeltaEWith(s.c.DeltaEFormula, a, b)
}

// SeparateSpots uses the configured threshold when threshold is zero, a
// negative threshold is rejected.
func (s *Service) SeparateSpots(colors []colorutils.CMYK, threshold float64) (*SpotSeparation, error) {
	if threshold == 0 {
		threshold = s.c.SpotThreshold
	}
	return s.db.SeparateSpots(colors, threshold, s.c.MaxCpuCount)
}

func (s *Service) SimulateSubstrate(r SubstrateRequest) (SubstrateResult, error) {
	s.substratesOnce.Do(func() {
		s.substrates, s.substratesErr = DefaultSubstrateTable()
		if s.substratesErr != nil {
			log.Printf("[!] Substrate profiles unavailable: %v", s.substratesErr)
		}
	})
	if s.substratesErr != nil {
		return SubstrateResult{}, s.substratesErr
	}
	return s.substrates.Simulate(r)
}

func (s *Service) InkConsumption(r InkRequest) (InkResult, error) {
	return InkConsumption(r)
}

func (s *Service) PrintCost(r CostRequest) (CostResult, error) {
	return PrintCost(r)
}

func (s *Service) ConvertPaperWeight(value float64, from, to PaperUnit) (float64, error) {
	return ConvertPaperWeight(value, from, to)
}

func (s *Service) BarcodeCoverage(r BarcodeRequest) (BarcodeResult, error) {
	return BarcodeCoverage(r)
}

func (s *Service) Preflight(r PreflightRequest) (PreflightResult, error) {
	return Preflight(r)
}

// ICCProfile reads path, or the configured profile when path is empty.
func (s *Service) ICCProfile(path string) (*ICCProfileInfo, error) {
	if path == "" {
		path = s.c.ICCProfileFilepath
	}
	return ReadICCProfile(path)
}
