package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brandquad/printcolor"
	"github.com/brandquad/printcolor/colorutils"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DatasetPath        string  `envconfig:"PRINTCOLOR_DATASET" default:""`
	SearchLimit        int     `envconfig:"PRINTCOLOR_SEARCH_LIMIT" default:"5"`
	SpotThreshold      float64 `envconfig:"PRINTCOLOR_SPOT_THRESHOLD" default:"5.0"`
	DeltaEFormula      string  `envconfig:"PRINTCOLOR_DELTA_E" default:"cie76"`
	MaxCpuCount        int     `envconfig:"MAX_CPU_COUNT" default:"4"`
	ICCProfileFilepath string  `envconfig:"ICC_PROFILE_PATH" default:"./icc/sRGB_Profile.icc"`
	SwatchSize         int     `envconfig:"PRINTCOLOR_SWATCH_SIZE" default:"128"`
	DebugMode          bool    `envconfig:"PRINTCOLOR_DEBUG" default:"false"`
}

func (c Config) MakeConfig() printcolor.Config {
	formula, err := colorutils.ParseFormula(c.DeltaEFormula)
	if err != nil {
		log.Fatalln(err)
	}
	return printcolor.Config{
		DatasetPath:        c.DatasetPath,
		SearchLimit:        c.SearchLimit,
		SpotThreshold:      c.SpotThreshold,
		DeltaEFormula:      formula,
		MaxCpuCount:        c.MaxCpuCount,
		ICCProfileFilepath: c.ICCProfileFilepath,
		SwatchSize:         c.SwatchSize,
		DebugMode:          c.DebugMode,
	}
}

const usage = `usage: printcolor [-chips] <command> [flags] [args]

commands:
  resolve    NAME                 resolve a Pantone name
  search     -hex | -c -m -y -k   nearest Pantone colors
  deltae     CMYK CMYK            color difference, CMYK as "c,m,y,k"
  spot       -colors JSON         spot vs process separation
  substrate  CMYK                 simulate a substrate color shift
  ink                             ink consumption estimate
  cost                            print job cost estimate
  paper      VALUE                paper weight conversion
  barcode                         barcode ink coverage
  preflight                       preflight check
  icc        [PATH]               ICC profile header
  swatch     -out FILE COLOR...   PNG chips, COLOR is a hex or a Pantone name
`

func main() {
	// .env is optional
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Fatalln(err)
	}

	showChips := flag.Bool("chips", false, "print color chips to stderr")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	config := c.MakeConfig()
	if _, ok := os.LookupEnv("DEBUG"); ok {
		config.DebugMode = true
	}
	svc := printcolor.New(config)

	name, args := flag.Arg(0), flag.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		flag.Usage()
		log.Fatalf("unknown command %q", name)
	}

	result, chips, err := cmd(svc, args)
	if err != nil {
		log.Fatalln(err)
	}
	if *showChips && len(chips) > 0 {
		fmt.Fprintln(os.Stderr, renderChips(chips))
	}

	report, err := printcolor.NewReport(name, result)
	if err != nil {
		log.Fatalln(err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(report); err != nil {
		log.Fatalln(err)
	}
}
