package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brandquad/printcolor"
	"github.com/brandquad/printcolor/colorutils"
	"github.com/brandquad/printcolor/swatch"
	"github.com/davidbyttow/govips/v2/vips"
)

type chip struct {
	label string
	hex   string
}

type command func(svc *printcolor.Service, args []string) (any, []chip, error)

var commands = map[string]command{
	"resolve":   resolveCmd,
	"search":    searchCmd,
	"deltae":    deltaECmd,
	"spot":      spotCmd,
	"substrate": substrateCmd,
	"ink":       inkCmd,
	"cost":      costCmd,
	"paper":     paperCmd,
	"barcode":   barcodeCmd,
	"preflight": preflightCmd,
	"icc":       iccCmd,
	"swatch":    swatchCmd,
}

// parseCMYK reads "c,m,y,k".
func parseCMYK(s string) (colorutils.CMYK, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return colorutils.CMYK{}, fmt.Errorf("%w: CMYK must be \"c,m,y,k\", got %q", printcolor.ErrInvalidInput, s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return colorutils.CMYK{}, fmt.Errorf("%w: %w", printcolor.ErrInvalidInput, err)
		}
		v[i] = f
	}
	return colorutils.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
}

// optionalFloat is a float flag that remembers whether it was set.
type optionalFloat struct {
	v *float64
}

func (o *optionalFloat) String() string {
	if o.v == nil {
		return ""
	}
	return strconv.FormatFloat(*o.v, 'f', -1, 64)
}

func (o *optionalFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.v = &f
	return nil
}

func resolveCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	if len(args) == 0 {
		return nil, nil, errors.New("resolve: a color name is required")
	}
	match, err := svc.Resolve(strings.Join(args, " "))
	if err != nil {
		return nil, nil, err
	}
	return match, []chip{{match.Name, match.Hex}}, nil
}

func searchCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	hex := fs.String("hex", "", "target hex color")
	limit := fs.Int("limit", 0, "number of matches")
	var c, m, y, k optionalFloat
	fs.Var(&c, "c", "cyan")
	fs.Var(&m, "m", "magenta")
	fs.Var(&y, "y", "yellow")
	fs.Var(&k, "k", "black")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	res, err := svc.Search(printcolor.SearchQuery{Hex: *hex, C: c.v, M: m.v, Y: y.v, K: k.v}, *limit)
	if err != nil {
		return nil, nil, err
	}
	chips := make([]chip, len(res.Matches))
	for i, match := range res.Matches {
		chips[i] = chip{fmt.Sprintf("%s (%g)", match.Name, match.DeltaE), match.Hex}
	}
	return res, chips, nil
}

func deltaECmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	if len(args) != 2 {
		return nil, nil, errors.New("deltae: two CMYK colors are required")
	}
	a, err := parseCMYK(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := parseCMYK(args[1])
	if err != nil {
		return nil, nil, err
	}
	res, err := svc.DeltaE(a, b)
	if err != nil {
		return nil, nil, err
	}
	return res, cmykChips(a, b), nil
}

func spotCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("spot", flag.ExitOnError)
	list := fs.String("colors", "", `JSON list, e.g. [{"c":0,"m":95,"y":100,"k":0}]`)
	file := fs.String("file", "", "read the JSON list from a file")
	threshold := fs.Float64("threshold", 0, "Delta E cutoff for spot colors")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	var src interface{} = *list
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return nil, nil, err
		}
		src = data
	}
	colors, err := printcolor.ParseColorList(src)
	if err != nil {
		return nil, nil, err
	}

	res, err := svc.SeparateSpots(colors, *threshold)
	if err != nil {
		return nil, nil, err
	}
	var chips []chip
	for _, e := range res.SpotColors {
		chips = append(chips, chip{"spot " + e.NearestPantone, e.Hex})
	}
	for _, e := range res.ProcessColors {
		chips = append(chips, chip{"process " + e.Color.String(), e.Hex})
	}
	return res, chips, nil
}

func substrateCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("substrate", flag.ExitOnError)
	substrate := fs.String("substrate", string(printcolor.SubstrateUncoated), "paper substrate")
	method := fs.String("method", string(printcolor.MethodOffset), "offset, digital or flexo")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		return nil, nil, errors.New("substrate: one CMYK color is required")
	}
	color, err := parseCMYK(fs.Arg(0))
	if err != nil {
		return nil, nil, err
	}

	res, err := svc.SimulateSubstrate(printcolor.SubstrateRequest{
		Color:     color,
		Substrate: printcolor.Substrate(*substrate),
		Method:    printcolor.PrintMethod(*method),
	})
	if err != nil {
		return nil, nil, err
	}
	return res, []chip{{"original", res.Original.Hex}, {"simulated", res.Simulated.Hex}}, nil
}

func inkCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("ink", flag.ExitOnError)
	var r printcolor.InkRequest
	fs.Float64Var(&r.WidthMM, "width", 0, "print width, mm")
	fs.Float64Var(&r.HeightMM, "height", 0, "print height, mm")
	fs.Float64Var(&r.CoveragePercent, "coverage", 0, "ink coverage, percent")
	method := fs.String("method", string(printcolor.MethodOffset), "print method")
	fs.IntVar(&r.Quantity, "quantity", 1, "copies")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	r.Method = printcolor.PrintMethod(*method)

	res, err := svc.InkConsumption(r)
	return res, nil, err
}

func costCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("cost", flag.ExitOnError)
	var r printcolor.CostRequest
	fs.Float64Var(&r.WidthMM, "width", 0, "print width, mm")
	fs.Float64Var(&r.HeightMM, "height", 0, "print height, mm")
	fs.IntVar(&r.Quantity, "quantity", 1, "copies")
	fs.IntVar(&r.NumColors, "colors", 4, "number of inks")
	fs.Float64Var(&r.PaperGSM, "gsm", 100, "paper weight, gsm")
	method := fs.String("method", string(printcolor.MethodOffset), "print method")
	fs.IntVar(&r.Sides, "sides", 1, "printed sides, 1 or 2")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	r.Method = printcolor.PrintMethod(*method)

	res, err := svc.PrintCost(r)
	return res, nil, err
}

type paperResult struct {
	Value  float64              `json:"value"`
	From   printcolor.PaperUnit `json:"from_unit"`
	To     printcolor.PaperUnit `json:"to_unit"`
	Result float64              `json:"result"`
}

func paperCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("paper", flag.ExitOnError)
	from := fs.String("from", string(printcolor.UnitGSM), "gsm, lb_text or lb_cover")
	to := fs.String("to", string(printcolor.UnitLbText), "gsm, lb_text or lb_cover")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		return nil, nil, errors.New("paper: a weight value is required")
	}
	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", printcolor.ErrInvalidInput, err)
	}

	out, err := svc.ConvertPaperWeight(value, printcolor.PaperUnit(*from), printcolor.PaperUnit(*to))
	if err != nil {
		return nil, nil, err
	}
	return paperResult{value, printcolor.PaperUnit(*from), printcolor.PaperUnit(*to), out}, nil, nil
}

func barcodeCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("barcode", flag.ExitOnError)
	var r printcolor.BarcodeRequest
	kind := fs.String("type", string(printcolor.BarcodeEAN13), "code128, ean13, qr or datamatrix")
	fs.Float64Var(&r.WidthMM, "width", 0, "barcode width, mm")
	fs.Float64Var(&r.HeightMM, "height", 0, "barcode height, mm")
	fs.Float64Var(&r.Density, "density", 0.5, "bar density in (0, 1]")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	r.Type = printcolor.BarcodeType(*kind)

	res, err := svc.BarcodeCoverage(r)
	return res, nil, err
}

func preflightCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("preflight", flag.ExitOnError)
	var r printcolor.PreflightRequest
	mode := fs.String("mode", string(printcolor.ColorModeCMYK), "cmyk, rgb, grayscale or spot")
	fs.Float64Var(&r.ResolutionDPI, "dpi", 300, "image resolution")
	fs.BoolVar(&r.HasBleed, "bleed", false, "document has bleed")
	fs.Float64Var(&r.BleedMM, "bleed-mm", 0, "bleed size, mm")
	fs.Float64Var(&r.WidthMM, "width", 0, "document width, mm")
	fs.Float64Var(&r.HeightMM, "height", 0, "document height, mm")
	fs.BoolVar(&r.FontsEmbedded, "fonts", false, "all fonts are embedded")
	fs.Float64Var(&r.InkCoveragePercent, "ink", printcolor.DefaultInkCoverage, "total ink coverage, percent")
	fs.BoolVar(&r.HasTransparency, "transparency", false, "file has transparency")
	method := fs.String("method", string(printcolor.MethodOffset), "target print method")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	r.ColorMode = printcolor.ColorMode(*mode)
	r.TargetMethod = printcolor.PrintMethod(*method)

	res, err := svc.Preflight(r)
	return res, nil, err
}

func iccCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	res, err := svc.ICCProfile(path)
	return res, nil, err
}

type swatchResult struct {
	Path  string   `json:"path"`
	Size  int      `json:"size"`
	Chips []string `json:"chips"`
}

func swatchCmd(svc *printcolor.Service, args []string) (any, []chip, error) {
	fs := flag.NewFlagSet("swatch", flag.ExitOnError)
	out := fs.String("out", "swatch.png", "output PNG file")
	size := fs.Int("size", svc.Config().SwatchSize, "chip size, px")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() == 0 {
		return nil, nil, errors.New("swatch: at least one color is required")
	}

	chips := make([]chip, 0, fs.NArg())
	hexes := make([]string, 0, fs.NArg())
	for _, arg := range fs.Args() {
		var hex string
		if rgb, err := colorutils.Hex2rgb(arg); err == nil {
			hex = rgb.Hex
		} else {
			match, err := svc.Resolve(arg)
			if err != nil {
				return nil, nil, err
			}
			hex = match.Hex
		}
		hexes = append(hexes, hex)
		chips = append(chips, chip{arg, hex})
	}

	vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
	vips.Startup(&vips.Config{
		ConcurrencyLevel: svc.Config().MaxCpuCount,
	})
	defer vips.Shutdown()

	if err := swatch.WritePNG(*out, hexes, *size); err != nil {
		return nil, nil, err
	}
	return swatchResult{Path: *out, Size: *size, Chips: hexes}, chips, nil
}

func cmykChips(colors ...colorutils.CMYK) []chip {
	chips := make([]chip, 0, len(colors))
	for _, c := range colors {
		if rgb, err := colorutils.Cmyk2rgb(c); err == nil {
			chips = append(chips, chip{c.String(), rgb.Hex})
		}
	}
	return chips
}
