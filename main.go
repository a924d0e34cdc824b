package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/echoflaresat/paintmix/angle"
	"github.com/echoflaresat/paintmix/manip"
	"github.com/echoflaresat/paintmix/paint"
	"github.com/echoflaresat/paintmix/palette"
	"github.com/echoflaresat/paintmix/rgb"
	"github.com/echoflaresat/paintmix/sample"
	"github.com/echoflaresat/paintmix/seriesfile"
)

type config struct {
	series        *string
	mix           *string
	hex           *string
	sample        *string
	match         *bool
	rotate        *float64
	value, chroma *float64
	swatch        *string
	swatchSize    *int
	showHelp      *bool
}

func defineFlags() config {
	return config{
		series: flag.String("series", "", "Paint series file, or a directory of them"),

		mix:    flag.String("mix", "", `Paints to mix as "Name=parts,Name=parts"`),
		hex:    flag.String("rgb", "", "Colour to inspect, as #rrggbb"),
		sample: flag.String("sample", "", "Image of a paint swatch to inspect"),
		match:  flag.Bool("match", false, "Replace the colour with the most chromatic colour of its hue and value"),

		rotate: flag.Float64("rotate", 0.0, "Rotate the hue by this many degrees"),
		value:  flag.Float64("value", 0.0, "Change the value by this amount (-1 to 1)"),
		chroma: flag.Float64("chroma", 0.0, "Change the chroma by this amount (-1 to 1)"),

		swatch:     flag.String("swatch", "", "Write a PNG swatch of the result to this path"),
		swatchSize: flag.Int("swatch-size", 64, "Swatch width/height in pixels"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `paintmix - Artists' Paint Colour Mixer

Usage:
  %[1]s -series <file|dir>                    list the paints in a series
  %[1]s [-series <file|dir>] -mix <paints>     mix paints
  %[1]s -rgb <#rrggbb> | -sample <image>       inspect a colour

`, os.Args[0])

	printGroup("Colour Source", []string{"series", "mix", "rgb", "sample"})
	printGroup("Adjustments", []string{"match", "rotate", "value", "chroma"})
	printGroup("Output", []string{"swatch", "swatch-size"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-12s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {

	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	series, err := loadSeries(*cfg.series)
	if err != nil {
		log.Fatal(err)
	}

	var colour paint.Colour
	switch {
	case *cfg.mix != "":
		terms, err := parseMix(*cfg.mix)
		if err != nil {
			log.Fatalf("Invalid mix: %v", err)
		}
		mixed, err := mixPaints(newPalette(series), terms)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(paint.Describe(mixed))
		colour = mixed.Colour
	case *cfg.hex != "":
		c, err := paint.ParseHex(*cfg.hex)
		if err != nil {
			log.Fatal(err)
		}
		colour = paint.NewDefaultColour(c)
	case *cfg.sample != "":
		stats, err := sample.LoadMean(*cfg.sample)
		if err != nil {
			log.Fatalf("Could not read sample: %v", err)
		}
		fmt.Printf("Sample %s: %d pixels, uniform: %t\n", *cfg.sample, stats.Pixels, stats.Uniform())
		colour = paint.NewDefaultColour(stats.Mean)
	default:
		if len(series) == 0 {
			printHelp()
			os.Exit(2)
		}
		listSeries(os.Stdout, series)
		return
	}

	colour.SetRGB(adjust(cfg, colour.RGB()))
	printAttributes(os.Stdout, colour)

	if *cfg.swatch != "" {
		if err := writeSwatch(*cfg.swatch, colour.RGB(), *cfg.swatchSize); err != nil {
			log.Fatalf("Failed to write PNG: %v", err)
		}
	}
}

// loadSeries loads a single series file or every series in a directory.
// Broken files in a directory are reported and skipped.
func loadSeries(path string) ([]*paint.Series, error) {
	if path == "" {
		return nil, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		s, err := seriesfile.Load(path)
		if err != nil {
			return nil, err
		}
		return []*paint.Series{s}, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	series, err := seriesfile.LoadDir(ctx, path)
	if err != nil && len(series) > 0 {
		log.Printf("Some series files were skipped: %v", err)
		return series, nil
	}
	return series, err
}

func newPalette(series []*paint.Series) *palette.Palette {
	pl := palette.New()
	for _, c := range paint.IdealColours() {
		pl.AddPaint(c)
	}
	for _, s := range series {
		for _, tc := range s.Colours() {
			pl.AddPaint(tc)
		}
	}
	return pl
}

type mixTerm struct {
	name  string
	parts int
}

// parseMix parses "Name=parts,Name=parts". Names may contain spaces.
func parseMix(s string) ([]mixTerm, error) {
	var terms []mixTerm
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		i := strings.LastIndex(item, "=")
		if i < 0 {
			return nil, fmt.Errorf("%q: expected Name=parts", item)
		}
		name := strings.TrimSpace(item[:i])
		parts, err := strconv.Atoi(strings.TrimSpace(item[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", item, err)
		}
		if name == "" || parts < 0 {
			return nil, fmt.Errorf("%q: expected Name=parts", item)
		}
		terms = append(terms, mixTerm{name: name, parts: parts})
	}
	if len(terms) == 0 {
		return nil, errors.New("no paints given")
	}
	return terms, nil
}

func findPaint(pl *palette.Palette, name string) (paint.Paint, error) {
	var found []paint.Paint
	for _, p := range pl.Paints() {
		if strings.EqualFold(p.Name(), name) {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("no paint named %q", name)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%d paints are named %q", len(found), name)
	}
}

// mixPaints mixes the terms on pl. Mixtures of two or more paints are
// saved, and so named, in their simplest proportions.
func mixPaints(pl *palette.Palette, terms []mixTerm) (*paint.MixedColour, error) {
	for _, t := range terms {
		p, err := findPaint(pl, t.name)
		if err != nil {
			return nil, err
		}
		if err := pl.SetParts(p, t.parts); err != nil {
			return nil, err
		}
	}

	mixed, err := pl.AddMixed("")
	if errors.Is(err, palette.ErrTooFewPaints) {
		pl.Simplify()
		mixed, err = pl.Current(), nil
	}
	if err != nil {
		return nil, err
	}
	if mixed.IsEmpty() {
		return nil, errors.New("nothing to mix: every paint has zero parts")
	}
	return mixed, nil
}

// adjust applies the hue, value and chroma changes requested on the
// command line.
func adjust(cfg config, c rgb.RGB16) rgb.RGB16 {
	m := manip.New(c)
	if *cfg.match {
		m.AutoMatch(c)
	}
	if *cfg.rotate != 0 && !m.RotateHue(angle.FromDegrees(*cfg.rotate)) {
		log.Printf("Greys have no hue to rotate")
	}
	nudge := func(what string, delta float64, incr, decr func(float64) bool) {
		switch {
		case delta > 0 && !incr(delta), delta < 0 && !decr(-delta):
			log.Printf("The %s is already at its limit", what)
		}
	}
	nudge("value", *cfg.value, m.IncrValue, m.DecrValue)
	nudge("chroma", *cfg.chroma, m.IncrChroma, m.DecrChroma)
	return m.RGB()
}

func listSeries(w io.Writer, series []*paint.Series) {
	for _, s := range series {
		fmt.Fprintf(w, "%s (%d colours)\n", s.ID(), s.Len())
		for _, tc := range s.Colours() {
			fmt.Fprintf(w, "  %s\n", paint.Describe(tc))
		}
	}
}

func printAttributes(w io.Writer, c paint.Colour) {
	hue := "grey"
	if !c.Hue().IsGrey() {
		hue = fmt.Sprintf("%.1f° %v", c.HueAngle().Degrees(), c.HueRGB())
	}
	fmt.Fprintf(w, "  RGB:          %v %s\n", c.RGB(), c.Hex())
	fmt.Fprintf(w, "  Hue:          %s\n", hue)
	fmt.Fprintf(w, "  Value:        %s\n", c.Value().FloatString(4))
	fmt.Fprintf(w, "  Chroma:       %.4f\n", c.Chroma())
	fmt.Fprintf(w, "  Warmth:       %+.4f\n", c.Warmth())
	fmt.Fprintf(w, "  Transparency: %s\n", c.Transparency().Description())
	fmt.Fprintf(w, "  Permanence:   %s\n", c.Permanence().Description())
}

func writeSwatch(path string, c rgb.RGB16, size int) error {
	img := image.NewNRGBA64(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}
