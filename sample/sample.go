// Package sample reads photographs or scans of paint swatches and reduces
// them to a single colour for matching.
package sample

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	_ "image/gif"  // register GIF format with image.Decode
	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode

	_ "golang.org/x/image/bmp"  // register BMP format with image.Decode
	_ "golang.org/x/image/tiff" // TIFF variants the fast decoder rejects
	_ "golang.org/x/image/webp" // register WebP format with image.Decode

	"github.com/echoflaresat/paintmix/rgb"
	"github.com/echoflaresat/paintmix/vectors"
	"github.com/echoflaresat/tiff"
	"gonum.org/v1/gonum/stat"
)

var ErrEmpty = errors.New("sample has no opaque pixels")

// A sample whose channels vary more than this (as a fraction of full
// intensity) probably covers more than one colour.
const uniformityLimit = 0.08

// Load decodes the image at path. TIFF is tried first, then the standard
// codecs.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err == nil {
		return img, nil
	}
	slog.Debug("not a TIFF, trying other codecs", "path", path, "error", err)

	// fallback to image codecs
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err = image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Stats summarises the colour of a sample.
type Stats struct {
	Mean   rgb.RGB16
	StdDev vectors.Vec3 // per channel, as fractions of full intensity
	Pixels int
}

// Uniform reports whether every channel's spread is small enough for the
// mean to stand for the whole sample.
func (s Stats) Uniform() bool {
	return s.StdDev.Max() <= uniformityLimit
}

// Mean returns the mean colour of the non-transparent pixels of img.
func Mean(img image.Image) (Stats, error) {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	chans := [3][]float64{make([]float64, 0, n), make([]float64, 0, n), make([]float64, 0, n)}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			f := rgb.FromColor(c).Floats()
			chans[0] = append(chans[0], f.X)
			chans[1] = append(chans[1], f.Y)
			chans[2] = append(chans[2], f.Z)
		}
	}
	if len(chans[0]) == 0 {
		return Stats{}, ErrEmpty
	}

	var mean, sd [3]float64
	for i, ch := range chans {
		if len(ch) == 1 {
			mean[i] = ch[0]
			continue
		}
		mean[i], sd[i] = stat.MeanStdDev(ch, nil)
	}
	s := Stats{
		Mean:   rgb.FromFloats[rgb.Fixed16](vectors.Vec3{X: mean[0], Y: mean[1], Z: mean[2]}),
		StdDev: vectors.Vec3{X: sd[0], Y: sd[1], Z: sd[2]},
		Pixels: len(chans[0]),
	}
	if !s.Uniform() {
		slog.Warn("sample is not uniform", "mean", s.Mean, "stddev", s.StdDev.Max())
	}
	return s, nil
}

// LoadMean loads the image at path and returns its mean colour.
func LoadMean(path string) (Stats, error) {
	img, err := Load(path)
	if err != nil {
		return Stats{}, err
	}
	s, err := Mean(img)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
