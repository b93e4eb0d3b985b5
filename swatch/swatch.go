// Package swatch renders color chips as PNG strips with libvips.
// Callers must run vips.Startup before rendering.
package swatch

import (
	"errors"
	"fmt"
	"os"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/lucasb-eyer/go-colorful"
)

const DefaultSize = 128

var ErrNoColors = errors.New("no colors to render")

// parseColors checks every hex before any image is allocated.
func parseColors(hexes []string) ([]colorful.Color, error) {
	if len(hexes) == 0 {
		return nil, ErrNoColors
	}
	colors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("chip %d: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// createImage return empty vips image with a certain width, height and background color
func createImage(w, h int, c colorful.Color) (*vips.ImageRef, error) {

	var cR, cG, cB uint8 = c.RGB255()
	color := []float64{float64(cR), float64(cG), float64(cB)}

	imageRef, err := vips.Black(w, h)
	if err != nil {
		return nil, err
	}
	err = imageRef.ToColorSpace(vips.InterpretationSRGB)
	if err != nil {
		return nil, err
	}

	err = imageRef.Linear([]float64{0, 0, 0}, color)
	if err != nil {
		return nil, err
	}

	return imageRef, nil
}

// Render lays the colors out left to right as size x size chips and returns
// the strip as PNG. Non-positive size means DefaultSize.
func Render(hexes []string, size int) ([]byte, error) {
	colors, err := parseColors(hexes)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}

	targetRef, err := createImage(size*len(colors), size, colors[0])
	if err != nil {
		return nil, err
	}
	defer targetRef.Close()

	// chip 0 is the background
	for i := 1; i < len(colors); i++ {
		chipRef, err := createImage(size, size, colors[i])
		if err != nil {
			return nil, err
		}
		err = targetRef.Insert(chipRef, i*size, 0, false, &vips.ColorRGBA{R: 0, G: 0, B: 0, A: 255})
		chipRef.Close()
		if err != nil {
			return nil, err
		}
	}

	buffer, _, err := targetRef.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// WritePNG renders the strip into path.
func WritePNG(path string, hexes []string, size int) error {
	buffer, err := Render(hexes, size)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buffer, 0644)
}
