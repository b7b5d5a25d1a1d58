package image2bin

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/disintegration/gift"
	"github.com/ericpauley/go-quantize/quantize"
)

var monochrome = color.Palette{color.Black, color.White}

// Returns true if m contains more than n distinct colors
func moreColorsThan(m image.Image, n int) bool {
	colors := make(map[color.Color]struct{})
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			colors[m.At(x, y)] = struct{}{}
			if len(colors) > n {
				return true
			}
		}
	}
	return false
}

func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}

// Set every pixel at or above threshold, clear the rest
func threshold(m image.Image, t uint8) *image.Paletted {
	b := m.Bounds()
	pm := image.NewPaletted(b, monochrome)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if luminance(m.At(x, y)) >= t {
				pm.SetColorIndex(x, y, 1)
			}
		}
	}
	return pm
}

// Redraw a two color paletted image as black and white by index so the set
// pixels survive filters that work on color
func indexed(pm *image.Paletted) *image.Paletted {
	b := pm.Bounds()
	dup := image.NewPaletted(b, monochrome)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pm.ColorIndexAt(x, y) != 0 {
				dup.SetColorIndex(x, y, 1)
			}
		}
	}
	return dup
}

// Reduce m to two colors, the lighter of which becomes the set bit
func reduce(m image.Image) *image.Paletted {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, len(monochrome)), m)
	sort.SliceStable(p, func(i, j int) bool {
		return luminance(p[i]) < luminance(p[j])
	})

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// prepare returns m as an image with no more than two colors
func prepare(m image.Image, t uint8, invert bool) image.Image {
	if m == nil {
		return nil
	}

	if pm, ok := m.(*image.Paletted); ok && invert && t == 0 && len(pm.Palette) <= len(monochrome) {
		m = indexed(pm)
	}

	var filters []gift.Filter
	if invert {
		filters = append(filters, gift.Invert())
	}
	if t > 0 {
		filters = append(filters, gift.Grayscale())
	}
	if len(filters) > 0 {
		g := gift.New(filters...)
		dst := image.NewRGBA(g.Bounds(m.Bounds()))
		g.Draw(dst, m)
		m = dst
	}

	if t > 0 {
		return threshold(m, t)
	}

	pm, ok := m.(*image.Paletted)
	if ok && len(pm.Palette) <= len(monochrome) {
		return pm
	}

	if moreColorsThan(m, len(monochrome)) {
		return reduce(m)
	}

	// Palette indices are meaningless in a larger palette
	if ok {
		return threshold(pm, 1)
	}

	return m
}
