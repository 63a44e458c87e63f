package overlay

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/tsawler/textselect/geom"
)

// Config holds the painter's appearance settings.
type Config struct {
	// Highlight is the translucent fill composited over selected regions
	// (default: the usual selection blue at ~35% opacity).
	Highlight color.NRGBA

	// Scaler interpolates page rasters when zooming. Nil uses
	// draw.ApproxBiLinear, a good quality/speed trade-off for page images.
	Scaler draw.Scaler
}

// DefaultConfig returns the default painter appearance.
func DefaultConfig() Config {
	return Config{
		Highlight: color.NRGBA{R: 51, G: 102, B: 204, A: 90},
	}
}

// Painter composites selection highlights onto page rasters.
type Painter struct {
	config Config
}

// NewPainter creates a painter with default appearance.
func NewPainter() *Painter {
	return NewPainterWithConfig(DefaultConfig())
}

// NewPainterWithConfig creates a painter with custom appearance.
func NewPainterWithConfig(config Config) *Painter {
	if config.Highlight == (color.NRGBA{}) {
		config.Highlight = DefaultConfig().Highlight
	}
	if config.Scaler == nil {
		config.Scaler = draw.ApproxBiLinear
	}
	return &Painter{config: config}
}

// Paint composites the highlight fill over each box on dst. Boxes are in
// the same coordinate space as the raster; fractional edges are expanded
// outward so a highlight never visually undershoots its text. Boxes
// outside the raster are clipped, empty boxes skipped.
func (p *Painter) Paint(dst *image.RGBA, boxes []geom.Rect) {
	fill := image.NewUniform(p.config.Highlight)
	for _, box := range boxes {
		if box.IsEmpty() {
			continue
		}
		r := image.Rect(
			int(math.Floor(box.Left)),
			int(math.Floor(box.Top)),
			int(math.Ceil(box.Right)),
			int(math.Ceil(box.Bottom)),
		).Intersect(dst.Bounds())
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, fill, image.Point{}, draw.Over)
	}
}

// ScalePage resizes a page raster to the given zoom factor and returns
// the scaled copy. A zoom of 1 still copies, so callers can paint on the
// result without touching the source. Non-positive zoom yields nil.
func (p *Painter) ScalePage(src image.Image, zoom float64) *image.RGBA {
	if zoom <= 0 {
		return nil
	}
	sb := src.Bounds()
	w := int(math.Round(float64(sb.Dx()) * zoom))
	h := int(math.Round(float64(sb.Dy()) * zoom))
	if w < 1 || h < 1 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	p.config.Scaler.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}
