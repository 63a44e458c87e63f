package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/tsawler/textselect/geom"
)

func whitePage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestPaint_TintsInsideBoxOnly(t *testing.T) {
	p := NewPainter()
	page := whitePage(100, 100)

	p.Paint(page, []geom.Rect{{Left: 10, Top: 10, Right: 30, Bottom: 20}})

	inside := page.RGBAAt(15, 15)
	if inside == (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Error("pixel inside the highlight box was not tinted")
	}
	outside := page.RGBAAt(50, 50)
	if outside != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("pixel outside the highlight box changed: %v", outside)
	}
}

func TestPaint_SkipsEmptyAndClipsOffPage(t *testing.T) {
	p := NewPainter()
	page := whitePage(50, 50)

	// Neither the empty box nor the fully off-page box may panic or paint.
	p.Paint(page, []geom.Rect{
		{Left: 10, Top: 10, Right: 10, Bottom: 30},
		{Left: 500, Top: 500, Right: 600, Bottom: 600},
	})

	if got := page.RGBAAt(10, 20); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("zero-width box painted pixels: %v", got)
	}

	// A box straddling the edge clips instead of panicking.
	p.Paint(page, []geom.Rect{{Left: 40, Top: 40, Right: 80, Bottom: 80}})
	if got := page.RGBAAt(45, 45); got == (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Error("clipped box did not paint its on-page portion")
	}
}

func TestScalePage(t *testing.T) {
	p := NewPainter()
	page := whitePage(100, 60)

	scaled := p.ScalePage(page, 1.5)
	if scaled == nil {
		t.Fatal("expected a scaled raster")
	}
	if b := scaled.Bounds(); b.Dx() != 150 || b.Dy() != 90 {
		t.Errorf("scaled bounds = %v, want 150x90", b)
	}

	// Zoom 1 must return a copy, not the source.
	same := p.ScalePage(page, 1)
	if same == page {
		t.Error("ScalePage(.., 1) must copy")
	}
	if b := same.Bounds(); b.Dx() != 100 || b.Dy() != 60 {
		t.Errorf("unit zoom bounds = %v", b)
	}

	if p.ScalePage(page, 0) != nil {
		t.Error("non-positive zoom must yield nil")
	}
}
