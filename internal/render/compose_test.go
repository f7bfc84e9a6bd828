package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"snapframe/internal/annotation"
	"snapframe/internal/presentation"
	"snapframe/pkg/colorutil"
	"snapframe/pkg/geometry"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func near(a, b color.Color, tol uint32) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	diff := func(x, y uint32) uint32 {
		if x > y {
			return x - y
		}
		return y - x
	}
	tol *= 257
	return diff(ar, br) <= tol && diff(ag, bg) <= tol && diff(ab, bb) <= tol
}

func testScene() Scene {
	p := presentation.Default()
	p.SetPadding(40)
	p.SetShadowRadius(0)
	p.SetCornerRadius(0)
	return Scene{
		Image:        solidImage(120, 80, color.RGBA{G: 200, A: 255}),
		Presentation: p,
	}
}

func TestComposeFrameSize(t *testing.T) {
	sc := testScene()

	got := Compose(sc, 1).Bounds()
	if got.Dx() != 200 || got.Dy() != 160 {
		t.Errorf("frame = %dx%d, want 200x160", got.Dx(), got.Dy())
	}

	zoomed := Compose(sc, 2).Bounds()
	if zoomed.Dx() != 400 || zoomed.Dy() != 320 {
		t.Errorf("zoomed frame = %dx%d, want 400x320", zoomed.Dx(), zoomed.Dy())
	}
}

func TestComposeLayers(t *testing.T) {
	sc := testScene()
	sc.Elements = []annotation.Element{
		annotation.Rectangle{Position: geometry.Pt(10, 10), Size: geometry.NewSize(100, 20)},
	}
	img := Compose(sc, 1)

	if !near(img.At(2, 150), sc.Presentation.BackgroundColor(), 1) {
		t.Errorf("corner = %v, want background %v", img.At(2, 150), sc.Presentation.BackgroundColor())
	}
	if !near(img.At(100, 80), color.RGBA{G: 200, A: 255}, 2) {
		t.Errorf("center = %v, want image color", img.At(100, 80))
	}
	if !near(img.At(60, 10), colorutil.Annotation, 8) {
		t.Errorf("rectangle edge = %v, want annotation color", img.At(60, 10))
	}
}

func TestRasterizeIgnoresZoom(t *testing.T) {
	sc := testScene()
	sc.Presentation.SetZoom(2.5)

	data, err := PNGRasterizer{}.Rasterize(context.Background(), sc)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 160 {
		t.Errorf("export = %dx%d, want unzoomed 200x160", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRasterizeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (PNGRasterizer{}).Rasterize(ctx, testScene()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDrawChromeLeavesPreviewAlone(t *testing.T) {
	sc := testScene()
	preview := Compose(sc, 1)
	if got := DrawChrome(preview, Chrome{}, 1); got != preview {
		t.Error("empty chrome should return the preview unchanged")
	}

	sel := annotation.Rectangle{Position: geometry.Pt(60, 60), Size: geometry.NewSize(40, 40)}
	decorated := DrawChrome(preview, Chrome{Selected: sel}, 1)
	if decorated == preview {
		t.Fatal("chrome should draw into a copy")
	}
	if !near(preview.At(56, 70), color.RGBA{G: 200, A: 255}, 2) {
		t.Errorf("preview modified at outline position: %v", preview.At(56, 70))
	}
}
