package visualtest

import (
	"image"
	"image/color"
	"testing"
)

func fill(r image.Rectangle, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompare_Identical(t *testing.T) {
	a := fill(image.Rect(0, 0, 4, 4), color.RGBA{10, 20, 30, 255})
	b := fill(image.Rect(0, 0, 4, 4), color.RGBA{10, 20, 30, 255})
	res, err := Compare(a, b, ExactOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Match || res.DifferentPixels != 0 || res.TotalPixels != 16 {
		t.Errorf("expected exact match over 16 pixels, got %+v", res)
	}
}

func TestCompare_OffsetBounds(t *testing.T) {
	big := fill(image.Rect(0, 0, 8, 8), color.RGBA{0, 0, 0, 255})
	patch := fill(image.Rect(4, 4, 8, 8), color.RGBA{200, 0, 0, 255})
	for y := 4; y < 8; y++ {
		for x := 4; x < 8; x++ {
			big.SetRGBA(x, y, patch.RGBAAt(x, y))
		}
	}
	want := fill(image.Rect(0, 0, 4, 4), color.RGBA{200, 0, 0, 255})
	res, err := Compare(big.SubImage(image.Rect(4, 4, 8, 8)), want, ExactOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Match {
		t.Errorf("expected sub-image to match, got %d different pixels", res.DifferentPixels)
	}
}

func TestCompare_Tolerance(t *testing.T) {
	a := fill(image.Rect(0, 0, 2, 2), color.RGBA{100, 100, 100, 255})
	b := fill(image.Rect(0, 0, 2, 2), color.RGBA{103, 100, 100, 255})

	res, _ := Compare(a, b, ExactOptions())
	if res.Match || res.DifferentPixels != 4 || res.MaxDifference != 3 {
		t.Errorf("expected 4 differing pixels with max diff 3, got %+v", res)
	}
	res, _ = Compare(a, b, CompareOptions{Tolerance: 3})
	if !res.Match {
		t.Error("expected match within tolerance 3")
	}
}

func TestCompare_MaxDifferentPercent(t *testing.T) {
	a := fill(image.Rect(0, 0, 10, 10), color.RGBA{0, 0, 0, 255})
	b := fill(image.Rect(0, 0, 10, 10), color.RGBA{0, 0, 0, 255})
	b.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})

	res, _ := Compare(a, b, CompareOptions{MaxDifferentPercent: 1})
	if !res.Match || res.DifferentPixels != 1 {
		t.Errorf("expected 1%% difference to pass, got %+v", res)
	}
	res, _ = Compare(a, b, CompareOptions{MaxDifferentPercent: 0.5})
	if res.Match {
		t.Error("expected 1% difference to fail at 0.5%")
	}
}

func TestCompare_Fuzzy(t *testing.T) {
	a := fill(image.Rect(0, 0, 3, 1), color.RGBA{0, 0, 0, 255})
	b := fill(image.Rect(0, 0, 3, 1), color.RGBA{0, 0, 0, 255})
	a.SetRGBA(1, 0, color.RGBA{255, 255, 255, 255})
	b.SetRGBA(2, 0, color.RGBA{255, 255, 255, 255})

	res, _ := Compare(a, b, ExactOptions())
	if res.Match {
		t.Error("expected shifted pixel to differ without fuzzy matching")
	}
	res, _ = Compare(a, b, CompareOptions{FuzzyRadius: 1})
	if !res.Match {
		t.Errorf("expected shifted pixel to match with radius 1, got %+v", res)
	}
}

func TestCompare_SizeMismatch(t *testing.T) {
	a := fill(image.Rect(0, 0, 2, 2), color.RGBA{})
	b := fill(image.Rect(0, 0, 3, 2), color.RGBA{})
	res, err := Compare(a, b, ExactOptions())
	if err == nil {
		t.Fatal("expected error for mismatched sizes")
	}
	if res.Match {
		t.Error("expected no match for mismatched sizes")
	}
}

func TestCompare_DiffImage(t *testing.T) {
	a := fill(image.Rect(0, 0, 2, 1), color.RGBA{50, 50, 50, 255})
	b := fill(image.Rect(0, 0, 2, 1), color.RGBA{50, 50, 50, 255})
	b.SetRGBA(1, 0, color.RGBA{0, 0, 0, 255})

	res, _ := Compare(a, b, CompareOptions{DiffImage: true})
	if res.Diff == nil {
		t.Fatal("expected diff image")
	}
	if got := res.Diff.RGBAAt(0, 0); got != (color.RGBA{50, 50, 50, 255}) {
		t.Errorf("expected matching pixel in grayscale, got %v", got)
	}
	if got := res.Diff.RGBAAt(1, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("expected differing pixel in red, got %v", got)
	}
}

func TestUniform(t *testing.T) {
	c := color.RGBA{1, 2, 3, 255}
	img := fill(image.Rect(0, 0, 3, 3), c)
	if !Uniform(img, c) {
		t.Error("expected uniform image")
	}
	img.SetRGBA(2, 2, color.RGBA{})
	if Uniform(img, c) {
		t.Error("expected non-uniform image")
	}
}
