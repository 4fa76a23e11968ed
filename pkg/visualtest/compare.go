// Package visualtest compares rendered images pixel by pixel.
package visualtest

import (
	"fmt"
	"image"
	"image/color"
)

// CompareResult contains the results of an image comparison
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // Max color channel difference found

	// Diff is set when CompareOptions.DiffImage is true: differing pixels in
	// red, the rest as the actual image's red channel in grayscale.
	Diff *image.RGBA
}

// CompareOptions configures the image comparison
type CompareOptions struct {
	// Tolerance: maximum allowed difference per color channel (0-255)
	Tolerance int

	// FuzzyRadius: if > 0, a pixel matches if it matches any pixel within this radius
	FuzzyRadius int

	// MaxDifferentPercent: if > 0, pass if the percentage of different pixels is <= this value
	MaxDifferentPercent float64

	// DiffImage: if true, CompareResult.Diff highlights the differences
	DiffImage bool
}

// ExactOptions requires every channel of every pixel to match.
func ExactOptions() CompareOptions {
	return CompareOptions{}
}

// Compare compares two images of the same size pixel by pixel. The images
// may have different bounds origins, e.g. when one is a SubImage; pixels are
// paired relative to each image's Min point.
func Compare(actual, expected image.Image, opts CompareOptions) (*CompareResult, error) {
	ab := actual.Bounds()
	eb := expected.Bounds()
	if ab.Size() != eb.Size() {
		return &CompareResult{
			Match: false,
		}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", ab.Size(), eb.Size())
	}

	result := &CompareResult{
		Match:       true,
		TotalPixels: ab.Dx() * ab.Dy(),
	}
	if opts.DiffImage {
		result.Diff = image.NewRGBA(image.Rect(0, 0, ab.Dx(), ab.Dy()))
	}

	for dy := 0; dy < ab.Dy(); dy++ {
		for dx := 0; dx < ab.Dx(); dx++ {
			ac := actual.At(ab.Min.X+dx, ab.Min.Y+dy)
			diff := pixelDiff(ac, expected.At(eb.Min.X+dx, eb.Min.Y+dy))

			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			matched := diff <= opts.Tolerance
			if !matched && opts.FuzzyRadius > 0 {
				matched = fuzzyMatch(ac, expected, eb.Min.X+dx, eb.Min.Y+dy, opts.FuzzyRadius, opts.Tolerance)
			}
			if !matched {
				result.Match = false
				result.DifferentPixels++
			}

			if result.Diff != nil {
				if matched {
					r, _, _, _ := ac.RGBA()
					gray := uint8(r >> 8)
					result.Diff.SetRGBA(dx, dy, color.RGBA{gray, gray, gray, 255})
				} else {
					result.Diff.SetRGBA(dx, dy, color.RGBA{255, 0, 0, 255})
				}
			}
		}
	}

	// Check if percentage of different pixels is acceptable
	if !result.Match && opts.MaxDifferentPercent > 0 && result.TotalPixels > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}

	return result, nil
}

// Uniform reports whether every pixel of img equals c.
func Uniform(img image.Image, c color.Color) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixelDiff(img.At(x, y), c) != 0 {
				return false
			}
		}
	}
	return true
}

// fuzzyMatch checks if the actual pixel matches any expected pixel within radius of (x, y)
func fuzzyMatch(ac color.Color, expected image.Image, x, y, radius, tolerance int) bool {
	bounds := expected.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := image.Pt(x+dx, y+dy)
			if !p.In(bounds) {
				continue
			}
			if pixelDiff(ac, expected.At(p.X, p.Y)) <= tolerance {
				return true
			}
		}
	}
	return false
}

// pixelDiff is the largest 8-bit channel difference between a and b.
func pixelDiff(a, b color.Color) int {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()

	// Convert from 16-bit to 8-bit
	return maxInt(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(vals ...int) int {
	if len(vals) == 0 {
		return 0
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
