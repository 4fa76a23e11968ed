package xpm

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	grey  = color.RGBA{0x7f, 0x7f, 0x7f, 0xff}
	red   = color.RGBA{0xba, 0x00, 0x00, 0xff}
)

func TestSolid_Header(t *testing.T) {
	p := Solid(32, red)
	lines := p.Lines()
	require.Len(t, lines, 1+1+32)
	assert.Equal(t, "32 32 1 1", lines[0])
	assert.Equal(t, "  c #ba0000", lines[1])
	require.NoError(t, p.Validate())
}

func TestSolid_EveryPixelSame(t *testing.T) {
	p := Solid(32, red)
	img, err := p.Image()
	require.NoError(t, err)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			require.Equal(t, SymbolFirst, p.SymbolAt(x, y))
			require.Equal(t, red, img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCheckerboard_Parity(t *testing.T) {
	for _, n := range []int{1, 2, 7, 32} {
		p := Checkerboard(n, black, grey)
		require.NoError(t, p.Validate(), "size %d", n)
		img, err := p.Image()
		require.NoError(t, err)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if (row+col)%2 == 0 {
					require.Equal(t, SymbolSecond, p.SymbolAt(col, row))
					require.Equal(t, grey, img.RGBAAt(col, row))
				} else {
					require.Equal(t, SymbolFirst, p.SymbolAt(col, row))
					require.Equal(t, black, img.RGBAAt(col, row))
				}
			}
		}
	}
}

func TestCheckerboard_Lines(t *testing.T) {
	lines := Checkerboard(4, black, grey).Lines()
	assert.Equal(t, []string{
		"4 4 2 1",
		"  c #000000",
		". c #7f7f7f",
		". . ",
		" . .",
		". . ",
		" . .",
	}, lines)
}

func TestParse_RoundTrip(t *testing.T) {
	src := Checkerboard(32, black, red)
	p, err := Parse(src.Lines())
	require.NoError(t, err)
	assert.Equal(t, src, p)

	src = Solid(32, grey)
	p, err = Parse(src.Lines())
	require.NoError(t, err)
	assert.Equal(t, src, p)
}

func TestParse_MultiCharSymbols(t *testing.T) {
	p, err := Parse([]string{
		"2 1 2 2",
		"aa c #ff0000",
		"bb c #0000ff",
		"aabb",
	})
	require.NoError(t, err)
	img, err := p.Image()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, img.RGBAAt(1, 0))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"empty", nil, ErrHeader},
		{"short header", []string{"2 2 1"}, ErrHeader},
		{"non-numeric header", []string{"2 x 1 1"}, ErrHeader},
		{"missing colors", []string{"2 2 2 1", "  c #000000"}, ErrColor},
		{"bad hex", []string{"1 1 1 1", "  c #zz0000", " "}, ErrColor},
		{"no c key", []string{"1 1 1 1", "  #000000", " "}, ErrColor},
		{"too few rows", []string{"2 2 1 1", "  c #000000", "  "}, ErrRow},
		{"short row", []string{"2 2 1 1", "  c #000000", "  ", " "}, ErrRow},
		{"undefined symbol", []string{"2 1 1 1", "  c #000000", " x"}, ErrSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.lines)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_DuplicateSymbol(t *testing.T) {
	p := Solid(2, black)
	p.Colors = append(p.Colors, Entry{Symbol: SymbolFirst, Color: grey})
	assert.ErrorIs(t, p.Validate(), ErrColor)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#12ab9f")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x12, 0xab, 0x9f, 0xff}, c)
	assert.Equal(t, "#12ab9f", HexColor(c))

	for _, s := range []string{"", "12ab9f", "#12ab9", "#12ab9fff", "#gg0000"} {
		_, err := ParseHexColor(s)
		assert.ErrorIs(t, err, ErrColor, "input %q", s)
	}
}

func TestBuilders_ForceOpaque(t *testing.T) {
	p := Solid(1, color.RGBA{1, 2, 3, 0})
	assert.Equal(t, uint8(0xff), p.Colors[0].Color.A)
}
