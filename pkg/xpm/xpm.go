// Package xpm builds, encodes and decodes small pixel maps in the textual
// X PixMap layout: a "width height ncolors cpp" header, one "<sym> c #rrggbb"
// line per color, then one string of symbols per row.
package xpm

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

var (
	ErrHeader = errors.New("xpm: bad header")
	ErrColor  = errors.New("xpm: bad color definition")
	ErrRow    = errors.New("xpm: bad pixel row")
	ErrSymbol = errors.New("xpm: undefined symbol")
)

// Symbols used by the builders. The first color of a pixmap is always keyed
// by SymbolFirst.
const (
	SymbolFirst  = " "
	SymbolSecond = "."
)

// Entry maps one symbol to an opaque color.
type Entry struct {
	Symbol string
	Color  color.RGBA
}

// Pixmap is an in-memory X PixMap.
type Pixmap struct {
	Width         int
	Height        int
	CharsPerPixel int
	Colors        []Entry
	Rows          []string
}

// NumColors is the size of the symbol table.
func (p *Pixmap) NumColors() int { return len(p.Colors) }

// Solid returns a size x size pixmap filled with c.
func Solid(size int, c color.RGBA) *Pixmap {
	p := &Pixmap{
		Width:         size,
		Height:        size,
		CharsPerPixel: 1,
		Colors:        []Entry{{Symbol: SymbolFirst, Color: opaque(c)}},
		Rows:          make([]string, size),
	}
	row := strings.Repeat(SymbolFirst, size)
	for y := range p.Rows {
		p.Rows[y] = row
	}
	return p
}

// Checkerboard returns a size x size pixmap alternating c1 and c2. The pixel
// at (row, col) is c2 when row+col is even and c1 otherwise.
func Checkerboard(size int, c1, c2 color.RGBA) *Pixmap {
	p := &Pixmap{
		Width:         size,
		Height:        size,
		CharsPerPixel: 1,
		Colors: []Entry{
			{Symbol: SymbolFirst, Color: opaque(c1)},
			{Symbol: SymbolSecond, Color: opaque(c2)},
		},
		Rows: make([]string, size),
	}
	var even, odd strings.Builder
	for x := 0; x < size; x++ {
		if x%2 == 0 {
			even.WriteString(SymbolSecond)
			odd.WriteString(SymbolFirst)
		} else {
			even.WriteString(SymbolFirst)
			odd.WriteString(SymbolSecond)
		}
	}
	for y := range p.Rows {
		if y%2 == 0 {
			p.Rows[y] = even.String()
		} else {
			p.Rows[y] = odd.String()
		}
	}
	return p
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

// Lines encodes the pixmap in its textual form.
func (p *Pixmap) Lines() []string {
	lines := make([]string, 0, 1+len(p.Colors)+len(p.Rows))
	lines = append(lines, fmt.Sprintf("%d %d %d %d", p.Width, p.Height, len(p.Colors), p.CharsPerPixel))
	for _, e := range p.Colors {
		lines = append(lines, fmt.Sprintf("%s c %s", e.Symbol, HexColor(e.Color)))
	}
	return append(lines, p.Rows...)
}

// String joins Lines with newlines.
func (p *Pixmap) String() string {
	return strings.Join(p.Lines(), "\n")
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor reads "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrColor, s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Validate checks that the header agrees with the symbol table and rows and
// that every pixel symbol is defined.
func (p *Pixmap) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.CharsPerPixel <= 0 {
		return fmt.Errorf("%w: %dx%d cpp=%d", ErrHeader, p.Width, p.Height, p.CharsPerPixel)
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("%w: no colors", ErrHeader)
	}
	table := make(map[string]struct{}, len(p.Colors))
	for _, e := range p.Colors {
		if len(e.Symbol) != p.CharsPerPixel {
			return fmt.Errorf("%w: symbol %q is not %d chars", ErrColor, e.Symbol, p.CharsPerPixel)
		}
		if _, dup := table[e.Symbol]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrColor, e.Symbol)
		}
		table[e.Symbol] = struct{}{}
	}
	if len(p.Rows) != p.Height {
		return fmt.Errorf("%w: have %d rows, header says %d", ErrRow, len(p.Rows), p.Height)
	}
	rowLen := p.Width * p.CharsPerPixel
	for y, row := range p.Rows {
		if len(row) != rowLen {
			return fmt.Errorf("%w: row %d has %d chars, want %d", ErrRow, y, len(row), rowLen)
		}
		for x := 0; x < p.Width; x++ {
			sym := row[x*p.CharsPerPixel : (x+1)*p.CharsPerPixel]
			if _, ok := table[sym]; !ok {
				return fmt.Errorf("%w: %q at (%d,%d)", ErrSymbol, sym, x, y)
			}
		}
	}
	return nil
}

// Parse reads the textual form produced by Lines.
func Parse(lines []string) (*Pixmap, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrHeader)
	}
	fields := strings.Fields(lines[0])
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrHeader, lines[0])
	}
	var hdr [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrHeader, lines[0], err)
		}
		hdr[i] = n
	}
	width, height, ncolors, cpp := hdr[0], hdr[1], hdr[2], hdr[3]
	if ncolors <= 0 || cpp <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrHeader, lines[0])
	}
	if len(lines) < 1+ncolors {
		return nil, fmt.Errorf("%w: want %d color lines, have %d", ErrColor, ncolors, len(lines)-1)
	}

	p := &Pixmap{Width: width, Height: height, CharsPerPixel: cpp}
	for _, line := range lines[1 : 1+ncolors] {
		// The symbol may itself be a space, so it is cut off by position.
		if len(line) < cpp {
			return nil, fmt.Errorf("%w: %q", ErrColor, line)
		}
		parts := strings.Fields(line[cpp:])
		if len(parts) < 2 || parts[len(parts)-2] != "c" {
			return nil, fmt.Errorf("%w: %q", ErrColor, line)
		}
		c, err := ParseHexColor(parts[len(parts)-1])
		if err != nil {
			return nil, err
		}
		p.Colors = append(p.Colors, Entry{Symbol: line[:cpp], Color: c})
	}
	p.Rows = append([]string(nil), lines[1+ncolors:]...)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Image expands the pixmap into an RGBA image.
func (p *Pixmap) Image() (*image.RGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	table := make(map[string]color.RGBA, len(p.Colors))
	for _, e := range p.Colors {
		table[e.Symbol] = e.Color
	}
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y, row := range p.Rows {
		for x := 0; x < p.Width; x++ {
			img.SetRGBA(x, y, table[row[x*p.CharsPerPixel:(x+1)*p.CharsPerPixel]])
		}
	}
	return img, nil
}

// SymbolAt returns the symbol of the pixel at column x, row y.
func (p *Pixmap) SymbolAt(x, y int) string {
	return p.Rows[y][x*p.CharsPerPixel : (x+1)*p.CharsPerPixel]
}
