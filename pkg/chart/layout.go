package chart

import "image"

// GridSize is the number of tiles along each side of a chart.
const GridSize = 12

// bandRows is the number of grid rows owned by one channel.
const bandRows = 3

type cell struct {
	Level   Level
	Pattern Pattern
}

var (
	a25 = cell{Level25, Alternate}
	s25 = cell{Level25, Solid}
	a50 = cell{Level50, Alternate}
	s50 = cell{Level50, Solid}
	a75 = cell{Level75, Alternate}
	s75 = cell{Level75, Solid}
)

// band is the layout of one channel's rows. Each level owns four columns and
// the patterns alternate both across and down.
var band = [bandRows][GridSize]cell{
	{a25, s25, a25, s25, a50, s50, a50, s50, a75, s75, a75, s75},
	{s25, a25, s25, a25, s50, a50, s50, a50, s75, a75, s75, a75},
	{a25, s25, a25, s25, a50, s50, a50, s50, a75, s75, a75, s75},
}

// Placement puts a tile at a grid cell.
type Placement struct {
	Key TileKey
	Col int
	Row int
}

// Rect returns the pixel rectangle of the placement for tiles of the given size.
func (p Placement) Rect(tileSize int) image.Rectangle {
	origin := image.Pt(p.Col*tileSize, p.Row*tileSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(tileSize, tileSize))}
}

// Placements returns every cell of the 12x12 grid in row-major order.
func Placements() []Placement {
	out := make([]Placement, 0, GridSize*GridSize)
	for bi, ch := range Channels {
		for r, cells := range band {
			for col, c := range cells {
				out = append(out, Placement{
					Key: TileKey{Channel: ch, Level: c.Level, Pattern: c.Pattern},
					Col: col,
					Row: bi*bandRows + r,
				})
			}
		}
	}
	return out
}
