package chart

import (
	"fmt"
	"image/color"

	"gammachart/pkg/gamma"
	"gammachart/pkg/xpm"
)

// Channel selects which color components a tile lights up.
type Channel int

const (
	All Channel = iota
	Red
	Green
	Blue
)

var channelNames = [...]string{"all", "red", "green", "blue"}

func (c Channel) String() string {
	if c < All || c > Blue {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Channels in band order, top to bottom.
var Channels = [4]Channel{All, Red, Green, Blue}

// Level is the nominal brightness of a tile, in percent.
type Level int

const (
	Level25 Level = 25
	Level50 Level = 50
	Level75 Level = 75
)

// Levels in column-group order, left to right.
var Levels = [3]Level{Level25, Level50, Level75}

// Pattern is the pixel arrangement of a tile.
type Pattern int

const (
	// Alternate is a checkerboard of two levels whose average is the
	// nominal brightness.
	Alternate Pattern = iota
	// Solid is a single level at the nominal brightness.
	Solid
)

// Patterns in generation order.
var Patterns = [2]Pattern{Alternate, Solid}

func (p Pattern) code() byte {
	if p == Alternate {
		return 'a'
	}
	return 's'
}

// TileKey identifies one of the 24 tiles of a chart.
type TileKey struct {
	Channel Channel
	Level   Level
	Pattern Pattern
}

// String returns names like "all_a025" or "blue_s075".
func (k TileKey) String() string {
	return fmt.Sprintf("%s_%c%03d", k.Channel, k.Pattern.code(), int(k.Level))
}

// AllTileKeys returns the 24 tile keys in channel, level, pattern order.
func AllTileKeys() []TileKey {
	keys := make([]TileKey, 0, len(Channels)*len(Levels)*len(Patterns))
	for _, ch := range Channels {
		for _, lv := range Levels {
			for _, pt := range Patterns {
				keys = append(keys, TileKey{Channel: ch, Level: lv, Pattern: pt})
			}
		}
	}
	return keys
}

// levelInputs holds the uncorrected input levels behind each brightness:
// the checkerboard pair (first, second) and the solid level.
var levelInputs = map[Level]struct {
	alternate [2]uint8
	solid     uint8
}{
	Level25: {alternate: [2]uint8{0, 127}, solid: 63},
	Level50: {alternate: [2]uint8{0, 255}, solid: 127},
	Level75: {alternate: [2]uint8{127, 255}, solid: 191},
}

// InputLevels returns the uncorrected levels of a tile: two for Alternate,
// one for Solid.
func InputLevels(k TileKey) []uint8 {
	in := levelInputs[k.Level]
	if k.Pattern == Alternate {
		return []uint8{in.alternate[0], in.alternate[1]}
	}
	return []uint8{in.solid}
}

// channelColor puts v on the components selected by ch and the corrected
// black level on the others.
func channelColor(ch Channel, v, zero uint8) color.RGBA {
	c := color.RGBA{R: zero, G: zero, B: zero, A: 0xff}
	switch ch {
	case All:
		c.R, c.G, c.B = v, v, v
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	}
	return c
}

// TileColors returns the corrected colors of a tile under table t.
func TileColors(t gamma.Table, k TileKey) []color.RGBA {
	levels := InputLevels(k)
	colors := make([]color.RGBA, len(levels))
	for i, in := range levels {
		colors[i] = channelColor(k.Channel, t.Level(in), t.V000)
	}
	return colors
}

// NewTilePixmap builds the pixmap for tile k at the given side length.
func NewTilePixmap(t gamma.Table, k TileKey, size int) *xpm.Pixmap {
	colors := TileColors(t, k)
	if k.Pattern == Alternate {
		return xpm.Checkerboard(size, colors[0], colors[1])
	}
	return xpm.Solid(size, colors[0])
}
