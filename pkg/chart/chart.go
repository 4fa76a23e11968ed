// Package chart builds gamma test charts: 24 tiles per gamma value laid out
// on a 12x12 grid, one band of three rows per color channel.
package chart

import (
	"fmt"
	"image"
	"strings"
	"time"

	"gammachart/pkg/gamma"
	"gammachart/pkg/images"
	"gammachart/pkg/logging"
	"gammachart/pkg/render"
	"gammachart/pkg/xpm"
)

// DefaultTileSize is the side of one tile in pixels.
const DefaultTileSize = 32

// Side returns the side of a composed chart in pixels.
func Side(tileSize int) int {
	return tileSize * GridSize
}

// Tile is a generated tile and its decoded image.
type Tile struct {
	Key    TileKey
	Pixmap *xpm.Pixmap
	Image  *image.RGBA
}

// Chart is the composed test chart for one gamma value. It keeps every tile
// it generated for as long as it lives.
type Chart struct {
	Gamma    float64
	Table    gamma.Table
	TileSize int

	tiles      []*Tile
	byKey      map[TileKey]*Tile
	placements []Placement
	image      image.Image
}

// Builder generates charts. Charts built by the same Builder share its
// image cache.
type Builder struct {
	TileSize int
	Cache    *images.Cache
}

// NewBuilder returns a Builder for tiles of the given size. A size <= 0
// selects DefaultTileSize.
func NewBuilder(tileSize int) *Builder {
	if tileSize <= 0 {
		logging.Warnf("tile size %d is not positive, using %d", tileSize, DefaultTileSize)
		tileSize = DefaultTileSize
	}
	return &Builder{TileSize: tileSize, Cache: images.NewCache()}
}

// Build generates and composes the chart for gamma g.
func (b *Builder) Build(g float64) (*Chart, error) {
	table, err := gamma.NewTable(g)
	if err != nil {
		return nil, fmt.Errorf("chart for gamma %v: %w", g, err)
	}

	c := &Chart{
		Gamma:      g,
		Table:      table,
		TileSize:   b.TileSize,
		byKey:      make(map[TileKey]*Tile),
		placements: Placements(),
	}
	for _, k := range AllTileKeys() {
		pm := NewTilePixmap(table, k, b.TileSize)
		img, err := b.Cache.Load(pm)
		if err != nil {
			return nil, fmt.Errorf("chart for gamma %v: tile %s: %w", g, k, err)
		}
		t := &Tile{Key: k, Pixmap: pm, Image: img}
		c.tiles = append(c.tiles, t)
		c.byKey[k] = t
	}

	side := Side(b.TileSize)
	r := render.NewRenderer(side, side)
	items := make([]render.Item, 0, len(c.placements))
	for _, p := range c.placements {
		t, ok := c.byKey[p.Key]
		if !ok {
			return nil, fmt.Errorf("chart for gamma %v: no tile %s", g, p.Key)
		}
		rect := p.Rect(b.TileSize)
		items = append(items, render.Item{Image: t.Image, X: rect.Min.X, Y: rect.Min.Y})
	}
	r.Render(items)
	c.image = r.Image()

	levels := make([]string, len(gamma.Inputs))
	for i, in := range gamma.Inputs {
		levels[i] = gamma.Hex(g, in)
	}
	logging.Debugf("chart gamma=%.1f: %d tiles, %d placements, levels %s",
		g, len(c.tiles), len(c.placements), strings.Join(levels, "/"))
	return c, nil
}

// BuildAll builds one chart per gamma, in order.
func (b *Builder) BuildAll(gammas []float64) ([]*Chart, error) {
	defer logging.TimeTrack(time.Now(), "build charts")

	charts := make([]*Chart, 0, len(gammas))
	for _, g := range gammas {
		c, err := b.Build(g)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	hits, misses := b.Cache.Stats()
	logging.Infof("built %d charts (%d tiles decoded, %d reused)", len(charts), misses, hits)
	return charts, nil
}

// Build generates a chart with default tile size and a private cache.
func Build(g float64) (*Chart, error) {
	return NewBuilder(DefaultTileSize).Build(g)
}

// Image returns the composed chart.
func (c *Chart) Image() image.Image { return c.image }

// Tiles returns the chart's tiles in AllTileKeys order.
func (c *Chart) Tiles() []*Tile { return c.tiles }

// Tile returns the tile for k.
func (c *Chart) Tile(k TileKey) (*Tile, bool) {
	t, ok := c.byKey[k]
	return t, ok
}

// Placements returns where each tile was drawn.
func (c *Chart) Placements() []Placement { return c.placements }

// Label is the chart's tab caption.
func (c *Chart) Label() string { return gamma.Label(c.Gamma) }
