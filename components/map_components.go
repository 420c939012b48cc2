package components

import (
	"image/color"
	"math"

	"archipelago/config"
)

// Tile is the terrain type of one grid cell
type Tile uint8

// Tile types
const (
	TileSpace Tile = iota // Void: nothing to stand on
	TileGrass             // Walkable land
	TileWater             // Reserved, never produced by the generator
)

// String returns a short name for the tile type
func (t Tile) String() string {
	switch t {
	case TileSpace:
		return "space"
	case TileGrass:
		return "grass"
	case TileWater:
		return "water"
	}
	return "unknown"
}

// Grid stores the level's tiles in row-major order
type Grid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewGrid creates a grid with the given dimensions, filled with space
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}
}

// TileAt returns the tile at (tilex, tilez). The caller keeps the coordinates in range.
func (g *Grid) TileAt(tilex, tilez int) Tile {
	return g.Tiles[tilez*g.Width+tilex]
}

// InBounds reports whether (tilex, tilez) is a valid tile index
func (g *Grid) InBounds(tilex, tilez int) bool {
	return tilex >= 0 && tilex < g.Width && tilez >= 0 && tilez < g.Height
}

// WorldToTile converts world coordinates to tile coordinates
func WorldToTile(x, z float64) (int, int) {
	return int(math.Floor(x / config.TileWidth)), int(math.Floor(z / config.TileHeight))
}

// TileAtWorld returns the tile under world position (x, z). Positions outside
// the level are clamped to the nearest edge tile.
func (g *Grid) TileAtWorld(x, z float64) Tile {
	tilex, tilez := WorldToTile(x, z)
	tilex = clampIndex(tilex, g.Width)
	tilez = clampIndex(tilez, g.Height)
	return g.TileAt(tilex, tilez)
}

// WorldWidth returns the grid width in world units
func (g *Grid) WorldWidth() float64 {
	return float64(g.Width * config.TileWidth)
}

// WorldHeight returns the grid height in world units
func (g *Grid) WorldHeight() float64 {
	return float64(g.Height * config.TileHeight)
}

// SetTile sets the tile at the given position
func (g *Grid) SetTile(tilex, tilez int, tile Tile) {
	if g.InBounds(tilex, tilez) {
		g.Tiles[tilez*g.Width+tilex] = tile
	}
}

// FillRect sets every tile between the two corners, both inclusive. The corners
// may be given in any order.
func (g *Grid) FillRect(x1, z1, x2, z2 int, tile Tile) {
	for tilez := min(z1, z2); tilez <= max(z1, z2); tilez++ {
		for tilex := min(x1, x2); tilex <= max(x1, x2); tilex++ {
			g.SetTile(tilex, tilez, tile)
		}
	}
}

// Count returns the number of tiles of the given type
func (g *Grid) Count(tile Tile) int {
	n := 0
	for _, t := range g.Tiles {
		if t == tile {
			n++
		}
	}
	return n
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// TilePalette maps tile types to their draw colors
type TilePalette struct {
	Colors map[Tile]color.RGBA
	// Alternate grass shade used on odd (x+z) tiles
	GrassChecker color.RGBA
}

// NewTilePalette creates the default palette
func NewTilePalette() *TilePalette {
	return &TilePalette{
		Colors: map[Tile]color.RGBA{
			TileSpace: {0, 0, 0, 255},
			TileGrass: {0, 128, 0, 255},
			TileWater: {0, 0, 255, 255},
		},
		GrassChecker: color.RGBA{0, 136, 0, 255},
	}
}

// ColorAt returns the draw color for a tile at (tilex, tilez)
func (p *TilePalette) ColorAt(tile Tile, tilex, tilez int) color.RGBA {
	if tile == TileGrass && (tilex+tilez)&1 == 1 {
		return p.GrassChecker
	}
	if c, exists := p.Colors[tile]; exists {
		return c
	}
	// Magenta for undefined tiles
	return color.RGBA{255, 0, 255, 255}
}
