package systems

import (
	"math"

	"archipelago/components"
	"archipelago/config"
	"archipelago/geom"
	"archipelago/world"
)

// CameraSystem handles viewport positioning and scrolling
type CameraSystem struct {
	ViewportWidth  int
	ViewportHeight int

	// Scroll offset of the viewport's top-left corner in world pixels
	X, Y int
}

// NewCameraSystem creates a camera for a viewport of the given pixel size
func NewCameraSystem(viewportWidth, viewportHeight int) *CameraSystem {
	return &CameraSystem{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// Update moves the camera to follow the player across the level
func (s *CameraSystem) Update(grid *components.Grid, player *world.Player) {
	b := player.Body()
	s.X, s.Y = s.Scroll(int(grid.WorldWidth()), int(grid.WorldHeight()), b.X, b.Z)
}

// Scroll returns the viewport offset that centers (x, z) while keeping the
// viewport inside the level. A level no larger than the viewport is centered.
func (s *CameraSystem) Scroll(levelWidth, levelHeight int, x, z float64) (int, int) {
	return scrollAxis(levelWidth, s.ViewportWidth, x), scrollAxis(levelHeight, s.ViewportHeight, z)
}

func scrollAxis(level, viewport int, pos float64) int {
	if level <= viewport {
		return int(math.Floor(float64(level-viewport) / 2))
	}
	return geom.ClampInt(int(math.Floor(pos))-viewport/2, 0, level-viewport)
}

// VisibleTiles returns the half-open tile ranges covered by the viewport
func (s *CameraSystem) VisibleTiles(grid *components.Grid) (x0, x1, z0, z1 int) {
	x0 = geom.ClampInt(geom.FloorDiv(s.X, config.TileWidth), 0, grid.Width)
	x1 = geom.ClampInt(geom.FloorDiv(s.X+s.ViewportWidth, config.TileWidth)+1, 0, grid.Width)
	z0 = geom.ClampInt(geom.FloorDiv(s.Y, config.TileHeight), 0, grid.Height)
	z1 = geom.ClampInt(geom.FloorDiv(s.Y+s.ViewportHeight, config.TileHeight)+1, 0, grid.Height)
	return x0, x1, z0, z1
}

// WorldToScreen converts a ground-plane position to screen coordinates
func (s *CameraSystem) WorldToScreen(x, z float64) (float64, float64) {
	return x - float64(s.X), z - float64(s.Y)
}

// EntityRect returns the screen rectangle of an entity's sprite. Height above
// ground lifts the sprite up the screen; its bottom edge sits at z - y.
func (s *CameraSystem) EntityRect(info world.DrawInfo) (x, y, w, h float64) {
	left, bottom := s.WorldToScreen(info.X-info.Width/2, info.Z-info.Y)
	return left, bottom - info.Height, info.Width, info.Height
}

// MapTileRect returns the screen rectangle of a tile in the whole-level map view
func (s *CameraSystem) MapTileRect(grid *components.Grid, tilex, tilez int) (x, y, w, h int) {
	sx, sz := max(grid.Width-1, 1), max(grid.Height-1, 1)
	x = tilex * s.ViewportWidth / sx
	y = tilez * s.ViewportHeight / sz
	w = (tilex+1)*s.ViewportWidth/sx - x
	h = (tilez+1)*s.ViewportHeight/sz - y
	return x, y, w, h
}

// MapMarker returns the screen center of an entity marker in the map view
func (s *CameraSystem) MapMarker(grid *components.Grid, x, z float64) (float64, float64) {
	return x * float64(s.ViewportWidth) / grid.WorldWidth(), z * float64(s.ViewportHeight) / grid.WorldHeight()
}
