package config

// Screen layout configuration
const (
	// Tile size in world units (and pixels at 1:1 zoom)
	TileWidth  = 16
	TileHeight = 16

	// Viewport dimensions in pixels
	ViewportWidth  = 640
	ViewportHeight = 480

	// Height of the message strip drawn over the bottom of the viewport
	MessageLines = 4
)

// GetScreenDimensions returns the logical screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ViewportWidth, ViewportHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ViewportWidth * 2, ViewportHeight * 2
}
