package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"archipelago/components"
	"archipelago/config"
	"archipelago/world"
)

const messageFontSize = 12

// RenderSystem draws the session into an ebiten image
type RenderSystem struct {
	camera   *CameraSystem
	palette  *components.TilePalette
	messages *MessageLog
	face     *text.GoTextFace

	// Show FPS and tick counters
	Debug bool

	drawList []world.DrawInfo
}

// NewRenderSystem creates a rendering system. The message log may be nil.
func NewRenderSystem(camera *CameraSystem, messages *MessageLog) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load message font: %w", err)
	}

	return &RenderSystem{
		camera:   camera,
		palette:  components.NewTilePalette(),
		messages: messages,
		face:     &text.GoTextFace{Source: source, Size: messageFontSize},
	}, nil
}

// Draw renders the play view or the map view, then the message strip
func (s *RenderSystem) Draw(screen *ebiten.Image, session *Session) {
	// Clear the screen
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if session.IsMapView() {
		s.drawMapView(screen, session)
	} else {
		s.drawPlayView(screen, session)
	}

	s.drawMessagesPanel(screen)

	if session.IsPaused() {
		ebitenutil.DebugPrintAt(screen, "PAUSED", config.ViewportWidth/2-18, config.ViewportHeight/2)
	}
	if s.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f  tick: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), session.Ticks()))
	}
}

// drawPlayView draws tile rows back to front, with each entity drawn just
// before the first row that lies below its depth so nearer rows cover it
func (s *RenderSystem) drawPlayView(screen *ebiten.Image, session *Session) {
	level := session.Level()
	grid := level.Grid
	s.camera.Update(grid, session.Player())

	s.drawList = s.drawList[:0]
	for _, e := range level.Entities() {
		s.drawList = append(s.drawList, e.DrawInfo())
	}
	if level.Goal != nil {
		s.drawList = append(s.drawList, level.Goal.DrawInfo())
	}
	s.drawList = append(s.drawList, session.Player().DrawInfo())
	world.SortByDepth(s.drawList)

	x0, x1, z0, z1 := s.camera.VisibleTiles(grid)
	next := 0
	for tilez := z0; tilez < z1; tilez++ {
		rowZ := float64(tilez * config.TileHeight)
		for next < len(s.drawList) && s.drawList[next].Z <= rowZ {
			s.drawEntity(screen, s.drawList[next])
			next++
		}

		for tilex := x0; tilex < x1; tilex++ {
			tile := grid.TileAt(tilex, tilez)
			if tile == components.TileSpace {
				continue
			}
			sx, sy := s.camera.WorldToScreen(float64(tilex*config.TileWidth), rowZ)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), config.TileWidth, config.TileHeight,
				s.palette.ColorAt(tile, tilex, tilez), false)
		}
	}
	for ; next < len(s.drawList); next++ {
		s.drawEntity(screen, s.drawList[next])
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, info world.DrawInfo) {
	x, y, w, h := s.camera.EntityRect(info)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), info.Color, false)
}

// drawMapView draws the whole level scaled to the viewport with entity markers
func (s *RenderSystem) drawMapView(screen *ebiten.Image, session *Session) {
	level := session.Level()
	grid := level.Grid

	for tilez := 0; tilez < grid.Height; tilez++ {
		for tilex := 0; tilex < grid.Width; tilex++ {
			tile := grid.TileAt(tilex, tilez)
			if tile == components.TileSpace {
				continue
			}
			x, y, w, h := s.camera.MapTileRect(grid, tilex, tilez)
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h),
				s.palette.Colors[tile], false)
		}
	}

	for _, e := range level.Entities() {
		s.drawMarker(screen, grid, e.DrawInfo())
	}
	if level.Goal != nil {
		s.drawMarker(screen, grid, level.Goal.DrawInfo())
	}
	s.drawMarker(screen, grid, session.Player().DrawInfo())
}

func (s *RenderSystem) drawMarker(screen *ebiten.Image, grid *components.Grid, info world.DrawInfo) {
	cx, cy := s.camera.MapMarker(grid, info.X, info.Z)
	vector.DrawFilledRect(screen, float32(cx-config.TileWidth/2), float32(cy-config.TileHeight/2),
		config.TileWidth, config.TileHeight, info.Color, false)
}

// drawMessagesPanel draws the most recent messages over the bottom of the view
func (s *RenderSystem) drawMessagesPanel(screen *ebiten.Image) {
	if s.messages == nil {
		return
	}

	lineHeight := float64(messageFontSize + 4)
	top := float64(config.ViewportHeight) - lineHeight*config.MessageLines - 4

	messages := s.messages.RecentMessages(config.MessageLines)
	for i, msg := range messages {
		op := &text.DrawOptions{}
		// Newest message at the bottom
		op.GeoM.Translate(6, top+lineHeight*float64(config.MessageLines-1-i))
		op.ColorScale.ScaleWithColor(msg.Color())
		text.Draw(screen, msg.Text, s.face, op)
	}
}
