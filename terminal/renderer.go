package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"archipelago/components"
	"archipelago/config"
	"archipelago/geom"
	"archipelago/systems"
	"archipelago/world"
)

// Rows reserved for the message log when the terminal is tall enough
const messageRows = 2

// Glyphs drawn for each entity kind
var kindGlyphs = map[world.Kind]rune{
	world.KindPlayer:     '@',
	world.KindProjectile: '*',
	world.KindGoal:       'X',
	world.KindCreature:   'c',
}

// Renderer composes session frames at one cell per tile
type Renderer struct {
	camera   *systems.CameraSystem
	palette  *components.TilePalette
	messages *systems.MessageLog

	frame    *Frame
	drawList []world.DrawInfo
}

// NewRenderer creates a renderer. The message log may be nil.
func NewRenderer(messages *systems.MessageLog) *Renderer {
	return &Renderer{
		camera:   systems.NewCameraSystem(0, 0),
		palette:  components.NewTilePalette(),
		messages: messages,
	}
}

// Compose draws the session into a frame of cols x rows cells
func (r *Renderer) Compose(session *systems.Session, cols, rows int) *Frame {
	if r.frame == nil || r.frame.Width != cols || r.frame.Height != rows {
		r.frame = NewFrame(cols, rows)
	} else {
		r.frame.Clear()
	}

	mapRows := rows
	if r.messages != nil && rows > messageRows*3 {
		mapRows = rows - messageRows
	}

	if session.IsMapView() {
		r.composeMapView(session, cols, mapRows)
	} else {
		r.composePlayView(session, cols, mapRows)
	}

	if mapRows < rows {
		r.composeMessages(mapRows, rows-mapRows)
	}
	if session.IsPaused() {
		label := " PAUSED "
		r.frame.Text((cols-len(label))/2, mapRows/2, label, tcell.ColorBlack, tcell.ColorWhite)
	}
	return r.frame
}

func (r *Renderer) composePlayView(session *systems.Session, cols, rows int) {
	level := session.Level()
	grid := level.Grid

	r.camera.ViewportWidth = cols * config.TileWidth
	r.camera.ViewportHeight = rows * config.TileHeight
	r.camera.Update(grid, session.Player())

	originX := geom.FloorDiv(r.camera.X, config.TileWidth)
	originZ := geom.FloorDiv(r.camera.Y, config.TileHeight)

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			tilex, tilez := originX+cx, originZ+cy
			if !grid.InBounds(tilex, tilez) {
				continue
			}
			tile := grid.TileAt(tilex, tilez)
			if tile == components.TileSpace {
				continue
			}
			r.frame.Fill(cx, cy, tcellColor(r.palette.ColorAt(tile, tilex, tilez)))
		}
	}

	// Back to front so nearer entities overwrite farther ones in shared cells
	r.collect(session)
	for _, info := range r.drawList {
		// One cell at the sprite's center
		sx := int(math.Floor(info.X))
		sy := int(math.Floor(info.Z - info.Y - info.Height/2))
		cx := geom.FloorDiv(sx, config.TileWidth) - originX
		cy := geom.FloorDiv(sy, config.TileHeight) - originZ
		if cy >= rows {
			continue
		}
		r.setGlyph(cx, cy, info)
	}
}

func (r *Renderer) composeMapView(session *systems.Session, cols, rows int) {
	level := session.Level()
	grid := level.Grid

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			tilex := cx * grid.Width / cols
			tilez := cy * grid.Height / rows
			tile := grid.TileAt(tilex, tilez)
			if tile == components.TileSpace {
				continue
			}
			r.frame.Fill(cx, cy, tcellColor(r.palette.Colors[tile]))
		}
	}

	r.collect(session)
	for _, info := range r.drawList {
		cx := int(info.X * float64(cols) / grid.WorldWidth())
		cy := int(info.Z * float64(rows) / grid.WorldHeight())
		r.setGlyph(geom.ClampInt(cx, 0, cols-1), geom.ClampInt(cy, 0, rows-1), info)
	}
}

// collect gathers every drawable entity in depth order
func (r *Renderer) collect(session *systems.Session) {
	level := session.Level()
	r.drawList = r.drawList[:0]
	for _, e := range level.Entities() {
		r.drawList = append(r.drawList, e.DrawInfo())
	}
	if level.Goal != nil {
		r.drawList = append(r.drawList, level.Goal.DrawInfo())
	}
	r.drawList = append(r.drawList, session.Player().DrawInfo())
	world.SortByDepth(r.drawList)
}

// setGlyph draws an entity over whatever background the cell already has
func (r *Renderer) setGlyph(cx, cy int, info world.DrawInfo) {
	if !r.frame.InBounds(cx, cy) {
		return
	}
	r.frame.Set(cx, cy, Cell{
		Rune:       kindGlyphs[info.Kind],
		Foreground: tcellColor(info.Color),
		Background: r.frame.At(cx, cy).Background,
		Bold:       true,
	})
}

func (r *Renderer) composeMessages(top, lines int) {
	msgs := r.messages.RecentMessages(lines)
	for i, msg := range msgs {
		// Newest message on the last line
		y := top + lines - 1 - i
		r.frame.Text(0, y, msg.Text, tcellColor(msg.Color()), tcell.ColorDefault)
	}
}
