package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Cell is one character cell of a composed frame
type Cell struct {
	Rune       rune
	Foreground tcell.Color
	Background tcell.Color
	Bold       bool
}

var blankCell = Cell{Rune: ' ', Foreground: tcell.ColorDefault, Background: tcell.ColorDefault}

// Style converts the cell's colors to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Foreground).Background(c.Background).Bold(c.Bold)
}

// Frame is an off-screen grid of cells, flushed to a tcell screen in one pass
type Frame struct {
	Width, Height int
	Cells         []Cell
}

// NewFrame creates a blank frame
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
	f.Clear()
	return f
}

// Clear fills the frame with blank cells
func (f *Frame) Clear() {
	for i := range f.Cells {
		f.Cells[i] = blankCell
	}
}

// InBounds reports whether (x, y) is a cell of the frame
func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// At returns the cell at (x, y); out-of-range cells read as blank
func (f *Frame) At(x, y int) Cell {
	if !f.InBounds(x, y) {
		return blankCell
	}
	return f.Cells[y*f.Width+x]
}

// Set writes a cell, ignoring out-of-range positions
func (f *Frame) Set(x, y int, c Cell) {
	if f.InBounds(x, y) {
		f.Cells[y*f.Width+x] = c
	}
}

// Fill paints a blank cell with the given background
func (f *Frame) Fill(x, y int, bg tcell.Color) {
	f.Set(x, y, Cell{Rune: ' ', Foreground: tcell.ColorDefault, Background: bg})
}

// Text writes s left to right starting at (x, y), clipped to the frame
func (f *Frame) Text(x, y int, s string, fg, bg tcell.Color) {
	for _, r := range s {
		f.Set(x, y, Cell{Rune: r, Foreground: fg, Background: bg})
		x++
	}
}

// Flush copies the frame to the screen and shows it
func (f *Frame) Flush(screen tcell.Screen) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.Cells[y*f.Width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
	screen.Show()
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
