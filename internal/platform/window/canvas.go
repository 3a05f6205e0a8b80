// Package window provides the Ebitengine desktop frontend. Ebitengine calls
// Update and Draw separately, so the game renders into a recording Canvas
// during Update and the recorded shapes are replayed onto the screen in Draw.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/skyhop/internal/core"
)

type opKind int

const (
	opRect opKind = iota
	opCircle
	opText
)

// op is one recorded draw call in world pixels.
type op struct {
	kind       opKind
	x, y, w, h float64 // Circles use x, y as center and w as radius
	text       string
	color      core.Color
}

// palette maps core colors to screen colors.
var palette = map[core.Color]color.Color{
	core.ColorDefault:     colornames.White,
	core.ColorRed:         colornames.Red,
	core.ColorGreen:       colornames.Green,
	core.ColorYellow:      colornames.Yellow,
	core.ColorBlue:        colornames.Blue,
	core.ColorPurple:      colornames.Purple,
	core.ColorCyan:        colornames.Cyan,
	core.ColorWhite:       colornames.White,
	core.ColorGray:        colornames.Gray,
	core.ColorBrightWhite: colornames.White,
}

// background is the clear color of the window.
var background = colornames.Black

func colorOf(c core.Color) color.Color {
	if clr, ok := palette[c]; ok {
		return clr
	}
	return colornames.White
}

// Canvas is a core.Surface that records draw calls for later replay.
type Canvas struct {
	w, h float64
	ops  []op
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(w, h float64) *Canvas {
	return &Canvas{w: w, h: h}
}

// Size returns the drawable area in pixels.
func (c *Canvas) Size() (w, h float64) {
	return c.w, c.h
}

// Clear drops every recorded call.
func (c *Canvas) Clear() {
	c.ops = c.ops[:0]
}

// FillRect records a filled rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr core.Color) {
	c.ops = append(c.ops, op{kind: opRect, x: x, y: y, w: w, h: h, color: clr})
}

// FillCircle records a filled circle.
func (c *Canvas) FillCircle(cx, cy, r float64, clr core.Color) {
	c.ops = append(c.ops, op{kind: opCircle, x: cx, y: cy, w: r, color: clr})
}

// DrawText records a line of text.
func (c *Canvas) DrawText(x, y float64, text string, clr core.Color) {
	c.ops = append(c.ops, op{kind: opText, x: x, y: y, text: text, color: clr})
}

// Len returns the number of recorded calls.
func (c *Canvas) Len() int {
	return len(c.ops)
}

// Replay draws the recorded calls onto dst in order.
// Debug text is always drawn in the debug font's own color.
func (c *Canvas) Replay(dst *ebiten.Image) {
	dst.Fill(background)
	for _, o := range c.ops {
		switch o.kind {
		case opRect:
			vector.FillRect(dst, float32(o.x), float32(o.y), float32(o.w), float32(o.h), colorOf(o.color), false)
		case opCircle:
			vector.DrawFilledCircle(dst, float32(o.x), float32(o.y), float32(o.w), colorOf(o.color), true)
		case opText:
			ebitenutil.DebugPrintAt(dst, o.text, int(o.x), int(o.y))
		}
	}
}
