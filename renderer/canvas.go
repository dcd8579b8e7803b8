package renderer

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrCanvasUnavailable is returned by Acquire when no render texture could
// be allocated (window not open, zero-sized viewport, GPU out of memory).
var ErrCanvasUnavailable = errors.New("renderer: field canvas unavailable")

// FieldCanvas is the particle field's drawing surface: a render texture of
// viewport*dpr device pixels, drawn through a Camera2D zoomed by dpr so that
// callers work in CSS pixels. It implements field.Canvas.
type FieldCanvas struct {
	target rl.RenderTexture2D
	camera rl.Camera2D

	width, height float64 // CSS pixels
	dpr           float64
	ready         bool
	warned        bool
	drawing       bool
}

// NewFieldCanvas creates an unallocated canvas. Call Acquire after the
// window is open.
func NewFieldCanvas() *FieldCanvas {
	return &FieldCanvas{dpr: 1}
}

// Acquire (re)allocates the backing texture for a viewport of w x h CSS
// pixels at the given backing-store size. Unavailability is logged once.
func (c *FieldCanvas) Acquire(w, h float64, backingW, backingH int) error {
	c.release()

	if backingW <= 0 || backingH <= 0 || !rl.IsWindowReady() {
		c.warn("empty backing store", backingW, backingH)
		return ErrCanvasUnavailable
	}

	c.target = rl.LoadRenderTexture(int32(backingW), int32(backingH))
	if c.target.ID == 0 {
		c.warn("render texture allocation failed", backingW, backingH)
		return ErrCanvasUnavailable
	}
	rl.SetTextureFilter(c.target.Texture, rl.FilterBilinear)

	c.width, c.height = w, h
	c.dpr = float64(backingW) / w
	c.camera = rl.Camera2D{Zoom: float32(c.dpr)}
	c.ready = true
	c.warned = false
	return nil
}

func (c *FieldCanvas) warn(reason string, backingW, backingH int) {
	if c.warned {
		return
	}
	c.warned = true
	slog.Warn("canvas unavailable", "reason", reason, "backing_w", backingW, "backing_h", backingH)
}

// Ready reports whether the canvas has a backing texture.
func (c *FieldCanvas) Ready() bool { return c.ready }

// Begin starts drawing into the texture. Must be paired with End.
func (c *FieldCanvas) Begin() bool {
	if !c.ready {
		return false
	}
	rl.BeginTextureMode(c.target)
	rl.BeginMode2D(c.camera)
	c.drawing = true
	return true
}

// End finishes drawing into the texture.
func (c *FieldCanvas) End() {
	if !c.drawing {
		return
	}
	rl.EndMode2D()
	rl.EndTextureMode()
	c.drawing = false
}

// Clear erases the canvas to transparent.
func (c *FieldCanvas) Clear() {
	rl.ClearBackground(rl.Blank)
}

// FillCircle draws a white dot.
func (c *FieldCanvas) FillCircle(center r2.Vec, radius, alpha float64) {
	rl.DrawCircleV(vec2(center), float32(radius), rl.Fade(rl.White, float32(alpha)))
}

// StrokeLine draws a white line.
func (c *FieldCanvas) StrokeLine(a, b r2.Vec, width, alpha float64) {
	rl.DrawLineEx(vec2(a), vec2(b), float32(width), rl.Fade(rl.White, float32(alpha)))
}

// Blit draws the texture onto the screen with its top-left at screenTop.
func (c *FieldCanvas) Blit(screenTop float64) {
	c.BlitAt(0, screenTop)
}

// BlitAt draws the texture with its top-left at (x, y).
func (c *FieldCanvas) BlitAt(x, y float64) {
	if !c.ready {
		return
	}
	tex := c.target.Texture
	// Render textures are stored upside down
	src := rl.Rectangle{Width: float32(tex.Width), Height: -float32(tex.Height)}
	dst := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(c.width), Height: float32(c.height)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees the texture.
func (c *FieldCanvas) Unload() {
	c.release()
}

func (c *FieldCanvas) release() {
	if c.ready {
		rl.UnloadRenderTexture(c.target)
	}
	c.target = rl.RenderTexture2D{}
	c.ready = false
}

func vec2(v r2.Vec) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
