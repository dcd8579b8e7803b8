package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/palette"
	"github.com/pthm-cable/folio/sphere"
)

// highlightGain maps irradiance to glow alpha.
const highlightGain = 6

// SpherePose is the hero sphere state for one frame.
type SpherePose struct {
	Rotation       r2.Vec // Pitch, yaw
	Position       r2.Vec // World units, z=0 plane
	CameraDistance float64
	FOV            float64
}

// SphereDrawer renders the hero element: the glTF model when it loads, a
// primitive sphere otherwise, lit by additive light highlights.
type SphereDrawer struct {
	modelPath string
	radius    float64
	base      colorful.Color
	lights    []sphere.Light

	model    rl.Model
	hasModel bool
	target   rl.RenderTexture2D

	width, height int32
	initialized   bool
}

// NewSphereDrawer parses colours from config.
func NewSphereDrawer(c config.SphereConfig) (*SphereDrawer, error) {
	base, err := palette.Parse(c.Color)
	if err != nil {
		return nil, err
	}
	lights, err := sphere.LightsFromConfig(c.Lights)
	if err != nil {
		return nil, err
	}
	return &SphereDrawer{
		modelPath: c.Model,
		radius:    c.Radius,
		base:      base,
		lights:    lights,
	}, nil
}

// Init loads the model and allocates the target (must be called after
// raylib window is created).
func (d *SphereDrawer) Init(width, height int32) {
	if d.initialized {
		return
	}
	if d.modelPath != "" && rl.FileExists(d.modelPath) {
		d.model = rl.LoadModel(d.modelPath)
		d.hasModel = d.model.MeshCount > 0
	}
	if !d.hasModel {
		slog.Info("sphere model unavailable, using primitive", "path", d.modelPath)
	}
	d.allocate(width, height)
	d.initialized = true
}

func (d *SphereDrawer) allocate(width, height int32) {
	d.width, d.height = width, height
	if width > 0 && height > 0 {
		d.target = rl.LoadRenderTexture(width, height)
	}
}

// Resize reallocates the target for a new viewport.
func (d *SphereDrawer) Resize(width, height int32) {
	if !d.initialized || (width == d.width && height == d.height) {
		return
	}
	if d.target.ID != 0 {
		rl.UnloadRenderTexture(d.target)
		d.target = rl.RenderTexture2D{}
	}
	d.allocate(width, height)
}

// Render draws the sphere into its target. Call outside BeginDrawing's
// 2D passes.
func (d *SphereDrawer) Render(pose SpherePose) {
	if !d.initialized || d.target.ID == 0 {
		return
	}

	cam := rl.Camera3D{
		Position:   rl.Vector3{Z: float32(pose.CameraDistance)},
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(pose.FOV),
		Projection: rl.CameraPerspective,
	}
	center := rl.Vector3{X: float32(pose.Position.X), Y: float32(pose.Position.Y)}

	rl.BeginTextureMode(d.target)
	rl.ClearBackground(rl.Blank)

	rl.BeginMode3D(cam)
	body := palette.RGBA(d.base.BlendRgb(palette.Black, 0.85), 1)
	if d.hasModel {
		d.model.Transform = rl.MatrixRotateXYZ(rl.Vector3{
			X: float32(pose.Rotation.X),
			Y: float32(pose.Rotation.Y),
		})
		s := float32(d.radius)
		rl.DrawModelEx(d.model, center, rl.Vector3{Y: 1}, 0, rl.Vector3{X: s, Y: s, Z: s}, body)
	} else {
		rl.DrawSphereEx(center, float32(d.radius), 32, 32, body)
	}
	rl.EndMode3D()

	d.drawHighlights(pose)
	rl.EndTextureMode()
}

// drawHighlights adds a soft glow per light where it hits the surface.
func (d *SphereDrawer) drawHighlights(pose SpherePose) {
	center := r3.Vec{X: pose.Position.X, Y: pose.Position.Y}
	w, h := float64(d.width), float64(d.height)

	c, ok := sphere.Project(center, pose.CameraDistance, pose.FOV, w, h)
	edge, _ := sphere.Project(r3.Add(center, r3.Vec{Y: d.radius}), pose.CameraDistance, pose.FOV, w, h)
	if !ok {
		return
	}
	screenRadius := float32(c.Y - edge.Y)

	rl.BeginBlendMode(rl.BlendAdditive)
	for _, hl := range sphere.Highlights(center, d.radius, d.lights) {
		p, ok := sphere.Project(hl.Point, pose.CameraDistance, pose.FOV, w, h)
		if !ok {
			continue
		}
		alpha := min(hl.Strength*highlightGain, 1)
		inner := palette.RGBA(hl.Color, alpha)
		outer := palette.RGBA(hl.Color, 0)
		rl.DrawCircleGradient(int32(p.X), int32(p.Y), screenRadius*1.2, inner, outer)
	}
	rl.EndBlendMode()
}

// Blit draws the rendered sphere with its top-left at screenTop.
func (d *SphereDrawer) Blit(screenTop float64) {
	if d.target.ID == 0 {
		return
	}
	tex := d.target.Texture
	src := rl.Rectangle{Width: float32(tex.Width), Height: -float32(tex.Height)}
	dst := rl.Rectangle{Y: float32(screenTop), Width: float32(d.width), Height: float32(d.height)}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees the model and target.
func (d *SphereDrawer) Unload() {
	if !d.initialized {
		return
	}
	if d.hasModel {
		rl.UnloadModel(d.model)
		d.hasModel = false
	}
	if d.target.ID != 0 {
		rl.UnloadRenderTexture(d.target)
		d.target = rl.RenderTexture2D{}
	}
	d.initialized = false
}
