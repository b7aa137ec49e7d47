package systems

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/automoto/solar-ride/assets"
	"github.com/automoto/solar-ride/checkpoints"
	"github.com/automoto/solar-ride/components"
	cfg "github.com/automoto/solar-ride/config"
	"github.com/automoto/solar-ride/fonts"
	"github.com/automoto/solar-ride/gamemath"
	"github.com/automoto/solar-ride/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const starDistance = 500

// Star directions are fixed for the process so the sky does not shimmer.
var starDirs []gamemath.Vec3

// view is the camera state every renderer projects with.
type view struct {
	pos    gamemath.Vec3
	rot    gamemath.Quat
	lens   gamemath.Lens
	width  float64
	height float64
}

func currentView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	entry, ok := tags.CameraRig.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(entry)
	if !camera.Placed {
		return view{}, false
	}
	return view{
		pos:    camera.Pose.Position,
		rot:    camera.Pose.Orientation,
		lens:   camera.Lens,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}, true
}

func (v view) project(p gamemath.Vec3) (x, y, depth float64, ok bool) {
	s, depth, ok := v.lens.Project(v.pos, v.rot, p, v.width, v.height)
	return s.X, s.Y, depth, ok
}

// DrawBackground clears the frame and draws a star field at a fixed distance
// around the camera.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}
	if len(starDirs) != cfg.UI.StarCount {
		starDirs = makeStars(cfg.UI.StarCount)
	}

	eye := v.lens.Eye(v.pos, v.rot)
	for _, dir := range starDirs {
		x, y, _, ok := v.project(eye.Add(dir.Scale(starDistance)))
		if !ok || x < 0 || y < 0 || x >= v.width || y >= v.height {
			continue
		}
		vector.FillRect(screen, float32(x), float32(y), 1, 1, cfg.UI.StarColor, false)
	}
}

// makeStars spreads n unit directions uniformly over the sphere.
func makeStars(n int) []gamemath.Vec3 {
	rng := rand.New(rand.NewPCG(7, 11))
	dirs := make([]gamemath.Vec3, n)
	for i := range dirs {
		z := rng.Float64()*2 - 1
		a := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		dirs[i] = gamemath.NewVec3(r*math.Cos(a), r*math.Sin(a), z)
	}
	return dirs
}

// DrawPath draws the sampled route as a polyline, dropped below the rail the
// camera rides on.
func DrawPath(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}
	routeEntry, ok := components.Route.First(ecs.World)
	if !ok {
		return
	}
	path := components.Route.Get(routeEntry).Path

	stride := max(cfg.UI.PathStride, 1)
	drop := gamemath.NewVec3(0, cfg.Ride.PathDropY, 0)

	var prevX, prevY float64
	havePrev := false
	for i := 0; i < path.Len(); i += stride {
		x, y, _, ok := v.project(path.At(i).Add(drop))
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y),
				cfg.UI.PathWidth, cfg.UI.PathColor, true)
		}
		prevX, prevY, havePrev = x, y, true
	}
}

// DrawCheckpoints draws every checkpoint label facing the screen. Before data
// is bound only the welcome placeholder is drawn.
func DrawCheckpoints(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}

	skyEntry, ok := components.SkyData.First(ecs.World)
	if ok {
		sky := components.SkyData.Get(skyEntry)
		if sky.State != components.FetchBound {
			drawLabel(screen, v, sky.Placement.Placeholder(), 1, false)
			return
		}
	}

	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		alpha := float32(1)
		if e.HasComponent(components.Reveal) {
			alpha = components.Reveal.Get(e).Alpha
		}
		drawLabel(screen, v, cp.Checkpoint, alpha, cp.Active)
	})
}

func drawLabel(screen *ebiten.Image, v view, cp checkpoints.Checkpoint, alpha float32, active bool) {
	x, y, depth, ok := v.project(cp.Position)
	if !ok || depth < cfg.Checkpoint.LabelMinDepth || depth > cfg.Checkpoint.LabelMaxDepth {
		return
	}

	a := float64(alpha) * depthFade(depth) * facingFade(v, cp)
	if a <= 0.01 {
		return
	}

	titleFace := fonts.Title.Get()
	subFace := fonts.Subtitle.Get()
	lines := cp.SubtitleLines(cfg.Checkpoint.SubtitleWrapLength)

	titleBounds := text.BoundString(titleFace, cp.Title)
	lineHeight := subFace.Metrics().Height.Ceil()
	boxW := titleBounds.Dx()
	for _, l := range lines {
		boxW = max(boxW, text.BoundString(subFace, l).Dx())
	}
	boxH := titleBounds.Dy() + lineHeight*len(lines) + int(cfg.Checkpoint.LabelPadding)

	pad := cfg.Checkpoint.LabelPadding
	left := x - float64(boxW)/2
	top := y - float64(boxH)/2
	vector.FillRect(screen,
		float32(left-pad), float32(top-pad),
		float32(float64(boxW)+2*pad), float32(float64(boxH)+2*pad),
		fade(cfg.Checkpoint.LabelBoxColor, a), false)

	titleColor := cfg.Checkpoint.TitleColor
	if active {
		titleColor = cfg.Checkpoint.ActiveTitleColor
	}
	baseline := int(top) + titleBounds.Dy()
	text.Draw(screen, cp.Title, titleFace, int(x)-titleBounds.Dx()/2, baseline, fade(titleColor, a))

	baseline += int(pad)
	for _, l := range lines {
		baseline += lineHeight
		text.Draw(screen, l, subFace, int(left), baseline, fade(cfg.Checkpoint.SubtitleColor, a))
	}
}

// depthFade dims labels as they approach the far draw limit.
func depthFade(depth float64) float64 {
	far := cfg.Checkpoint.LabelMaxDepth
	return gamemath.Clamp01((far - depth) / (far * 0.25))
}

// facingFade dims labels seen edge-on or from behind, using the authored
// rotation of the anchor.
func facingFade(v view, cp checkpoints.Checkpoint) float64 {
	normal := gamemath.QuatFromEuler(cp.Rotation).Rotate(gamemath.NewVec3(0, 0, 1))
	toEye := v.lens.Eye(v.pos, v.rot).Sub(cp.Position)
	l := toEye.Length()
	if l == 0 {
		return 1
	}
	facing := normal.Dot(toEye.Scale(1 / l))
	return 0.4 + 0.6*math.Abs(facing)
}

// fade scales a premultiplied color by a.
func fade(c color.RGBA, a float64) color.RGBA {
	a = gamemath.Clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

var vignetteOp = &ebiten.DrawRectShaderOptions{}

// DrawVignette darkens the screen edges. Without a compiled shader it draws
// nothing.
func DrawVignette(ecs *ecs.ECS, screen *ebiten.Image) {
	if assets.VignetteShader == nil || cfg.UI.VignetteStrength <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vignetteOp.Uniforms = map[string]any{
		"Size":     []float32{float32(w), float32(h)},
		"Strength": float32(cfg.UI.VignetteStrength),
	}
	screen.DrawRectShader(w, h, assets.VignetteShader, vignetteOp)
}
