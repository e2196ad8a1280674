package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/collisiondetect/assets"
	"github.com/milk9111/collisiondetect/obj"
	"github.com/milk9111/collisiondetect/scene"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	statusCollision = "Simple Rectangle Collision!"
	statusClear     = "No Collision"
)

// textureLoader resolves a texture path to a visual shared by every body
// that names it.
type textureLoader func(path string) (obj.Visual, error)

func cachedTextures(tex *assets.Textures) textureLoader {
	return func(path string) (obj.Visual, error) {
		img, err := tex.Get(path)
		if err != nil {
			return nil, err
		}
		return img, nil
	}
}

// BuildManager creates one body per scene body, in scene order.
func BuildManager(s *scene.Scene, load textureLoader) (*obj.Manager, error) {
	m := obj.NewManager()
	for _, spec := range s.Bodies {
		visual, err := load(spec.Texture)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", spec.Name, err)
		}
		b := obj.NewBodyAt(visual, spec.X, spec.Y)
		b.Name = spec.Name
		m.Add(b)
	}
	return m, nil
}

type Game struct {
	frames    int
	colliding bool
	debug     bool

	scene      *scene.Scene
	background color.RGBA
	manager    *obj.Manager
	input      *obj.Input

	sceneName string
	watcher   *scene.Watcher

	face   ebtext.Face
	logger *zap.Logger
	out    io.Writer
}

func NewGame(s *scene.Scene, m *obj.Manager, logger *zap.Logger, out io.Writer) *Game {
	return &Game{
		scene:      s,
		background: s.BackgroundColor(),
		manager:    m,
		input:      obj.NewInput(s.KeyRepeat.Delay, s.KeyRepeat.Interval),
		face:       ebtext.NewGoXFace(basicfont.Face7x13),
		logger:     logger,
		out:        out,
	}
}

// Watch reloads the named scene whenever w reports a change.
func (g *Game) Watch(sceneName string, w *scene.Watcher) {
	g.sceneName = sceneName
	g.watcher = w
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		g.reloadChanged()
	}

	return g.apply(g.input.Poll())
}

// apply reports the collision state of the frame on screen, then moves
// bodies for every mapped key press in s.
func (g *Game) apply(s obj.Snapshot) error {
	g.colliding = g.manager.CheckSubjectAgainstRest()
	if g.colliding {
		fmt.Fprintln(g.out, statusCollision)
	} else {
		fmt.Fprintln(g.out, statusClear)
	}

	if s.Quit {
		g.logger.Info("exiting", zap.Int("frames", g.frames))
		return ebiten.Termination
	}

	step := obj.StepFor(g.scene.Step, s.Shift, s.Z)
	for _, key := range s.Pressed {
		slot, dx, dy, ok := obj.Offset(key, step)
		if !ok {
			continue
		}
		g.manager.Slot(slot).Move(dx, dy)
		if ce := g.logger.Check(zap.DebugLevel, "move"); ce != nil {
			x, y := g.manager.Slot(slot).Position()
			ce.Write(zap.Stringer("slot", slot), zap.Stringer("key", key), zap.Float64("x", x), zap.Float64("y", y))
		}
	}
	return nil
}

func (g *Game) reloadChanged() {
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("scene watcher", zap.Error(err))
		}
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	s, err := scene.Load(g.sceneName)
	if err != nil {
		g.logger.Error("reload scene", zap.Strings("changed", changed), zap.Error(err))
		return
	}
	m, err := BuildManager(s, cachedTextures(assets.NewTextures()))
	if err != nil {
		g.logger.Error("reload bodies", zap.Strings("changed", changed), zap.Error(err))
		return
	}

	g.scene = s
	g.background = s.BackgroundColor()
	g.manager = m
	g.input.RepeatDelay = s.KeyRepeat.Delay
	g.input.RepeatInterval = s.KeyRepeat.Interval
	ebiten.SetWindowTitle(s.Window.Title)
	g.logger.Info("scene reloaded", zap.String("scene", g.sceneName), zap.Strings("changed", changed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	for b := range g.manager.All() {
		b.Draw(screen)
	}

	status, clr := statusClear, colornames.Limegreen
	if g.colliding {
		status, clr = statusCollision, colornames.Crimson
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, float64(g.scene.Window.Height-20))
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, status, g.face, op)

	if !g.debug {
		return
	}

	for b := range g.manager.All() {
		r := b.Bounds()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1.0, colornames.Yellow, false)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.scene.Window.Width), float64(g.scene.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// watchDirs lists the existing directories holding the scene file and the
// on-disk textures.
func watchDirs(sceneName string) []string {
	candidates := []string{
		filepath.Dir(sceneName),
		"scene",
		"media",
		filepath.Join("assets", "media"),
	}

	seen := make(map[string]struct{}, len(candidates))
	var dirs []string
	for _, dir := range candidates {
		clean := filepath.Clean(dir)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		if info, err := os.Stat(clean); err == nil && info.IsDir() {
			dirs = append(dirs, clean)
		}
	}
	return dirs
}
