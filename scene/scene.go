package scene

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultName is the scene used when no file is given.
const DefaultName = "default.yaml"

//go:embed *.yaml
var scenesFS embed.FS

var (
	ErrNoBodies        = errors.New("scene: need a body for each of arrows and wasd")
	ErrInvalidWindow   = errors.New("scene: window size must be positive")
	ErrInvalidStep     = errors.New("scene: step must be positive and finite")
	ErrInvalidPosition = errors.New("scene: body position must be finite")
)

type Scene struct {
	Window     WindowSpec    `yaml:"window"`
	Background string        `yaml:"background"`
	Step       float64       `yaml:"step"`
	KeyRepeat  KeyRepeatSpec `yaml:"key_repeat"`
	Bodies     []BodySpec    `yaml:"bodies"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// KeyRepeatSpec is measured in ticks.
type KeyRepeatSpec struct {
	Delay    int `yaml:"delay"`
	Interval int `yaml:"interval"`
}

type BodySpec struct {
	Name    string  `yaml:"name"`
	Texture string  `yaml:"texture"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}

// Load reads a scene from disk, falling back to the embedded scenes.
func Load(name string) (*Scene, error) {
	data, err := read(name)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", name, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", name, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Missing window, background, step and
// key repeat values take their defaults.
func Parse(data []byte) (*Scene, error) {
	s := Scene{
		Window:     WindowSpec{Width: 800, Height: 600, Title: "collision-detect"},
		Background: "#000000",
		Step:       20,
		KeyRepeat:  KeyRepeatSpec{Delay: 30, Interval: 3},
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return ErrInvalidWindow
	}
	if !finite(s.Step) || s.Step <= 0 {
		return ErrInvalidStep
	}
	if len(s.Bodies) < 2 {
		return ErrNoBodies
	}
	for i, b := range s.Bodies {
		if strings.TrimSpace(b.Texture) == "" {
			return fmt.Errorf("scene: body %d (%q) has no texture", i, b.Name)
		}
		if !finite(b.X) || !finite(b.Y) {
			return fmt.Errorf("%w: body %d (%q)", ErrInvalidPosition, i, b.Name)
		}
	}
	if _, err := parseHexColor(s.Background); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background color.
func (s *Scene) BackgroundColor() color.RGBA {
	c, err := parseHexColor(s.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("scene: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("scene: invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func read(name string) ([]byte, error) {
	if name == "" {
		name = DefaultName
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(filepath.Join("scene", name)); err == nil {
		return data, nil
	}
	return scenesFS.ReadFile(filepath.ToSlash(filepath.Base(name)))
}
