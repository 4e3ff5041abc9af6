package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/dragball/common"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type BallSpec struct {
	Name      string        `yaml:"name"`
	Window    WindowSpec    `yaml:"window"`
	Transform TransformSpec `yaml:"transform"`
	Circle    CircleSpec    `yaml:"circle"`
	Physics   PhysicsSpec   `yaml:"physics"`
	Script    string        `yaml:"script"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type CircleSpec struct {
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
}

type PhysicsSpec struct {
	Gravity     *float64 `yaml:"gravity"`
	Restitution *float64 `yaml:"restitution"`
	AccelX      float64  `yaml:"accel_x"`
	VelocityX   float64  `yaml:"velocity_x"`
	VelocityY   float64  `yaml:"velocity_y"`
}

// LoadBallSpec loads, defaults and validates a ball prefab.
func LoadBallSpec(name string) (*BallSpec, error) {
	spec, err := LoadSpec[BallSpec](name)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *BallSpec) applyDefaults() {
	if s.Name == "" {
		s.Name = "ball"
	}
	if s.Window.Width == 0 {
		s.Window.Width = common.BaseWidth
	}
	if s.Window.Height == 0 {
		s.Window.Height = common.BaseHeight
	}
	if s.Window.Title == "" {
		s.Window.Title = "dragball"
	}
	if s.Circle.Radius == 0 {
		s.Circle.Radius = common.BallRadius
	}
	if s.Circle.Color == nil {
		s.Circle.Color = &YAMLColor{Color: color.Black}
	}
	if s.Physics.Gravity == nil {
		g := common.Gravity
		s.Physics.Gravity = &g
	}
	if s.Physics.Restitution == nil {
		r := common.Restitution
		s.Physics.Restitution = &r
	}
}

func (s *BallSpec) Validate() error {
	switch {
	case s.Circle.Radius <= 0:
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidSpec, s.Circle.Radius)
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidSpec, s.Window.Width, s.Window.Height)
	case s.Physics.Restitution != nil && (*s.Physics.Restitution < 0 || *s.Physics.Restitution > 1):
		return fmt.Errorf("%w: restitution must be in [0,1], got %v", ErrInvalidSpec, *s.Physics.Restitution)
	}
	return nil
}

// GravityValue returns the configured gravity, falling back to Earth's.
func (s *BallSpec) GravityValue() float64 {
	if s == nil || s.Physics.Gravity == nil {
		return common.Gravity
	}
	return *s.Physics.Gravity
}

func (s *BallSpec) RestitutionValue() float64 {
	if s == nil || s.Physics.Restitution == nil {
		return common.Restitution
	}
	return *s.Physics.Restitution
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa, with or without the leading #.
func ParseHexColor(raw string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
