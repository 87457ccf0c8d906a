package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/radial"
	"github.com/gogpu/radial/raster"
)

// Scene is a TOML scene file: a background and a list of gradient-filled
// shapes drawn in order.
type Scene struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	Gamma      float64 `toml:"gamma"`
	Shapes     []Shape `toml:"shape"`
}

// Shape is one filled outline.
type Shape struct {
	Kind     string       `toml:"kind"`
	Rule     string       `toml:"rule"`
	Opacity  *float64     `toml:"opacity"`
	Rect     [4]float64   `toml:"rect"`
	Ellipse  [4]float64   `toml:"ellipse"`
	Points   [][2]float64 `toml:"points"`
	Gradient Gradient     `toml:"gradient"`
}

// Gradient describes the radial gradient a shape is filled with.
type Gradient struct {
	Center [2]float64  `toml:"center"`
	Radius [2]float64  `toml:"radius"`
	Focus  *[2]float64 `toml:"focus"`
	Spread string      `toml:"spread"`
	Stops  []Stop      `toml:"stop"`
}

// Stop is a gradient color stop. Color is a CSS hex color; Alpha defaults
// to 1.
type Stop struct {
	Offset float64  `toml:"offset"`
	Color  string   `toml:"color"`
	Alpha  *float64 `toml:"alpha"`
}

// DecodeScene reads a scene, rejecting unknown keys.
func DecodeScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decode scene: %s", strict.String())
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scene for values the renderer cannot draw.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene size %dx%d: must be positive", s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := parseColor(s.Background, nil); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

func (sh *Shape) validate() error {
	switch sh.Kind {
	case "rect", "ellipse":
	case "polygon":
		if len(sh.Points) < 3 {
			return fmt.Errorf("polygon needs at least 3 points, got %d", len(sh.Points))
		}
	default:
		return fmt.Errorf("unknown kind %q", sh.Kind)
	}
	if _, err := parseRule(sh.Rule); err != nil {
		return err
	}
	g := sh.Gradient
	if g.Radius[0] <= 0 || g.Radius[1] <= 0 {
		return fmt.Errorf("gradient radius %v: must be positive", g.Radius)
	}
	if _, err := parseSpread(g.Spread); err != nil {
		return err
	}
	if len(g.Stops) == 0 {
		return errors.New("gradient has no stops")
	}
	for i, st := range g.Stops {
		if _, err := parseColor(st.Color, st.Alpha); err != nil {
			return fmt.Errorf("stop %d: %w", i, err)
		}
	}
	return nil
}

func parseRule(s string) (radial.FillRule, error) {
	switch s {
	case "", "nonzero":
		return radial.FillRuleNonZero, nil
	case "evenodd":
		return radial.FillRuleEvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", s)
	}
}

func parseSpread(s string) (radial.Spread, error) {
	switch s {
	case "", "pad":
		return radial.SpreadPad, nil
	case "repeat":
		return radial.SpreadRepeat, nil
	case "reflect":
		return radial.SpreadReflect, nil
	default:
		return 0, fmt.Errorf("unknown spread %q", s)
	}
}

func parseColor(hex string, alpha *float64) (radial.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return radial.RGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	c = c.Clamped()
	a := 1.0
	if alpha != nil {
		a = min(max(*alpha, 0), 1)
	}
	return radial.RGBA{R: c.R, G: c.G, B: c.B, A: a}, nil
}

func opacity(v *float64) uint8 {
	if v == nil {
		return 255
	}
	return uint8(min(max(*v, 0), 1)*255 + 0.5)
}

// gradient builds the paint for a validated shape.
func (g *Gradient) gradient() *radial.RadialGradient {
	rg := radial.NewEllipticalGradient(g.Center[0], g.Center[1], g.Radius[0], g.Radius[1])
	if g.Focus != nil {
		rg.SetFocus(g.Focus[0], g.Focus[1])
	}
	spread, _ := parseSpread(g.Spread)
	rg.SetStyle(spread)
	for _, st := range g.Stops {
		c, _ := parseColor(st.Color, st.Alpha)
		rg.AddColorStop(st.Offset, c)
	}
	return rg
}

func (sh *Shape) outline(r *raster.Rasterizer) {
	switch sh.Kind {
	case "rect":
		r.AddRect(sh.Rect[0], sh.Rect[1], sh.Rect[2], sh.Rect[3])
	case "ellipse":
		r.AddEllipse(sh.Ellipse[0], sh.Ellipse[1], sh.Ellipse[2], sh.Ellipse[3])
	case "polygon":
		r.AddPolygon(sh.Points...)
	}
}

// Render draws a validated scene. With parallel set, each shape is filled
// in row bands on the filler's worker pool.
func (s *Scene) Render(ctx context.Context, f *radial.Filler, parallel bool) (*radial.Buffer, error) {
	buf := radial.NewBuffer(s.Width, s.Height)
	if s.Background != "" {
		bg, _ := parseColor(s.Background, nil)
		buf.Clear(bg)
	}

	r := raster.NewRasterizer(s.Width, s.Height)
	rows := radial.NewRowTable(s.Height)
	for i := range s.Shapes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sh := &s.Shapes[i]
		r.Reset()
		sh.outline(r)
		r.CellsInto(rows)

		rule, _ := parseRule(sh.Rule)
		m := radial.Material{Paint: sh.Gradient.gradient(), ScaledOpacity: opacity(sh.Opacity)}
		var err error
		if parallel {
			err = f.FillParallel(ctx, m, rule, rows, 0, s.Height-1, buf)
		} else {
			err = f.Fill(m, rule, rows, 0, s.Height-1, buf)
		}
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return buf, nil
}
