package radial

import "fmt"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// PaintType identifies the kind of paint source a Material carries.
type PaintType int

const (
	// PaintNone is reported for a Material without paint.
	PaintNone PaintType = iota
	// PaintSolid is a single flat color.
	PaintSolid
	// PaintRadialGradient is a radial or elliptical gradient.
	PaintRadialGradient
)

// String returns the paint type name.
func (t PaintType) String() string {
	switch t {
	case PaintNone:
		return "none"
	case PaintSolid:
		return "solid"
	case PaintRadialGradient:
		return "radial-gradient"
	default:
		return fmt.Sprintf("PaintType(%d)", int(t))
	}
}

// Paint is anything a Material can carry. The Filler only draws
// *RadialGradient; other paints are reported as a mismatch.
type Paint interface {
	PaintType() PaintType
}

// Solid is a single-color paint.
type Solid struct {
	Color RGBA
}

// PaintType implements Paint.
func (Solid) PaintType() PaintType { return PaintSolid }

// Material pairs a paint source with an opacity in [0, 255] that scales
// the alpha of every color the paint produces.
type Material struct {
	Paint         Paint
	ScaledOpacity uint8
}
