package content

import (
	"fmt"

	"github.com/aretw0/docframe/pkg/color"
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/wire"
)

// RuleBoundaries bound a rule in boundary mode.
type RuleBoundaries struct {
	Start measure.Value
	End   measure.Value
}

// RuleProperties are the optional settings of a rule.
type RuleProperties struct {
	XOffset    measure.Value
	YOffset    measure.Value
	Width      measure.Value
	Thickness  measure.Value
	Rotation   *float64
	Color      *color.Color
	Style      RuleStyle
	Mode       RuleMode
	Boundaries *RuleBoundaries
}

// Rule draws a line.
type Rule struct {
	props RuleProperties
}

// NewRule creates a rule.
func NewRule(props RuleProperties) *Rule {
	return &Rule{props: props}
}

// ToWire implements Element.
func (r *Rule) ToWire() (*wire.Node, error) {
	p := r.props
	out := &wire.Rule{Rotation: p.Rotation, Color: p.Color.ToWire()}

	var err error
	if out.XOffset, err = measure.ToWire(p.XOffset); err != nil {
		return nil, fmt.Errorf("rule: xOffset: %w", err)
	}
	if out.YOffset, err = measure.ToWire(p.YOffset); err != nil {
		return nil, fmt.Errorf("rule: yOffset: %w", err)
	}
	if out.Width, err = measure.ToWire(p.Width); err != nil {
		return nil, fmt.Errorf("rule: width: %w", err)
	}
	if out.Thickness, err = measure.ToWire(p.Thickness); err != nil {
		return nil, fmt.Errorf("rule: thickness: %w", err)
	}
	if out.Style, err = lookupOptional(ruleStyles, p.Style); err != nil {
		return nil, fmt.Errorf("rule: %w", err)
	}
	if out.Mode, err = lookupOptional(ruleModes, p.Mode); err != nil {
		return nil, fmt.Errorf("rule: %w", err)
	}
	if p.Boundaries != nil {
		out.Boundaries = &wire.RuleBoundaries{}
		if out.Boundaries.Start, err = measure.ToWire(p.Boundaries.Start); err != nil {
			return nil, fmt.Errorf("rule: boundaries: %w", err)
		}
		if out.Boundaries.End, err = measure.ToWire(p.Boundaries.End); err != nil {
			return nil, fmt.Errorf("rule: boundaries: %w", err)
		}
	}
	return &wire.Node{Variant: out}, nil
}
