// Package measure models lengths tagged with a unit.
//
// Values are immutable: all fields are unexported and there are no setters,
// so shared instances such as Zero can be referenced from any number of trees.
package measure

import (
	"fmt"
	"strconv"

	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// Unit is the symbolic unit of a Measure.
type Unit string

const (
	PT      Unit = "pt"
	CM      Unit = "cm"
	MM      Unit = "mm"
	IN      Unit = "in"
	PX      Unit = "px"
	Percent Unit = "%"
)

var units = schema.NewEnum("unit", map[Unit]wire.MeasureType{
	PT:      wire.MeasurePT,
	CM:      wire.MeasureCM,
	MM:      wire.MeasureMM,
	IN:      wire.MeasureIN,
	PX:      wire.MeasurePX,
	Percent: wire.MeasurePercent,
})

// Value is implemented by Measure, Absolute and Relative.
// A nil pointer of any of them is an absent value.
type Value interface {
	Amount() float64
	Unit() Unit
	ToWire() (*wire.Measure, error)
}

// Measure is a number with any unit. Negative and zero values are legal.
type Measure struct {
	value float64
	unit  Unit
}

// New creates a measure. The unit is checked when the measure is serialized.
func New(value float64, unit Unit) *Measure {
	return &Measure{value: value, unit: unit}
}

// Amount returns the numeric value.
func (m *Measure) Amount() float64 { return m.value }

// Unit returns the unit.
func (m *Measure) Unit() Unit { return m.unit }

// String formats the measure as value and unit, e.g. "12pt".
func (m *Measure) String() string {
	return strconv.FormatFloat(m.value, 'f', -1, 64) + string(m.unit)
}

// ToWire returns nil for a nil measure.
func (m *Measure) ToWire() (*wire.Measure, error) {
	if m == nil {
		return nil, nil
	}
	mt, err := units.Lookup(m.unit)
	if err != nil {
		return nil, err
	}
	return &wire.Measure{Value: m.value, Type: mt}, nil
}

// Absolute is a measure in pt, cm, mm, in or px.
type Absolute struct {
	m Measure
}

// NewAbsolute creates an absolute measure, rejecting percent and unknown units.
func NewAbsolute(value float64, unit Unit) (*Absolute, error) {
	if unit == Percent {
		return nil, schema.Invalid("unit", string(unit), "percent is not an absolute unit")
	}
	if _, err := units.Lookup(unit); err != nil {
		return nil, err
	}
	return &Absolute{m: Measure{value: value, unit: unit}}, nil
}

// Pt returns v points.
func Pt(v float64) *Absolute { return &Absolute{m: Measure{value: v, unit: PT}} }
// Cm returns v centimeters.
func Cm(v float64) *Absolute { return &Absolute{m: Measure{value: v, unit: CM}} }
// Mm returns v millimeters.
func Mm(v float64) *Absolute { return &Absolute{m: Measure{value: v, unit: MM}} }
// In returns v inches.
func In(v float64) *Absolute { return &Absolute{m: Measure{value: v, unit: IN}} }
// Px returns v pixels.
func Px(v float64) *Absolute { return &Absolute{m: Measure{value: v, unit: PX}} }

var zero = Pt(0)

// Zero is the shared 0pt measure used as padding and offset default.
func Zero() *Absolute { return zero }

// Amount returns the numeric value.
func (a *Absolute) Amount() float64 { return a.m.value }

// Unit returns the unit.
func (a *Absolute) Unit() Unit { return a.m.unit }

// String formats the measure, e.g. "12mm".
func (a *Absolute) String() string { return a.m.String() }

// ToWire converts the measure to its wire form.
func (a *Absolute) ToWire() (*wire.Measure, error) {
	if a == nil {
		return nil, nil
	}
	return a.m.ToWire()
}

// Relative is a percentage.
type Relative struct {
	m Measure
}

// Pct returns v percent.
func Pct(v float64) *Relative { return &Relative{m: Measure{value: v, unit: Percent}} }

// Amount returns the percentage.
func (r *Relative) Amount() float64 { return r.m.value }

// Unit is always Percent.
func (r *Relative) Unit() Unit { return Percent }

// String formats the measure, e.g. "50%".
func (r *Relative) String() string { return r.m.String() }

// ToWire converts the measure to its wire form.
func (r *Relative) ToWire() (*wire.Measure, error) {
	if r == nil {
		return nil, nil
	}
	return r.m.ToWire()
}

// ToWire converts v, returning nil for a nil interface or nil pointer.
func ToWire(v Value) (*wire.Measure, error) {
	if v == nil {
		return nil, nil
	}
	return v.ToWire()
}

// Boxed converts v into a present boxed measure, or nil when v is absent.
func Boxed(v Value) (*wire.Boxed[*wire.Measure], error) {
	m, err := ToWire(v)
	if err != nil || m == nil {
		return nil, err
	}
	return wire.Box(m), nil
}

// Sides holds one optional value per side.
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// SideMeasures is a per-side set of absolute measures; nil means unspecified.
type SideMeasures Sides[*Absolute]

// ToWire converts the set sides; nil sides are left out.
func (s *SideMeasures) ToWire() (*wire.SideMeasures, error) {
	if s == nil {
		return nil, nil
	}
	var (
		out wire.SideMeasures
		err error
	)
	for _, side := range []struct {
		name string
		in   *Absolute
		out  **wire.Measure
	}{
		{"top", s.Top, &out.Top},
		{"right", s.Right, &out.Right},
		{"bottom", s.Bottom, &out.Bottom},
		{"left", s.Left, &out.Left},
	} {
		if *side.out, err = side.in.ToWire(); err != nil {
			return nil, fmt.Errorf("%s: %w", side.name, err)
		}
	}
	return &out, nil
}
