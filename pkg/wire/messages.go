package wire

// Measure is a numeric value tagged with its unit.
type Measure struct {
	Value float64
	Type  MeasureType
}

func (x *Measure) appendFields(b []byte) []byte {
	b = appendDouble(b, 1, x.Value)
	return appendEnum(b, 2, x.Type)
}

// Color is either RGB (channels 0-255) or CMYK (channels 0-100), selected by Type.
// Only the channels belonging to Type are encoded.
type Color struct {
	Type       ColorType
	R, G, B    int32
	C, M, Y, K int32
}

func (x *Color) appendFields(b []byte) []byte {
	b = appendEnum(b, 1, x.Type)
	switch x.Type {
	case ColorCMYK:
		b = appendInt32(b, 5, x.C)
		b = appendInt32(b, 6, x.M)
		b = appendInt32(b, 7, x.Y)
		b = appendInt32(b, 8, x.K)
	default:
		b = appendInt32(b, 2, x.R)
		b = appendInt32(b, 3, x.G)
		b = appendInt32(b, 4, x.B)
	}
	return b
}

// Font is the wire form of a font.
type Font struct {
	Name string
}

func (x *Font) appendFields(b []byte) []byte {
	return appendString(b, 1, x.Name)
}

// Border is the wire form of a border.
type Border struct {
	Weight *Measure
	Color  *Color
}

func (x *Border) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Weight)
	return appendOpt(b, 2, x.Color)
}

// SideBorders is the wire form of per-side borders.
type SideBorders struct {
	Top, Right, Bottom, Left *Border
}

func (x *SideBorders) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Top)
	b = appendOpt(b, 2, x.Right)
	b = appendOpt(b, 3, x.Bottom)
	return appendOpt(b, 4, x.Left)
}

// SideMeasures is the wire form of per-side measures.
type SideMeasures struct {
	Top, Right, Bottom, Left *Measure
}

func (x *SideMeasures) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Top)
	b = appendOpt(b, 2, x.Right)
	b = appendOpt(b, 3, x.Bottom)
	return appendOpt(b, 4, x.Left)
}

// TableSettings holds the settings of a table node.
type TableSettings struct {
	Width        *Measure
	LeftMeasure  *Boxed[bool]
	XOffset      *Measure
	RepeatHeader *Boxed[int32]
}

func (x *TableSettings) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Width)
	b = appendOpt(b, 2, x.LeftMeasure)
	b = appendOpt(b, 3, x.XOffset)
	return appendOpt(b, 4, x.RepeatHeader)
}

// TableRowSettings holds the settings of a table row node.
type TableRowSettings struct {
	MinHeight *Measure
}

func (x *TableRowSettings) appendFields(b []byte) []byte {
	return appendOpt(b, 1, x.MinHeight)
}

// TableCellSettings holds the settings of a table cell node.
type TableCellSettings struct {
	Align                  *Boxed[HorizontalAlignment]
	BackgroundColor        *Color
	Border                 *SideBorders
	Margin                 *SideMeasures
	Padding                *SideMeasures
	Valign                 *Boxed[VerticalAlignment]
	Width                  *Measure
	Rotation               *Boxed[float64]
	DefaultParagraphFormat *Boxed[string]
}

func (x *TableCellSettings) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Align)
	b = appendOpt(b, 2, x.BackgroundColor)
	b = appendOpt(b, 3, x.Border)
	b = appendOpt(b, 4, x.Margin)
	b = appendOpt(b, 5, x.Padding)
	b = appendOpt(b, 6, x.Valign)
	b = appendOpt(b, 7, x.Width)
	b = appendOpt(b, 8, x.Rotation)
	return appendOpt(b, 9, x.DefaultParagraphFormat)
}

// FlipSettings mirrors an image along either axis.
type FlipSettings struct {
	X, Y *bool
}

func (x *FlipSettings) appendFields(b []byte) []byte {
	b = appendOptBool(b, 1, x.X)
	return appendOptBool(b, 2, x.Y)
}

// CropSettings cuts an image to a rectangle.
type CropSettings struct {
	X, Y, Width, Height *Boxed[*Measure]
}

func (x *CropSettings) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.X)
	b = appendOpt(b, 2, x.Y)
	b = appendOpt(b, 3, x.Width)
	return appendOpt(b, 4, x.Height)
}

// RuleBoundaries bound a rule in boundary mode.
type RuleBoundaries struct {
	Start, End *Measure
}

func (x *RuleBoundaries) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Start)
	return appendOpt(b, 2, x.End)
}

// ColumnSettings describes one column layout inside a CDef.
type ColumnSettings struct {
	Width            *Boxed[*Measure]
	PositionOffset   *Boxed[*Measure]
	PositionMode     PositionMode
	InterColumnSpace *Boxed[*Measure]
}

func (x *ColumnSettings) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Width)
	b = appendOpt(b, 2, x.PositionOffset)
	b = appendEnum(b, 3, x.PositionMode)
	return appendOpt(b, 4, x.InterColumnSpace)
}
