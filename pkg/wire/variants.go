package wire

// Text is the text node variant.
type Text struct {
	Content string
}

// Kind implements Variant.
func (*Text) Kind() Kind { return KindText }

func (x *Text) appendFields(b []byte) []byte {
	return appendString(b, 1, x.Content)
}

// Linebreak is the linebreak node variant.
type Linebreak struct{}

// Kind implements Variant.
func (*Linebreak) Kind() Kind                   { return KindLinebreak }
func (*Linebreak) appendFields(b []byte) []byte { return b }

// NewPage is the newPage node variant.
type NewPage struct{}

// Kind implements Variant.
func (*NewPage) Kind() Kind                   { return KindNewPage }
func (*NewPage) appendFields(b []byte) []byte { return b }

// Span is the span node variant.
type Span struct {
	Bold          *Boxed[bool]
	Italic        *Boxed[bool]
	Underline     *Boxed[bool]
	Strikethrough *Boxed[bool]
	Subscript     *Boxed[bool]
	Superscript   *Boxed[bool]
	Color         *Color
}

// Kind implements Variant.
func (*Span) Kind() Kind { return KindSpan }

func (x *Span) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Bold)
	b = appendOpt(b, 2, x.Italic)
	b = appendOpt(b, 3, x.Underline)
	b = appendOpt(b, 4, x.Strikethrough)
	b = appendOpt(b, 5, x.Subscript)
	b = appendOpt(b, 6, x.Superscript)
	return appendOpt(b, 7, x.Color)
}

// Paragraph references its format by name; Overwrite carries local changes.
type Paragraph struct {
	Format    *ParagraphFormat
	Overwrite *ParagraphFormat
}

// Kind implements Variant.
func (*Paragraph) Kind() Kind { return KindParagraph }

func (x *Paragraph) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Format)
	return appendOpt(b, 2, x.Overwrite)
}

// ParagraphFormat is the paragraphFormat node variant.
type ParagraphFormat struct {
	Default          *Boxed[bool]
	Name             *Boxed[string]
	Alignment        *Boxed[HorizontalAlignment]
	Font             *Boxed[*Font]
	FontSize         *Boxed[*Measure]
	CharacterWidth   *Boxed[*Measure]
	CharacterSpacing *Boxed[*Measure]
	LineFeed         *Boxed[*Measure]
	IndentionLevel   *Boxed[int32]
	IndentionWidth   *Boxed[*Measure]
	Bold             *Boxed[bool]
	Italic           *Boxed[bool]
	SpaceAbove       *Boxed[*Measure]
	SpaceBelow       *Boxed[*Measure]
}

// Kind implements Variant.
func (*ParagraphFormat) Kind() Kind { return KindParagraphFormat }

func (x *ParagraphFormat) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Default)
	b = appendOpt(b, 2, x.Name)
	b = appendOpt(b, 3, x.Alignment)
	b = appendOpt(b, 4, x.Font)
	b = appendOpt(b, 5, x.FontSize)
	b = appendOpt(b, 6, x.CharacterWidth)
	b = appendOpt(b, 7, x.CharacterSpacing)
	b = appendOpt(b, 8, x.LineFeed)
	b = appendOpt(b, 9, x.IndentionLevel)
	b = appendOpt(b, 10, x.IndentionWidth)
	b = appendOpt(b, 11, x.Bold)
	b = appendOpt(b, 12, x.Italic)
	b = appendOpt(b, 13, x.SpaceAbove)
	return appendOpt(b, 14, x.SpaceBelow)
}

// Table is the table node variant.
type Table struct {
	Settings *TableSettings
}

// Kind implements Variant.
func (*Table) Kind() Kind { return KindTable }

func (x *Table) appendFields(b []byte) []byte {
	return appendOpt(b, 1, x.Settings)
}

// TableRow is the tableRow node variant.
type TableRow struct {
	Settings *TableRowSettings
}

// Kind implements Variant.
func (*TableRow) Kind() Kind { return KindTableRow }

func (x *TableRow) appendFields(b []byte) []byte {
	return appendOpt(b, 1, x.Settings)
}

// TableCell is the tableCell node variant.
type TableCell struct {
	Settings *TableCellSettings
}

// Kind implements Variant.
func (*TableCell) Kind() Kind { return KindTableCell }

func (x *TableCell) appendFields(b []byte) []byte {
	return appendOpt(b, 1, x.Settings)
}

// TableContentGroup is the tableContentGroup node variant.
type TableContentGroup struct {
	Uuid *string
}

// Kind implements Variant.
func (*TableContentGroup) Kind() Kind { return KindTableContentGroup }

func (x *TableContentGroup) appendFields(b []byte) []byte {
	return appendOptString(b, 1, x.Uuid)
}

// Image is the image node variant.
type Image struct {
	Alt              *string
	Name             *string
	Src              *string
	Filename         *string
	Scale            *Boxed[float64]
	ColumnScale      *Boxed[float64]
	Width            *Boxed[*Measure]
	Height           *Boxed[*Measure]
	X                *Boxed[*Measure]
	Y                *Boxed[*Measure]
	PositionAbsolute *Boxed[bool]
	Rotation         *float64
	FlipSettings     *FlipSettings
	CropSettings     *CropSettings
	ReferencePoint   *ReferencePoint
	Hyperlink        *string
	ScaleType        *ImageScaleType
	Uuid             *string
	ImageContent     *string
}

// Kind implements Variant.
func (*Image) Kind() Kind { return KindImage }

func (x *Image) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Alt)
	b = appendOptString(b, 2, x.Name)
	b = appendOptString(b, 3, x.Src)
	b = appendOptString(b, 4, x.Filename)
	b = appendOpt(b, 5, x.Scale)
	b = appendOpt(b, 6, x.ColumnScale)
	b = appendOpt(b, 7, x.Width)
	b = appendOpt(b, 8, x.Height)
	b = appendOpt(b, 9, x.X)
	b = appendOpt(b, 10, x.Y)
	b = appendOpt(b, 11, x.PositionAbsolute)
	b = appendOptDouble(b, 12, x.Rotation)
	b = appendOpt(b, 13, x.FlipSettings)
	b = appendOpt(b, 14, x.CropSettings)
	b = appendOptEnum(b, 15, x.ReferencePoint)
	b = appendOptString(b, 16, x.Hyperlink)
	b = appendOptEnum(b, 17, x.ScaleType)
	b = appendOptString(b, 18, x.Uuid)
	return appendOptString(b, 19, x.ImageContent)
}

// Barcode is the barcode node variant.
type Barcode struct {
	Type             BarcodeType
	PositionAbsolute bool
	ReferencePoint   ReferencePoint
	X                *Measure
	Y                *Measure
	Rotation         float64
	Width            *Measure
	Height           *Measure
	Padding          *Measure
	Data             string
	Code             *string
	AltText          *string
	Uuid             *string
}

// Kind implements Variant.
func (*Barcode) Kind() Kind { return KindBarcode }

func (x *Barcode) appendFields(b []byte) []byte {
	b = appendEnum(b, 1, x.Type)
	b = appendBool(b, 2, x.PositionAbsolute)
	b = appendEnum(b, 3, x.ReferencePoint)
	b = appendOpt(b, 4, x.X)
	b = appendOpt(b, 5, x.Y)
	b = appendDouble(b, 6, x.Rotation)
	b = appendOpt(b, 7, x.Width)
	b = appendOpt(b, 8, x.Height)
	b = appendOpt(b, 9, x.Padding)
	b = appendString(b, 10, x.Data)
	b = appendOptString(b, 11, x.Code)
	b = appendOptString(b, 12, x.AltText)
	return appendOptString(b, 13, x.Uuid)
}

// Variable is the variable node variant.
type Variable struct {
	Path        *string
	Content     *string
	FormatUuid  *string
	SpecialType *VariableSpecialType
	Uuid        *string
}

// Kind implements Variant.
func (*Variable) Kind() Kind { return KindVariable }

func (x *Variable) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Path)
	b = appendOptString(b, 2, x.Content)
	b = appendOptString(b, 3, x.FormatUuid)
	b = appendOptEnum(b, 4, x.SpecialType)
	return appendOptString(b, 5, x.Uuid)
}

// Tag is the tag node variant.
type Tag struct {
	Name     string
	Uuid     *string
	Params   []string
	NameCode *string
	CodeMode *bool
}

// Kind implements Variant.
func (*Tag) Kind() Kind { return KindTag }

func (x *Tag) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.Name)
	b = appendOptString(b, 2, x.Uuid)
	for _, p := range x.Params {
		b = appendString(b, 3, p)
	}
	b = appendOptString(b, 4, x.NameCode)
	return appendOptBool(b, 5, x.CodeMode)
}

// Formatted is the formatted node variant.
type Formatted struct {
	DoctypeContent *string
	HtmlContent    *string
}

// Kind implements Variant.
func (*Formatted) Kind() Kind { return KindFormatted }

func (x *Formatted) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.DoctypeContent)
	return appendOptString(b, 2, x.HtmlContent)
}

// Rule is the rule node variant.
type Rule struct {
	XOffset    *Measure
	YOffset    *Measure
	Width      *Measure
	Thickness  *Measure
	Rotation   *float64
	Color      *Color
	Style      *RuleStyle
	Mode       *RuleMode
	Boundaries *RuleBoundaries
}

// Kind implements Variant.
func (*Rule) Kind() Kind { return KindRule }

func (x *Rule) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.XOffset)
	b = appendOpt(b, 2, x.YOffset)
	b = appendOpt(b, 3, x.Width)
	b = appendOpt(b, 4, x.Thickness)
	b = appendOptDouble(b, 5, x.Rotation)
	b = appendOpt(b, 6, x.Color)
	b = appendOptEnum(b, 7, x.Style)
	b = appendOptEnum(b, 8, x.Mode)
	return appendOpt(b, 9, x.Boundaries)
}

// Indentation is the indentation node variant.
type Indentation struct {
	Left  *Boxed[*Measure]
	Right *Boxed[*Measure]
	Uuid  *string
}

// Kind implements Variant.
func (*Indentation) Kind() Kind { return KindIndentation }

func (x *Indentation) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.Left)
	b = appendOpt(b, 2, x.Right)
	return appendOptString(b, 3, x.Uuid)
}

// Link is the link node variant.
type Link struct {
	Url *string
}

// Kind implements Variant.
func (*Link) Kind() Kind { return KindLink }

func (x *Link) appendFields(b []byte) []byte {
	return appendOptString(b, 1, x.Url)
}

// Loop is the loop node variant.
type Loop struct {
	Path *string
	Uuid *string
}

// Kind implements Variant.
func (*Loop) Kind() Kind { return KindLoop }

func (x *Loop) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Path)
	return appendOptString(b, 2, x.Uuid)
}

// LoopEntry is one iteration of a Loop.
type LoopEntry struct {
	Path  *string
	Index *int32
	Uuid  *string
}

// Kind implements Variant.
func (*LoopEntry) Kind() Kind { return KindLoopEntry }

func (x *LoopEntry) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Path)
	b = appendOptInt32(b, 2, x.Index)
	return appendOptString(b, 3, x.Uuid)
}

// Section is the section node variant.
type Section struct {
	Uuid     *string
	CDefUuid *string
}

// Kind implements Variant.
func (*Section) Kind() Kind { return KindSection }

func (x *Section) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Uuid)
	return appendOptString(b, 2, x.CDefUuid)
}

// Condition is the condition node variant.
type Condition struct {
	Uuid       *string
	Code       *string
	Result     *bool
	Regenerate *bool
}

// Kind implements Variant.
func (*Condition) Kind() Kind { return KindCondition }

func (x *Condition) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Uuid)
	b = appendOptString(b, 2, x.Code)
	b = appendOptBool(b, 3, x.Result)
	return appendOptBool(b, 4, x.Regenerate)
}

// PageCondition is the pageCondition node variant.
type PageCondition struct {
	Uuid *string
	Code *string
}

// Kind implements Variant.
func (*PageCondition) Kind() Kind { return KindPageCondition }

func (x *PageCondition) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Uuid)
	return appendOptString(b, 2, x.Code)
}

// Selection is the selection node variant.
type Selection struct {
	Uuid         *string
	InternalName *string
	Name         *string
	Multi        *bool
	Min          *int32
	Max          *int32
}

// Kind implements Variant.
func (*Selection) Kind() Kind { return KindSelection }

func (x *Selection) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Uuid)
	b = appendOptString(b, 2, x.InternalName)
	b = appendOptString(b, 3, x.Name)
	b = appendOptBool(b, 4, x.Multi)
	b = appendOptInt32(b, 5, x.Min)
	return appendOptInt32(b, 6, x.Max)
}

// SelectionEntry is one option of a Selection.
type SelectionEntry struct {
	Uuid         *string
	InternalName *string
	Name         *string
	Selected     *bool
}

// Kind implements Variant.
func (*SelectionEntry) Kind() Kind { return KindSelectionEntry }

func (x *SelectionEntry) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Uuid)
	b = appendOptString(b, 2, x.InternalName)
	b = appendOptString(b, 3, x.Name)
	return appendOptBool(b, 4, x.Selected)
}

// Directory is the directory node variant.
type Directory struct {
	Name         *string
	Editable     *bool
	SemanticType *SemanticType
}

// Kind implements Variant.
func (*Directory) Kind() Kind { return KindDirectory }

func (x *Directory) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Name)
	b = appendOptBool(b, 2, x.Editable)
	return appendOptEnum(b, 3, x.SemanticType)
}

// WsArea is the wsArea node variant.
type WsArea struct{}

// Kind implements Variant.
func (*WsArea) Kind() Kind                   { return KindWsArea }
func (*WsArea) appendFields(b []byte) []byte { return b }

// CarryOver is the carryOver node variant.
type CarryOver struct{}

// Kind implements Variant.
func (*CarryOver) Kind() Kind                   { return KindCarryOver }
func (*CarryOver) appendFields(b []byte) []byte { return b }

// AdvancedIllustrationArea is the advancedIllustrationArea node variant.
type AdvancedIllustrationArea struct {
	Uuid     *string
	Absolute *bool
	Width    *Measure
	Height   *Measure
	X        *Measure
	Y        *Measure
	TextFlow *TextFlowType
	Rotation *float64
}

// Kind implements Variant.
func (*AdvancedIllustrationArea) Kind() Kind { return KindAdvancedIllustrationArea }

func (x *AdvancedIllustrationArea) appendFields(b []byte) []byte {
	b = appendOptString(b, 1, x.Uuid)
	b = appendOptBool(b, 2, x.Absolute)
	b = appendOpt(b, 3, x.Width)
	b = appendOpt(b, 4, x.Height)
	b = appendOpt(b, 5, x.X)
	b = appendOpt(b, 6, x.Y)
	b = appendOptEnum(b, 7, x.TextFlow)
	return appendOptDouble(b, 8, x.Rotation)
}

// AdjustHorizontally is the adjustHorizontally node variant.
type AdjustHorizontally struct {
	MinFontSize *Measure
	MaxFontSize *Measure
}

// Kind implements Variant.
func (*AdjustHorizontally) Kind() Kind { return KindAdjustHorizontally }

func (x *AdjustHorizontally) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.MinFontSize)
	return appendOpt(b, 2, x.MaxFontSize)
}

// SubTotal is the subTotal node variant.
type SubTotal struct {
	ApplyImmediate *bool
	Position       *SubTotalPosition
	Height         *Measure
}

// Kind implements Variant.
func (*SubTotal) Kind() Kind { return KindSubTotal }

func (x *SubTotal) appendFields(b []byte) []byte {
	b = appendOptBool(b, 1, x.ApplyImmediate)
	b = appendOptEnum(b, 2, x.Position)
	return appendOpt(b, 3, x.Height)
}

// Header is the header node variant.
type Header struct {
	Mode *HeaderMode
}

// Kind implements Variant.
func (*Header) Kind() Kind { return KindHeader }

func (x *Header) appendFields(b []byte) []byte {
	return appendOptEnum(b, 1, x.Mode)
}

// Footer is the footer node variant.
type Footer struct {
	Mode *FooterMode
}

// Kind implements Variant.
func (*Footer) Kind() Kind { return KindFooter }

func (x *Footer) appendFields(b []byte) []byte {
	return appendOptEnum(b, 1, x.Mode)
}

// SpaceVertically is the spaceVertically node variant.
type SpaceVertically struct {
	Space *Measure
}

// Kind implements Variant.
func (*SpaceVertically) Kind() Kind { return KindSpaceVertically }

func (x *SpaceVertically) appendFields(b []byte) []byte {
	return appendOpt(b, 1, x.Space)
}

// PDef declares a page size. A null dimension leaves that axis unconstrained.
type PDef struct {
	PageDepth *Boxed[*Measure]
	PageWidth *Boxed[*Measure]
	Uuid      string
}

// Kind implements Variant.
func (*PDef) Kind() Kind { return KindPDef }

func (x *PDef) appendFields(b []byte) []byte {
	b = appendOpt(b, 1, x.PageDepth)
	b = appendOpt(b, 2, x.PageWidth)
	return appendString(b, 3, x.Uuid)
}

// ApplyPDef is the applyPDef node variant.
type ApplyPDef struct {
	PDefUuid string
}

// Kind implements Variant.
func (*ApplyPDef) Kind() Kind { return KindApplyPDef }

func (x *ApplyPDef) appendFields(b []byte) []byte {
	return appendString(b, 1, x.PDefUuid)
}

// CDef is the cDef node variant.
type CDef struct {
	Uuid           string
	ColumnSettings *ColumnSettings
}

// Kind implements Variant.
func (*CDef) Kind() Kind { return KindCDef }

func (x *CDef) appendFields(b []byte) []byte {
	b = appendString(b, 1, x.Uuid)
	return appendOpt(b, 2, x.ColumnSettings)
}

// ApplyCDef is the applyCDef node variant.
type ApplyCDef struct {
	CDefUuid string
}

// Kind implements Variant.
func (*ApplyCDef) Kind() Kind { return KindApplyCDef }

func (x *ApplyCDef) appendFields(b []byte) []byte {
	return appendString(b, 1, x.CDefUuid)
}
