package wire

// MeasureType is the unit tag of a Measure.
type MeasureType int32

const (
	MeasurePT MeasureType = iota
	MeasureCM
	MeasureMM
	MeasureIN
	MeasurePX
	MeasurePercent
)

// ColorType selects which channels of a Color are meaningful.
type ColorType int32

const (
	ColorRGB ColorType = iota
	ColorCMYK
)

// HorizontalAlignment is the wire code of a horizontal alignment.
type HorizontalAlignment int32

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
	AlignFullJustify
)

// VerticalAlignment is the wire code of a vertical alignment.
type VerticalAlignment int32

const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)

// ReferencePoint is the anchor of a positioned image or barcode.
type ReferencePoint int32

const (
	RefPointTopLeft ReferencePoint = iota
	RefPointTopRight
	RefPointCenter
	RefPointBottomLeft
	RefPointBottomRight
)

// ImageScaleType is the wire code of an image scale type.
type ImageScaleType int32

const (
	ImageScaleRelative ImageScaleType = iota
	ImageScaleAbsolute
	ImageScaleRelativeToColumn
)

// BarcodeType is the wire code of a barcode symbology.
type BarcodeType int32

const (
	BarcodeQR BarcodeType = iota
	BarcodeCode128
	BarcodeCode39
	BarcodeEAN13
	BarcodeEAN8
	BarcodeUPCA
	BarcodeDataMatrix
	BarcodePDF417
)

// VariableSpecialType is the wire code of an engine-computed variable.
type VariableSpecialType int32

const (
	VariableTableNumber VariableSpecialType = iota
	VariableDocPageCount
	VariableDocCurPage
	VariableCurPage
	VariablePageCount
	VariablePrevPage
	VariableSectionPage
	VariableUpdatedAt
	VariableGeneratedAt
)

// RuleStyle is the wire code of a rule line pattern.
type RuleStyle int32

const (
	RuleSolid RuleStyle = iota
	RuleSparseShading
	RuleMediumShading
	RuleDenseShading
	RuleLightDotted
	RuleMediumDotted
	RuleHeavyDotted
	RuleLightDashed
	RuleMediumDashed
	RuleHeavyDashed
	RuleDashPattern
	RuleDouble
)

// RuleMode is the wire code of a rule mode.
type RuleMode int32

const (
	RuleModeNormal RuleMode = iota
	RuleModeBoundary
)

// PositionMode places a column layout on the page.
type PositionMode int32

const (
	PositionCenter PositionMode = iota
	PositionLeft
	PositionFolio
	PositionRight
	PositionReverseFolio
)

// HeaderMode is the wire code of a header mode.
type HeaderMode int32

const (
	HeaderAppendInitial HeaderMode = iota
	HeaderAppend
	HeaderExtend
	HeaderReplace
)

// FooterMode is the wire code of a footer mode.
type FooterMode int32

const (
	FooterAppendInitial FooterMode = iota
	FooterAppend
	FooterExtend
	FooterReplace
)

// SemanticType is the wire code of a directory semantic type.
type SemanticType int32

const (
	SemanticNone SemanticType = iota
	SemanticPart
	SemanticArt
	SemanticSect
	SemanticDiv
)

// TextFlowType is the wire code of a text flow.
type TextFlowType int32

const (
	TextFlowAround TextFlowType = iota
	TextFlowNoFlow
	TextFlowForeground
	TextFlowBackground
)

// SubTotalPosition is the wire code of a subtotal position.
type SubTotalPosition int32

const (
	SubTotalAboveFooter SubTotalPosition = iota
	SubTotalBelowContent
)
