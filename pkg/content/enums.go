package content

import (
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/wire"
)

// Symbolic property values. The empty value of each type means unset.

// HeaderFooterMode selects how a header or footer combines with the ones before it.
type HeaderFooterMode string

const (
	ModeAppendInitial HeaderFooterMode = "append-initial"
	ModeAppend        HeaderFooterMode = "append"
	ModeExtend        HeaderFooterMode = "extend"
	ModeReplace       HeaderFooterMode = "replace"
)

var headerModes = schema.NewEnum("mode", map[HeaderFooterMode]wire.HeaderMode{
	ModeAppendInitial: wire.HeaderAppendInitial,
	ModeAppend:        wire.HeaderAppend,
	ModeExtend:        wire.HeaderExtend,
	ModeReplace:       wire.HeaderReplace,
})

var footerModes = schema.NewEnum("mode", map[HeaderFooterMode]wire.FooterMode{
	ModeAppendInitial: wire.FooterAppendInitial,
	ModeAppend:        wire.FooterAppend,
	ModeExtend:        wire.FooterExtend,
	ModeReplace:       wire.FooterReplace,
})

// SemanticType tags a directory for tagged PDF output.
type SemanticType string

const (
	SemanticNone SemanticType = "none"
	SemanticPart SemanticType = "part"
	SemanticArt  SemanticType = "art"
	SemanticSect SemanticType = "sect"
	SemanticDiv  SemanticType = "div"
)

var semanticTypes = schema.NewEnum("semanticType", map[SemanticType]wire.SemanticType{
	SemanticNone: wire.SemanticNone,
	SemanticPart: wire.SemanticPart,
	SemanticArt:  wire.SemanticArt,
	SemanticSect: wire.SemanticSect,
	SemanticDiv:  wire.SemanticDiv,
})

// TextFlow controls how text flows around an illustration area.
type TextFlow string

const (
	TextFlowAround     TextFlow = "around"
	TextFlowNoFlow     TextFlow = "no-flow"
	TextFlowForeground TextFlow = "foreground"
	TextFlowBackground TextFlow = "background"
)

var textFlows = schema.NewEnum("textFlow", map[TextFlow]wire.TextFlowType{
	TextFlowAround:     wire.TextFlowAround,
	TextFlowNoFlow:     wire.TextFlowNoFlow,
	TextFlowForeground: wire.TextFlowForeground,
	TextFlowBackground: wire.TextFlowBackground,
})

// SubTotalPosition places a subtotal block on the page.
type SubTotalPosition string

const (
	SubTotalAboveFooter  SubTotalPosition = "above-footer"
	SubTotalBelowContent SubTotalPosition = "below-content"
)

var subTotalPositions = schema.NewEnum("position", map[SubTotalPosition]wire.SubTotalPosition{
	SubTotalAboveFooter:  wire.SubTotalAboveFooter,
	SubTotalBelowContent: wire.SubTotalBelowContent,
})

// ImageScaleType selects what an image scale is relative to.
type ImageScaleType string

const (
	ScaleRelative         ImageScaleType = "relative"
	ScaleAbsolute         ImageScaleType = "absolute"
	ScaleRelativeToColumn ImageScaleType = "relative-to-column"
)

var imageScaleTypes = schema.NewEnum("scaleType", map[ImageScaleType]wire.ImageScaleType{
	ScaleRelative:         wire.ImageScaleRelative,
	ScaleAbsolute:         wire.ImageScaleAbsolute,
	ScaleRelativeToColumn: wire.ImageScaleRelativeToColumn,
})

// BarcodeType names a barcode symbology.
type BarcodeType string

const (
	BarcodeQR         BarcodeType = "qr"
	BarcodeCode128    BarcodeType = "code128"
	BarcodeCode39     BarcodeType = "code39"
	BarcodeEAN13      BarcodeType = "ean13"
	BarcodeEAN8       BarcodeType = "ean8"
	BarcodeUPCA       BarcodeType = "upca"
	BarcodeDataMatrix BarcodeType = "datamatrix"
	BarcodePDF417     BarcodeType = "pdf417"
)

var barcodeTypes = schema.NewEnum("type", map[BarcodeType]wire.BarcodeType{
	BarcodeQR:         wire.BarcodeQR,
	BarcodeCode128:    wire.BarcodeCode128,
	BarcodeCode39:     wire.BarcodeCode39,
	BarcodeEAN13:      wire.BarcodeEAN13,
	BarcodeEAN8:       wire.BarcodeEAN8,
	BarcodeUPCA:       wire.BarcodeUPCA,
	BarcodeDataMatrix: wire.BarcodeDataMatrix,
	BarcodePDF417:     wire.BarcodePDF417,
})

// VariableSpecialType selects a value computed by the engine, such as the page number.
type VariableSpecialType string

const (
	SpecialTableNumber  VariableSpecialType = "table-number"
	SpecialDocPageCount VariableSpecialType = "doc-page-count"
	SpecialDocCurPage   VariableSpecialType = "doc-cur-page"
	SpecialCurPage      VariableSpecialType = "cur-page"
	SpecialPageCount    VariableSpecialType = "page-count"
	SpecialPrevPage     VariableSpecialType = "prev-page"
	SpecialSectionPage  VariableSpecialType = "section-page"
	SpecialUpdatedAt    VariableSpecialType = "updated-at"
	SpecialGeneratedAt  VariableSpecialType = "generated-at"
)

var specialTypes = schema.NewEnum("specialType", map[VariableSpecialType]wire.VariableSpecialType{
	SpecialTableNumber:  wire.VariableTableNumber,
	SpecialDocPageCount: wire.VariableDocPageCount,
	SpecialDocCurPage:   wire.VariableDocCurPage,
	SpecialCurPage:      wire.VariableCurPage,
	SpecialPageCount:    wire.VariablePageCount,
	SpecialPrevPage:     wire.VariablePrevPage,
	SpecialSectionPage:  wire.VariableSectionPage,
	SpecialUpdatedAt:    wire.VariableUpdatedAt,
	SpecialGeneratedAt:  wire.VariableGeneratedAt,
})

// RuleStyle is the line pattern of a rule.
type RuleStyle string

const (
	RuleSolid         RuleStyle = "solid"
	RuleSparseShading RuleStyle = "sparse-shading"
	RuleMediumShading RuleStyle = "medium-shading"
	RuleDenseShading  RuleStyle = "dense-shading"
	RuleLightDotted   RuleStyle = "light-dotted"
	RuleMediumDotted  RuleStyle = "medium-dotted"
	RuleHeavyDotted   RuleStyle = "heavy-dotted"
	RuleLightDashed   RuleStyle = "light-dashed"
	RuleMediumDashed  RuleStyle = "medium-dashed"
	RuleHeavyDashed   RuleStyle = "heavy-dashed"
	RuleDashPattern   RuleStyle = "dash-pattern"
	RuleDouble        RuleStyle = "double"
)

var ruleStyles = schema.NewEnum("style", map[RuleStyle]wire.RuleStyle{
	RuleSolid:         wire.RuleSolid,
	RuleSparseShading: wire.RuleSparseShading,
	RuleMediumShading: wire.RuleMediumShading,
	RuleDenseShading:  wire.RuleDenseShading,
	RuleLightDotted:   wire.RuleLightDotted,
	RuleMediumDotted:  wire.RuleMediumDotted,
	RuleHeavyDotted:   wire.RuleHeavyDotted,
	RuleLightDashed:   wire.RuleLightDashed,
	RuleMediumDashed:  wire.RuleMediumDashed,
	RuleHeavyDashed:   wire.RuleHeavyDashed,
	RuleDashPattern:   wire.RuleDashPattern,
	RuleDouble:        wire.RuleDouble,
})

// RuleMode selects whether a rule spans the column or explicit boundaries.
type RuleMode string

const (
	RuleModeNormal   RuleMode = "normal"
	RuleModeBoundary RuleMode = "boundary"
)

var ruleModes = schema.NewEnum("mode", map[RuleMode]wire.RuleMode{
	RuleModeNormal:   wire.RuleModeNormal,
	RuleModeBoundary: wire.RuleModeBoundary,
})

// ColumnPosition places the column block on the page.
type ColumnPosition string

const (
	PositionCenter       ColumnPosition = "center"
	PositionLeft         ColumnPosition = "left"
	PositionFolio        ColumnPosition = "folio"
	PositionRight        ColumnPosition = "right"
	PositionReverseFolio ColumnPosition = "reverse-folio"
)

var columnPositions = schema.NewEnum("position", map[ColumnPosition]wire.PositionMode{
	PositionCenter:       wire.PositionCenter,
	PositionLeft:         wire.PositionLeft,
	PositionFolio:        wire.PositionFolio,
	PositionRight:        wire.PositionRight,
	PositionReverseFolio: wire.PositionReverseFolio,
})

// lookupOptional maps the empty symbol to nil and everything else through e.
func lookupOptional[S ~string, W any](e schema.Enum[S, W], sym S) (*W, error) {
	if sym == "" {
		return nil, nil
	}
	return e.LookupOptional(&sym)
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt32(p *int) *int32 {
	if p == nil {
		return nil
	}
	v := int32(*p)
	return &v
}
