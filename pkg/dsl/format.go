package dsl

import (
	"github.com/aretw0/docframe/pkg/measure"
	"github.com/aretw0/docframe/pkg/schema"
	"github.com/aretw0/docframe/pkg/style"
)

// FormatBuilder provides a fluent API for configuring a paragraph format.
type FormatBuilder struct {
	props style.ParagraphFormatProperties
}

// Default marks the format as the engine's default.
func (f *FormatBuilder) Default() *FormatBuilder {
	f.props.Default = true
	return f
}

// Font sets the font family.
func (f *FormatBuilder) Font(name string) *FormatBuilder {
	f.props.Font = style.NewFont(name)
	return f
}

// Size sets the font size and, when lineFeed is non-nil, the line height.
func (f *FormatBuilder) Size(size, lineFeed *measure.Absolute) *FormatBuilder {
	f.props.FontSize = size
	if lineFeed != nil {
		f.props.LineFeed = lineFeed
	}
	return f
}

// Align sets the horizontal alignment.
func (f *FormatBuilder) Align(a style.HorizontalAlignment) *FormatBuilder {
	f.props.Alignment = a
	return f
}

// Bold makes the format bold.
func (f *FormatBuilder) Bold() *FormatBuilder {
	f.props.Bold = schema.Ptr(true)
	return f
}

// Italic makes the format italic.
func (f *FormatBuilder) Italic() *FormatBuilder {
	f.props.Italic = schema.Ptr(true)
	return f
}

// Indent sets the width of one indention level.
func (f *FormatBuilder) Indent(width *measure.Absolute) *FormatBuilder {
	f.props.IndentionWidth = width
	return f
}

// Spacing sets the space above and below the paragraph.
func (f *FormatBuilder) Spacing(above, below *measure.Absolute) *FormatBuilder {
	f.props.SpaceAbove = above
	f.props.SpaceBelow = below
	return f
}

// Build returns the underlying style.ParagraphFormat.
func (f *FormatBuilder) Build() *style.ParagraphFormat {
	return style.NewParagraphFormat(f.props)
}
