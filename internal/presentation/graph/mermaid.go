package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/docframe/pkg/wire"
)

// Node ids are "n" plus the pre-order index, so they are unique per tree.

// GenerateMermaid produces a Mermaid flowchart of a decoded document tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Text: [/Parallelogram/] labelled with the text
// - Declarations (formats, page and column definitions): [[Subroutine]]
// - Default: [Rectangle]
func GenerateMermaid(root *wire.Outline) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	next := 0
	writeMermaid(&sb, root, &next)
	return sb.String()
}

func writeMermaid(sb *strings.Builder, o *wire.Outline, next *int) string {
	id := fmt.Sprintf("n%d", *next)
	*next++

	label := string(o.Kind)
	opener, closer := "[", "]"
	switch {
	case o.Kind == wire.KindNone:
		label = "document"
		opener, closer = "((", "))"
	case o.Kind == wire.KindText:
		label = sanitizeLabel(o.Text)
		opener, closer = "[/", "/]"
	case isDeclaration(o.Kind):
		opener, closer = "[[", "]]"
	}
	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

	for _, c := range o.Children {
		childID := writeMermaid(sb, c, next)
		fmt.Fprintf(sb, "    %s --> %s\n", id, childID)
	}
	return id
}

func isDeclaration(k wire.Kind) bool {
	switch k {
	case wire.KindParagraphFormat, wire.KindPDef, wire.KindApplyPDef, wire.KindCDef, wire.KindApplyCDef:
		return true
	}
	return false
}

func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	if r := []rune(s); len(r) > 40 {
		s = string(r[:37]) + "..."
	}
	return s
}

// GenerateMarkdown renders the tree as a nested Markdown list, one item per
// node, with text nodes quoted.
func GenerateMarkdown(root *wire.Outline) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Document outline\n\n%d nodes\n\n", root.Count())
	for _, c := range root.Children {
		writeMarkdown(&sb, c, 0)
	}
	return sb.String()
}

func writeMarkdown(sb *strings.Builder, o *wire.Outline, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if o.Kind == wire.KindText {
		fmt.Fprintf(sb, "- `text` %q\n", o.Text)
	} else {
		fmt.Fprintf(sb, "- `%s`\n", o.Kind)
	}
	for _, c := range o.Children {
		writeMarkdown(sb, c, depth+1)
	}
}
