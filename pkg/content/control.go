package content

import "github.com/aretw0/docframe/pkg/wire"

// LoopProperties are the optional settings of a loop.
type LoopProperties struct {
	// Path is the data path iterated over.
	Path string
	Uuid string
}

// Loop repeats its content for each entry at a data path.
type Loop struct {
	Branch
	props LoopProperties
}

// NewLoop creates a loop.
func NewLoop(c Content, props *LoopProperties) *Loop {
	l := &Loop{Branch: newBranch(c)}
	if props != nil {
		l.props = *props
	}
	return l
}

// ToWire implements Element.
func (l *Loop) ToWire() (*wire.Node, error) {
	return l.node(&wire.Loop{Path: optString(l.props.Path), Uuid: optString(l.props.Uuid)})
}

// LoopEntryProperties are the optional settings of a loop entry.
type LoopEntryProperties struct {
	Path  string
	Index *int
	Uuid  string
}

// LoopEntry is one iteration of a Loop.
type LoopEntry struct {
	Branch
	props LoopEntryProperties
}

// NewLoopEntry creates a loop entry.
func NewLoopEntry(c Content, props *LoopEntryProperties) *LoopEntry {
	e := &LoopEntry{Branch: newBranch(c)}
	if props != nil {
		e.props = *props
	}
	return e
}

// ToWire implements Element.
func (e *LoopEntry) ToWire() (*wire.Node, error) {
	return e.node(&wire.LoopEntry{
		Path:  optString(e.props.Path),
		Index: optInt32(e.props.Index),
		Uuid:  optString(e.props.Uuid),
	})
}

// ConditionProperties are the optional settings of a condition.
type ConditionProperties struct {
	Uuid string
	// Code is the expression the engine evaluates.
	Code string
	// Result is a pre-evaluated outcome.
	Result     *bool
	Regenerate *bool
}

// Condition shows its content only when Code holds.
type Condition struct {
	Branch
	props ConditionProperties
}

// NewCondition creates a condition.
func NewCondition(c Content, props *ConditionProperties) *Condition {
	cond := &Condition{Branch: newBranch(c)}
	if props != nil {
		cond.props = *props
	}
	return cond
}

// ToWire implements Element.
func (c *Condition) ToWire() (*wire.Node, error) {
	return c.node(&wire.Condition{
		Uuid:       optString(c.props.Uuid),
		Code:       optString(c.props.Code),
		Result:     c.props.Result,
		Regenerate: c.props.Regenerate,
	})
}

// PageConditionProperties are the optional settings of a page condition.
type PageConditionProperties struct {
	Uuid string
	Code string
}

// PageCondition is evaluated once per page.
type PageCondition struct {
	Branch
	props PageConditionProperties
}

// NewPageCondition creates a page condition.
func NewPageCondition(c Content, props *PageConditionProperties) *PageCondition {
	pc := &PageCondition{Branch: newBranch(c)}
	if props != nil {
		pc.props = *props
	}
	return pc
}

// ToWire implements Element.
func (pc *PageCondition) ToWire() (*wire.Node, error) {
	return pc.node(&wire.PageCondition{Uuid: optString(pc.props.Uuid), Code: optString(pc.props.Code)})
}

// SelectionProperties are the optional settings of a selection.
type SelectionProperties struct {
	Uuid         string
	InternalName string
	Name         string
	Multi        *bool
	Min, Max     *int
}

// Selection offers a choice between SelectionEntry children.
type Selection struct {
	Branch
	props SelectionProperties
}

// NewSelection creates a selection.
func NewSelection(c Content, props *SelectionProperties) *Selection {
	s := &Selection{Branch: newBranch(c)}
	if props != nil {
		s.props = *props
	}
	return s
}

// ToWire implements Element.
func (s *Selection) ToWire() (*wire.Node, error) {
	p := s.props
	return s.node(&wire.Selection{
		Uuid:         optString(p.Uuid),
		InternalName: optString(p.InternalName),
		Name:         optString(p.Name),
		Multi:        p.Multi,
		Min:          optInt32(p.Min),
		Max:          optInt32(p.Max),
	})
}

// SelectionEntryProperties are the optional settings of a selection entry.
type SelectionEntryProperties struct {
	Uuid         string
	InternalName string
	Name         string
	Selected     *bool
}

// SelectionEntry is one option of a Selection.
type SelectionEntry struct {
	Branch
	props SelectionEntryProperties
}

// NewSelectionEntry creates a selection entry.
func NewSelectionEntry(c Content, props *SelectionEntryProperties) *SelectionEntry {
	e := &SelectionEntry{Branch: newBranch(c)}
	if props != nil {
		e.props = *props
	}
	return e
}

// ToWire implements Element.
func (e *SelectionEntry) ToWire() (*wire.Node, error) {
	p := e.props
	return e.node(&wire.SelectionEntry{
		Uuid:         optString(p.Uuid),
		InternalName: optString(p.InternalName),
		Name:         optString(p.Name),
		Selected:     p.Selected,
	})
}
