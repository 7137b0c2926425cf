package wikitext

import "strings"

// Node is the root of the wikitext AST taxonomy. Every node can render
// itself back to wikitext source and produce a detached deep copy of
// itself; clones never carry parent links, matching the single-owner
// tree semantics described for the AST as a whole.
type Node interface {
	String() string
	Clone() Node
}

// LineNode is a top-level line of a Wikitext document: a Paragraph, a
// Heading, or a ListItem.
type LineNode interface {
	Node
	lineNode()
}

// InlineNode is a constituent of a Run: plain text or a structural
// construct such as a link, template, or format toggle.
type InlineNode interface {
	Node
	inlineNode()
}

// Wikitext is an ordered sequence of lines. It is both the top-level
// parse result and the type used for content that may itself span
// several lines (tag bodies, argument reference values).
type Wikitext struct {
	Lines []LineNode
}

// String renders the document back to wikitext source. Because every
// LineNode carries its own trailing separator bytes, this is a plain
// concatenation with no additional bookkeeping.
func (w *Wikitext) String() string {
	var b strings.Builder
	for _, line := range w.Lines {
		b.WriteString(line.String())
	}
	return b.String()
}

// Clone returns a deep, detached copy of the document.
func (w *Wikitext) Clone() Node {
	if w == nil {
		return (*Wikitext)(nil)
	}
	cloned := make([]LineNode, len(w.Lines))
	for i, line := range w.Lines {
		cloned[i] = line.Clone().(LineNode)
	}
	return &Wikitext{Lines: cloned}
}

// Empty reports whether the document has no lines.
func (w *Wikitext) Empty() bool {
	return w == nil || len(w.Lines) == 0
}

// Run is an ordered sequence of inline nodes confined to a single
// logical line; it is a plain value type, not itself a member of the
// Node taxonomy, and is used wherever the grammar forbids newlines.
type Run struct {
	Inlines []InlineNode
}

// String renders the run's inline children in order.
func (r Run) String() string {
	var b strings.Builder
	for _, inline := range r.Inlines {
		b.WriteString(inline.String())
	}
	return b.String()
}

// Clone returns a deep copy of the run.
func (r Run) Clone() Run {
	cloned := make([]InlineNode, len(r.Inlines))
	for i, inline := range r.Inlines {
		cloned[i] = inline.Clone().(InlineNode)
	}
	return Run{Inlines: cloned}
}

// Empty reports whether the run has no inline children.
func (r Run) Empty() bool {
	return len(r.Inlines) == 0
}

// appendPlainText appends text to a Run, coalescing it into a trailing
// PlainText child when one is already present. Two adjacent PlainText
// children never survive in a Run.
func (r *Run) appendPlainText(s string) {
	if s == "" {
		return
	}
	if n := len(r.Inlines); n > 0 {
		if pt, ok := r.Inlines[n-1].(*PlainText); ok {
			pt.Content += s
			return
		}
	}
	r.Inlines = append(r.Inlines, &PlainText{Content: s})
}

// append adds an inline child, coalescing adjacent plain text.
func (r *Run) append(n InlineNode) {
	if pt, ok := n.(*PlainText); ok {
		r.appendPlainText(pt.Content)
		return
	}
	r.Inlines = append(r.Inlines, n)
}

// lineSeparator holds the raw bytes (a leading newline plus any
// non-newline whitespace run) that ParseLineEnd consumed after a line's
// own content but chose not to model as part of that content. Every
// concrete LineNode embeds it so that Wikitext.String is a bare
// concatenation of self-contained line renderings; see ParseLineEnd for
// the rules that populate it.
type lineSeparator struct {
	trailing string
}

// Trailing returns the raw separator bytes recorded after this line.
func (s lineSeparator) Trailing() string { return s.trailing }

func (s *lineSeparator) setTrailing(tr string) { s.trailing = tr }
func (s *lineSeparator) addTrailing(tr string) { s.trailing += tr }

// trailingSetter is implemented by every concrete LineNode via the
// embedded lineSeparator; parseLineEnd uses it to attach separator
// bytes without knowing which concrete line type it was given.
type trailingSetter interface {
	setTrailing(string)
	addTrailing(string)
}

// Paragraph is a run of inline content. While Compact is true the
// paragraph is still open for appending by subsequent input lines;
// ParseLineEnd is the only operation that transitions it to closed.
type Paragraph struct {
	Inlines []InlineNode
	Compact bool
	lineSeparator
}

func (*Paragraph) lineNode() {}

func (p *Paragraph) String() string {
	return Run{Inlines: p.Inlines}.String() + p.trailing
}

func (p *Paragraph) Clone() Node {
	cloned := Run{Inlines: p.Inlines}.Clone()
	return &Paragraph{Inlines: cloned.Inlines, Compact: p.Compact, lineSeparator: p.lineSeparator}
}

// appendPlainText appends raw text to the paragraph's inline content,
// coalescing with a trailing PlainText child.
func (p *Paragraph) appendPlainText(s string) {
	run := Run{Inlines: p.Inlines}
	run.appendPlainText(s)
	p.Inlines = run.Inlines
}

// Heading is a `== Title ==`-style line. Level is the number of `=`
// delimiters actually consumed on each side, in 1..6.
type Heading struct {
	Inlines []InlineNode
	Level   int
	lineSeparator
}

func (*Heading) lineNode() {}

func (h *Heading) String() string {
	delims := strings.Repeat("=", h.Level)
	return delims + Run{Inlines: h.Inlines}.String() + delims + h.trailing
}

func (h *Heading) Clone() Node {
	cloned := Run{Inlines: h.Inlines}.Clone()
	return &Heading{Inlines: cloned.Inlines, Level: h.Level, lineSeparator: h.lineSeparator}
}

// ListItem is a single line prefixed by `[*#:;]+`, a run of four or
// more hyphens, or a single leading space.
type ListItem struct {
	Inlines []InlineNode
	Prefix  string
	lineSeparator
}

func (*ListItem) lineNode() {}

func (li *ListItem) String() string {
	return li.Prefix + Run{Inlines: li.Inlines}.String() + li.trailing
}

func (li *ListItem) Clone() Node {
	cloned := Run{Inlines: li.Inlines}.Clone()
	return &ListItem{Inlines: cloned.Inlines, Prefix: li.Prefix, lineSeparator: li.lineSeparator}
}

// PlainText is unstructured text content.
type PlainText struct {
	Content string
}

func (*PlainText) inlineNode() {}

func (t *PlainText) String() string { return t.Content }

func (t *PlainText) Clone() Node { return &PlainText{Content: t.Content} }

// FormatSwitch toggles bold and/or italics from the point it appears.
// It carries no notion of "on" or "off": rendering it back to source
// only requires knowing how many apostrophes produced it.
type FormatSwitch struct {
	Bold    bool
	Italics bool
}

func (*FormatSwitch) inlineNode() {}

func (f *FormatSwitch) String() string {
	switch {
	case f.Bold && f.Italics:
		return "'''''"
	case f.Bold:
		return "'''"
	case f.Italics:
		return "''"
	default:
		return ""
	}
}

func (f *FormatSwitch) Clone() Node {
	return &FormatSwitch{Bold: f.Bold, Italics: f.Italics}
}

// WikiLink is a `[[target|text]]` construct. Text is nil when no pipe
// was present; a non-nil, empty Text distinguishes `[[a|]]` from `[[a]]`.
type WikiLink struct {
	Target Run
	Text   *Run
}

func (*WikiLink) inlineNode() {}

func (w *WikiLink) String() string {
	var b strings.Builder
	b.WriteString("[[")
	b.WriteString(w.Target.String())
	if w.Text != nil {
		b.WriteByte('|')
		b.WriteString(w.Text.String())
	}
	b.WriteString("]]")
	return b.String()
}

func (w *WikiLink) Clone() Node {
	c := &WikiLink{Target: w.Target.Clone()}
	if w.Text != nil {
		t := w.Text.Clone()
		c.Text = &t
	}
	return c
}

// ExternalLink is either a bracketed `[url text]` link or a bare URL.
// Sep is the single space or tab consumed between target and text when
// Text is non-nil; it is meaningless (and empty) otherwise.
type ExternalLink struct {
	Target   Run
	Text     *Run
	Brackets bool
	Sep      string
}

func (*ExternalLink) inlineNode() {}

func (e *ExternalLink) String() string {
	if !e.Brackets {
		return e.Target.String()
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(e.Target.String())
	if e.Text != nil {
		b.WriteString(e.Sep)
		b.WriteString(e.Text.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (e *ExternalLink) Clone() Node {
	c := &ExternalLink{Target: e.Target.Clone(), Brackets: e.Brackets, Sep: e.Sep}
	if e.Text != nil {
		t := e.Text.Clone()
		c.Text = &t
	}
	return c
}

// TemplateArgument is one `|value` or `|name=value` segment of a
// template invocation. Name is nil for anonymous arguments.
type TemplateArgument struct {
	Name  *Wikitext
	Value Wikitext
}

func (a TemplateArgument) String() string {
	var b strings.Builder
	if a.Name != nil {
		b.WriteString(a.Name.String())
		b.WriteByte('=')
	}
	b.WriteString(a.Value.String())
	return b.String()
}

func (a TemplateArgument) Clone() TemplateArgument {
	c := TemplateArgument{Value: *a.Value.Clone().(*Wikitext)}
	if a.Name != nil {
		c.Name = a.Name.Clone().(*Wikitext)
	}
	return c
}

// Template is a `{{name|arg|...}}` transclusion. Expansion is not part
// of this package: it produces the AST shape only.
type Template struct {
	Name      Run
	Arguments []TemplateArgument
}

func (*Template) inlineNode() {}

func (t *Template) String() string {
	var b strings.Builder
	b.WriteString("{{")
	b.WriteString(t.Name.String())
	for _, arg := range t.Arguments {
		b.WriteByte('|')
		b.WriteString(arg.String())
	}
	b.WriteString("}}")
	return b.String()
}

func (t *Template) Clone() Node {
	args := make([]TemplateArgument, len(t.Arguments))
	for i, a := range t.Arguments {
		args[i] = a.Clone()
	}
	return &Template{Name: t.Name.Clone(), Arguments: args}
}

// ArgumentReference is a `{{{name|default}}}` transclusion parameter.
type ArgumentReference struct {
	Name         Wikitext
	DefaultValue *Wikitext
}

func (*ArgumentReference) inlineNode() {}

func (a *ArgumentReference) String() string {
	var b strings.Builder
	b.WriteString("{{{")
	b.WriteString(a.Name.String())
	if a.DefaultValue != nil {
		b.WriteByte('|')
		b.WriteString(a.DefaultValue.String())
	}
	b.WriteString("}}}")
	return b.String()
}

func (a *ArgumentReference) Clone() Node {
	c := &ArgumentReference{Name: *a.Name.Clone().(*Wikitext)}
	if a.DefaultValue != nil {
		c.DefaultValue = a.DefaultValue.Clone().(*Wikitext)
	}
	return c
}

// Comment is an opaque `<!-- ... -->` comment.
type Comment struct {
	Content string
}

func (*Comment) inlineNode() {}

func (c *Comment) String() string { return "<!--" + c.Content + "-->" }

func (c *Comment) Clone() Node { return &Comment{Content: c.Content} }
