package wikitext

import "strings"

// TagAttribute is a `name` or `name=value` pair inside an opening tag.
// LeadingWhitespace is the (non-empty, whitespace-only) run of bytes
// that separates it from whatever precedes it. Value is nil for a
// valueless attribute (`disabled`); Quote is 0 for an unquoted value
// and otherwise the quote byte used (`"` or `'`).
type TagAttribute struct {
	LeadingWhitespace string
	Name              Run
	Value             *Wikitext
	Quote             byte
}

func (a TagAttribute) String() string {
	var b strings.Builder
	b.WriteString(a.LeadingWhitespace)
	b.WriteString(a.Name.String())
	if a.Value != nil {
		b.WriteByte('=')
		if a.Quote != 0 {
			b.WriteByte(a.Quote)
		}
		b.WriteString(a.Value.String())
		if a.Quote != 0 {
			b.WriteByte(a.Quote)
		}
	}
	return b.String()
}

func (a TagAttribute) Clone() TagAttribute {
	c := TagAttribute{LeadingWhitespace: a.LeadingWhitespace, Name: a.Name.Clone(), Quote: a.Quote}
	if a.Value != nil {
		c.Value = a.Value.Clone().(*Wikitext)
	}
	return c
}

// SetLeadingWhitespace validates and sets LeadingWhitespace, guarding
// against the mutation of a TrailingWhitespace-class field to a
// non-whitespace string.
func (a *TagAttribute) SetLeadingWhitespace(s string) error {
	if !isWhitespaceOnly(s) {
		return ErrInvalidTrailingWhitespace
	}
	a.LeadingWhitespace = s
	return nil
}

func cloneAttributes(attrs []TagAttribute) []TagAttribute {
	cloned := make([]TagAttribute, len(attrs))
	for i, a := range attrs {
		cloned[i] = a.Clone()
	}
	return cloned
}

func renderAttributes(attrs []TagAttribute) string {
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(a.String())
	}
	return b.String()
}

// tagCommon is the data shared by ParserTag and HtmlTag: the abstract
// TagNode described by the grammar. It is embedded, not a standalone
// Node, since every concrete use of it is one of the two tag variants.
type tagCommon struct {
	name                         string
	closingTagName               string
	attributes                   []TagAttribute
	trailingWhitespace           string
	closingTagTrailingWhitespace string
	isSelfClosing                bool
}

// Name is the tag name as written in the opening tag, e.g. "nowiki".
func (t *tagCommon) Name() string { return t.name }

// ClosingTagName is the name as written in the closing tag. It returns
// Name when no closing tag was present (self-closing) or when the
// closing tag's name was not recorded as differing from the opening
// one.
func (t *tagCommon) ClosingTagName() string {
	if t.closingTagName == "" {
		return t.name
	}
	return t.closingTagName
}

// Attributes returns the tag's attributes in source order.
func (t *tagCommon) Attributes() []TagAttribute { return t.attributes }

// TrailingWhitespace is the whitespace preceding the closing `>` or
// `/>` of the opening tag.
func (t *tagCommon) TrailingWhitespace() string { return t.trailingWhitespace }

// ClosingTagTrailingWhitespace is the whitespace preceding the `>` of
// the closing tag (empty when self-closing). These two trailing-
// whitespace fields are deliberately independent: see DESIGN.md for why.
func (t *tagCommon) ClosingTagTrailingWhitespace() string { return t.closingTagTrailingWhitespace }

// IsSelfClosing reports whether the tag was written as `<name .../>`.
func (t *tagCommon) IsSelfClosing() bool { return t.isSelfClosing }

// SetTrailingWhitespace validates and sets the opening tag's trailing
// whitespace.
func (t *tagCommon) SetTrailingWhitespace(s string) error {
	if !isWhitespaceOnly(s) {
		return ErrInvalidTrailingWhitespace
	}
	t.trailingWhitespace = s
	return nil
}

// SetClosingTagTrailingWhitespace validates and sets the closing tag's
// trailing whitespace.
func (t *tagCommon) SetClosingTagTrailingWhitespace(s string) error {
	if !isWhitespaceOnly(s) {
		return ErrInvalidTrailingWhitespace
	}
	t.closingTagTrailingWhitespace = s
	return nil
}

func (t *tagCommon) openingTag() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.name)
	b.WriteString(renderAttributes(t.attributes))
	b.WriteString(t.trailingWhitespace)
	if t.isSelfClosing {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}

func (t *tagCommon) closingTag() string {
	if t.isSelfClosing {
		return ""
	}
	var b strings.Builder
	b.WriteString("</")
	b.WriteString(t.ClosingTagName())
	b.WriteString(t.closingTagTrailingWhitespace)
	b.WriteByte('>')
	return b.String()
}

// ParserTag is a tag whose body is treated as opaque text and never
// re-parsed, e.g. `<nowiki>`, `<pre>`, `<math>`. Which tag names are
// treated this way is a configuration knob (see Option.WithParserTagNames).
type ParserTag struct {
	tagCommon
	Content string
}

func (*ParserTag) inlineNode() {}

func (p *ParserTag) String() string {
	return p.openingTag() + p.Content + p.closingTag()
}

func (p *ParserTag) Clone() Node {
	c := &ParserTag{tagCommon: p.tagCommon, Content: p.Content}
	c.attributes = cloneAttributes(p.attributes)
	return c
}

// SetSelfClosing toggles IsSelfClosing, refusing to mark the tag
// self-closing while it still has content.
func (p *ParserTag) SetSelfClosing(v bool) error {
	if v && p.Content != "" {
		return ErrSelfClosingWithContent
	}
	p.isSelfClosing = v
	return nil
}

// HtmlTag is any other recognized tag; its body is re-parsed as
// wikitext. Content is nil exactly when the tag is self-closing.
type HtmlTag struct {
	tagCommon
	Content *Wikitext
}

func (*HtmlTag) inlineNode() {}

func (h *HtmlTag) String() string {
	body := ""
	if h.Content != nil {
		body = h.Content.String()
	}
	return h.openingTag() + body + h.closingTag()
}

func (h *HtmlTag) Clone() Node {
	c := &HtmlTag{tagCommon: h.tagCommon}
	c.attributes = cloneAttributes(h.attributes)
	if h.Content != nil {
		c.Content = h.Content.Clone().(*Wikitext)
	}
	return c
}

// SetSelfClosing toggles IsSelfClosing, refusing to mark the tag
// self-closing while it still has non-empty content.
func (h *HtmlTag) SetSelfClosing(v bool) error {
	if v && h.Content != nil && !h.Content.Empty() {
		return ErrSelfClosingWithContent
	}
	h.isSelfClosing = v
	if v {
		h.Content = nil
	}
	return nil
}
