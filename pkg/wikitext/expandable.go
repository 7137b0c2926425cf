package wikitext

import (
	"regexp"
	"strings"
)

var (
	openArgRefRe     = regexp.MustCompile(`^\{\{\{`)
	closeArgRefRe    = regexp.MustCompile(`^\}\}\}`)
	openTemplateRe   = regexp.MustCompile(`^\{\{`)
	closeTemplateRe  = regexp.MustCompile(`^\}\}`)
	equalsRe         = regexp.MustCompile(`^=`)
	openCommentRe    = regexp.MustCompile(`^<!--`)
	openAngleRe      = regexp.MustCompile(`^<`)
	closeAngleRe     = regexp.MustCompile(`^>`)
	selfCloseAngleRe = regexp.MustCompile(`^/>`)
	tagNameRe        = regexp.MustCompile(`^[A-Za-z][-A-Za-z0-9]*`)
	attrWhitespaceRe = regexp.MustCompile(`^[\t\n\f\r\v\x85\p{Z}]+`)
	quoteRe          = regexp.MustCompile(`^["']`)
	unquotedValueRe  = regexp.MustCompile(`^[^\s>]+`)
)

// parseExpandable tries an argument reference, then a template, then a
// comment; it is legal inside a Run regardless of mode.
func (p *Parser) parseExpandable() (InlineNode, bool) {
	if ar, ok := p.parseArgumentReference(); ok {
		return ar, true
	}
	if t, ok := p.parseTemplate(); ok {
		return t, true
	}
	if c, ok := p.parseComment(); ok {
		return c, true
	}
	return nil, false
}

// parseArgumentReference parses `{{{name}}}` or `{{{name|default}}}`.
// Name and DefaultValue are nested Wikitext documents, parsed by
// recursing into parseWikitext under a frame terminated by the
// relevant closing delimiter; ParseBraces tries this production before
// parseTemplate precisely because `{{{` is a strict prefix of `{{`.
func (p *Parser) parseArgumentReference() (*ArgumentReference, bool) {
	p.parseStart("", true)
	if _, ok := p.consumeToken(openArgRefRe); !ok {
		p.fallback()
		return nil, false
	}

	p.parseStart(`\||\}\}\}`, true)
	name := p.parseWikitext()
	p.accept()

	ref := &ArgumentReference{Name: *name}

	if _, ok := p.consumeToken(pipeRe); ok {
		p.parseStart(`\}\}\}`, true)
		def := p.parseWikitext()
		p.accept()
		ref.DefaultValue = def
	}

	if _, ok := p.consumeToken(closeArgRefRe); !ok {
		p.fallback()
		return nil, false
	}
	p.accept()
	return ref, true
}

// parseTemplate parses `{{name|arg|name=value|...}}`. The name is a
// Run (not a Wikitext: it cannot span lines); each argument is parsed
// by parseTemplateArgument.
func (p *Parser) parseTemplate() (*Template, bool) {
	p.parseStart("", true)
	if _, ok := p.consumeToken(openTemplateRe); !ok {
		p.fallback()
		return nil, false
	}

	p.parseStart(`\||\}\}`, true)
	name, _ := p.parseRun(modeRun)
	p.accept()

	tpl := &Template{Name: name}
	for {
		if _, ok := p.consumeToken(pipeRe); !ok {
			break
		}
		tpl.Arguments = append(tpl.Arguments, p.parseTemplateArgument())
	}

	if _, ok := p.consumeToken(closeTemplateRe); !ok {
		p.fallback()
		return nil, false
	}
	p.accept()
	return tpl, true
}

// parseTemplateArgument parses one `|`-delimited segment of a template
// invocation. It first parses a Wikitext bounded by `=`, `|`, or `}}`;
// if the cursor then sits on a bare `=` (rather than having been
// stopped by `|` or `}}`), that content was the argument's name, and a
// second bounded Wikitext (this time without `=` as a candidate
// boundary) supplies the value. Otherwise the first parse already is
// the anonymous argument's value. Scoping the `=` search to this
// argument's own frame, rather than scanning raw text for the first
// `=`, is what keeps a nested template's own `key=value` pairs from
// being mistaken for this argument's name separator.
func (p *Parser) parseTemplateArgument() TemplateArgument {
	p.parseStart(`=|\||\}\}`, true)
	first := p.parseWikitext()
	p.accept()

	if _, ok := p.consumeToken(equalsRe); ok {
		p.parseStart(`\||\}\}`, true)
		value := p.parseWikitext()
		p.accept()
		return TemplateArgument{Name: first, Value: *value}
	}
	return TemplateArgument{Value: *first}
}

// parseComment parses an opaque `<!-- ... -->` comment. An unterminated
// comment is not a comment at all: the whole attempt rolls back and
// the leading `<!--` falls through to plain text one piece at a time,
// same as any other unbalanced construct.
func (p *Parser) parseComment() (*Comment, bool) {
	p.parseStart("", true)
	if _, ok := p.consumeToken(openCommentRe); !ok {
		p.fallback()
		return nil, false
	}
	idx := strings.Index(p.sc.rest(), "-->")
	if idx == -1 {
		p.fallback()
		return nil, false
	}
	content := p.sc.rest()[:idx]
	p.sc.moveTo(p.sc.pos + idx + len("-->"))
	p.accept()
	return &Comment{Content: content}, true
}

// closingTagPattern builds the (unanchored) pattern matching the
// closing tag for name: `</name>`, allowing whitespace before the `>`.
// It is reused three ways: as a forward search to delimit a parser
// tag's opaque body, as a frame terminator bounding an html tag's
// nested Wikitext body, and as the token consumed to close it off —
// the same matching rule every time keeps those three uses from
// disagreeing about where the body ends.
func closingTagPattern(name string) string {
	return `</` + regexp.QuoteMeta(name) + `[\t\n\f\r\v\x85\p{Z}]*>`
}

func closingTagWhitespace(matched, name string) string {
	return matched[len("</")+len(name) : len(matched)-1]
}

// parseTag parses an opening tag, its attributes, and — unless self-
// closing — its body and matching closing tag. Tag names configured as
// parser tags (see Option.WithParserTagNames) get their body stored
// raw in a ParserTag; any other recognized tag becomes an HtmlTag with
// its body re-parsed as nested Wikitext. Neither branch tracks nesting
// depth for same-named tags: the first textual occurrence of the
// matching close tag ends the body, which is also MediaWiki's own
// behavior for the non-recursive tags this package targets.
func (p *Parser) parseTag() (InlineNode, bool) {
	p.parseStart("", true)
	if _, ok := p.consumeToken(openAngleRe); !ok {
		p.fallback()
		return nil, false
	}
	name, ok := p.consumeToken(tagNameRe)
	if !ok {
		p.fallback()
		return nil, false
	}

	var attrs []TagAttribute
	for {
		attr, ok := p.parseTagAttribute()
		if !ok {
			break
		}
		attrs = append(attrs, attr)
	}
	trailingWS, _ := p.consumeToken(attrWhitespaceRe)

	common := tagCommon{name: name, attributes: attrs, trailingWhitespace: trailingWS}

	if _, ok := p.consumeToken(selfCloseAngleRe); ok {
		common.isSelfClosing = true
		p.accept()
		if p.isParserTagName(name) {
			return &ParserTag{tagCommon: common}, true
		}
		return &HtmlTag{tagCommon: common}, true
	}
	if _, ok := p.consumeToken(closeAngleRe); !ok {
		p.fallback()
		return nil, false
	}

	closeRe := regexp.MustCompile(closingTagPattern(name))

	if p.isParserTagName(name) {
		loc := closeRe.FindStringIndex(p.sc.rest())
		if loc == nil {
			p.fallback()
			return nil, false
		}
		body := p.sc.rest()[:loc[0]]
		matched := p.sc.rest()[loc[0]:loc[1]]
		p.sc.moveTo(p.sc.pos + loc[1])
		common.closingTagTrailingWhitespace = closingTagWhitespace(matched, name)
		p.accept()
		return &ParserTag{tagCommon: common, Content: body}, true
	}

	p.parseStart(closeRe.String(), true)
	content := p.parseWikitext()
	p.accept()

	matched, ok := p.consumeToken(closeRe)
	if !ok {
		p.fallback()
		return nil, false
	}
	common.closingTagTrailingWhitespace = closingTagWhitespace(matched, name)
	p.accept()
	return &HtmlTag{tagCommon: common, Content: content}, true
}

// parseTagAttribute parses one `name` or `name=value` pair, including
// its leading whitespace. It fails (restoring the cursor) as soon as
// no more whitespace-then-name is available, which is what lets
// parseTag's attribute loop terminate.
func (p *Parser) parseTagAttribute() (TagAttribute, bool) {
	save := p.sc.snapshot()
	ws, ok := p.consumeToken(attrWhitespaceRe)
	if !ok {
		return TagAttribute{}, false
	}
	name, ok := p.consumeToken(tagNameRe)
	if !ok {
		p.sc.restore(save)
		return TagAttribute{}, false
	}

	attr := TagAttribute{LeadingWhitespace: ws, Name: Run{Inlines: []InlineNode{&PlainText{Content: name}}}}
	if _, ok := p.consumeToken(equalsRe); !ok {
		return attr, true
	}

	if q, ok := p.consumeToken(quoteRe); ok {
		quote := q[0]
		end := strings.IndexByte(p.sc.rest(), quote)
		if end == -1 {
			p.sc.restore(save)
			return TagAttribute{}, false
		}
		value := p.sc.rest()[:end]
		p.sc.moveTo(p.sc.pos + end + 1)
		attr.Quote = quote
		attr.Value = wrapAttributeValue(value)
		return attr, true
	}

	value, ok := p.consumeToken(unquotedValueRe)
	if !ok {
		p.sc.restore(save)
		return TagAttribute{}, false
	}
	attr.Value = wrapAttributeValue(value)
	return attr, true
}

// wrapAttributeValue wraps literal attribute-value text in a Wikitext
// of one closed paragraph. Attribute values are not re-parsed for
// expandable content (templates, links): MediaWiki treats them as
// plain strings, and so does this package.
func wrapAttributeValue(s string) *Wikitext {
	return &Wikitext{Lines: []LineNode{&Paragraph{Inlines: []InlineNode{&PlainText{Content: s}}}}}
}
