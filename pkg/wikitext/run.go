package wikitext

// runMode selects which inline producers ParseRun tries after
// ParseExpandable on each iteration.
type runMode int

const (
	// modeRun is the full inline set: used for ordinary paragraph,
	// heading, and list item content, and for link/tag text.
	modeRun runMode = iota
	// modeExpandableText restricts to partial plain text, used where
	// structural inlines are forbidden (link targets, attribute/
	// template-argument names).
	modeExpandableText
	// modeExpandableUrl restricts to URL text, used for bracketed
	// external-link targets.
	modeExpandableUrl
)

// parseRun repeatedly produces inline children under the current
// frame's terminator until it matches or no child can be produced.
// Every iteration first tries parseExpandable (templates, argument
// references, comments), which is legal in all three modes. It
// reports ok=false when zero children were added, mirroring the
// grammar's "the run produced nothing" fallback.
func (p *Parser) parseRun(mode runMode) (Run, bool) {
	var run Run
	for {
		if p.needsTerminate(nil) {
			break
		}
		if n, ok := p.parseExpandable(); ok {
			run.append(n)
			continue
		}
		var n InlineNode
		var ok bool
		switch mode {
		case modeExpandableText:
			if s, sok := p.parsePartialPlainText(); sok {
				n, ok = &PlainText{Content: s}, true
			}
		case modeExpandableUrl:
			if s, sok := p.parseUrlText(); sok {
				n, ok = &PlainText{Content: s}, true
			}
		default:
			n, ok = p.parseInline()
		}
		if !ok {
			break
		}
		run.append(n)
	}
	return run, len(run.Inlines) > 0
}
