package wikitext

import "testing"

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"plain paragraph", "hello world"},
		{"multi-line paragraph", "abc\ndef"},
		{"paragraph break", "abc\n\ndef"},
		{"paragraph break with spacing", "abc\n \ndef"},
		{"heading", "== Title ==\nhello"},
		{"heading with trailing newline", "== Title ==\n"},
		{"greedy heading", "======= H ======="},
		{"list items", "* item 1\n* item 2"},
		{"list item with trailing newline", "* a\n"},
		{"mixed list prefixes", ":;#* nested\n---- not a rule line"},
		{"bold", "'''bold'''"},
		{"italics", "''italics''"},
		{"bold italics", "'''''both'''''"},
		{"four apostrophes split a format switch", "''''bold''''"},
		{"wikilink bare", "[[Target]]"},
		{"wikilink with text", "[[A|B]]"},
		{"wikilink empty text", "[[A|]]"},
		{"bracketed external link", "[http://example.com/ok C]"},
		{"bare external link", "see http://example.com/x for more"},
		{"combined link example", "[[A|B]] and [http://example.com C]"},
		{"template simple", "{{t|a=1|2}}"},
		{"template nested", "{{outer|{{inner|a=b}}|c=d}}"},
		{"argument reference", "{{{name|default}}}"},
		{"argument reference no default", "{{{name}}}"},
		{"comment", "text <!-- a comment --> more text"},
		{"nowiki tag", "<nowiki>[[x]]</nowiki>"},
		{"html tag", "<span class=\"x\">hi ''there''</span>"},
		{"self closing tag", "<br/>"},
		{"unterminated comment falls through", "a <!-- oops"},
		{"unterminated tag falls through", "a <nowiki>oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := doc.String(); got != tt.input {
				t.Errorf("round-trip mismatch:\n got:  %q\n want: %q", got, tt.input)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	inputs := []string{
		"abc\ndef",
		"abc\n\ndef",
		"== Title ==\nhello",
		"[[A|B]] and [http://example.com C]",
		"* item 1\n* item 2",
		"{{t|a=1|2}}",
		"<nowiki>[[x]]</nowiki>",
		"'''''both'''''",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			first, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			rendered := first.String()
			second, err := Parse(rendered)
			if err != nil {
				t.Fatalf("Parse() on re-rendered output error = %v", err)
			}
			if second.String() != rendered {
				t.Errorf("not idempotent: first render %q, second render %q", rendered, second.String())
			}
		})
	}
}

func TestParse_HeadingGreediness(t *testing.T) {
	doc, err := Parse("======= H =======")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(doc.Lines))
	}
	h, ok := doc.Lines[0].(*Heading)
	if !ok {
		t.Fatalf("expected *Heading, got %T", doc.Lines[0])
	}
	if h.Level != 6 {
		t.Errorf("Level = %d, want 6", h.Level)
	}
	if got := (Run{Inlines: h.Inlines}).String(); got != "= H =" {
		t.Errorf("content = %q, want %q", got, "= H =")
	}
}

func TestParse_HeadingFollowedByParagraph(t *testing.T) {
	doc, err := Parse("== Title ==\nhello")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(doc.Lines))
	}
	if _, ok := doc.Lines[0].(*Heading); !ok {
		t.Fatalf("line 0: expected *Heading, got %T", doc.Lines[0])
	}
	p, ok := doc.Lines[1].(*Paragraph)
	if !ok {
		t.Fatalf("line 1: expected *Paragraph, got %T", doc.Lines[1])
	}
	if got := (Run{Inlines: p.Inlines}).String(); got != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
}

func TestParse_ParagraphBreakProducesTwoParagraphs(t *testing.T) {
	doc, err := Parse("abc\n\ndef")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(doc.Lines))
	}
	for i, want := range []string{"abc", "def"} {
		p, ok := doc.Lines[i].(*Paragraph)
		if !ok {
			t.Fatalf("line %d: expected *Paragraph, got %T", i, doc.Lines[i])
		}
		if got := (Run{Inlines: p.Inlines}).String(); got != want {
			t.Errorf("line %d content = %q, want %q", i, got, want)
		}
	}
}

func TestParse_MultiLineParagraphStaysOneLine(t *testing.T) {
	doc, err := Parse("abc\ndef")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(doc.Lines))
	}
	p, ok := doc.Lines[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected *Paragraph, got %T", doc.Lines[0])
	}
	if got := (Run{Inlines: p.Inlines}).String(); got != "abc\ndef" {
		t.Errorf("content = %q, want %q", got, "abc\ndef")
	}
}

// TestParse_FourApostrophesSplitsFormatSwitch verifies that a 4-apostrophe
// run is not swallowed whole as plain text: the grammar's
// ('{5}|'''|'')(?!') alternation matches 3 apostrophes at the run's
// second character, leaving one literal apostrophe at the front of the
// run (and, since the same rule applies to the closing run, folded into
// the plain text that precedes it).
func TestParse_FourApostrophesSplitsFormatSwitch(t *testing.T) {
	doc, err := Parse("''''bold''''")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p, ok := doc.Lines[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected *Paragraph, got %T", doc.Lines[0])
	}
	if len(p.Inlines) != 4 {
		t.Fatalf("expected 4 inlines, got %d: %#v", len(p.Inlines), p.Inlines)
	}

	pt, ok := p.Inlines[0].(*PlainText)
	if !ok || pt.Content != "'" {
		t.Fatalf("inline 0 = %#v, want PlainText(\"'\")", p.Inlines[0])
	}
	fs, ok := p.Inlines[1].(*FormatSwitch)
	if !ok || !fs.Bold || fs.Italics {
		t.Fatalf("inline 1 = %#v, want bold FormatSwitch", p.Inlines[1])
	}
	pt, ok = p.Inlines[2].(*PlainText)
	if !ok || pt.Content != "bold'" {
		t.Fatalf("inline 2 = %#v, want PlainText(\"bold'\")", p.Inlines[2])
	}
	fs, ok = p.Inlines[3].(*FormatSwitch)
	if !ok || !fs.Bold || fs.Italics {
		t.Fatalf("inline 3 = %#v, want bold FormatSwitch", p.Inlines[3])
	}

	if got := doc.String(); got != "''''bold''''" {
		t.Errorf("round-trip mismatch: got %q", got)
	}
}

func TestParse_Options(t *testing.T) {
	doc, err := Parse("<code>[[x]]</code>", WithParserTagNames("code"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p, ok := doc.Lines[0].(*Paragraph)
	if !ok || len(p.Inlines) != 1 {
		t.Fatalf("unexpected shape: %#v", doc.Lines)
	}
	tag, ok := p.Inlines[0].(*ParserTag)
	if !ok {
		t.Fatalf("expected *ParserTag, got %T", p.Inlines[0])
	}
	if tag.Content != "[[x]]" {
		t.Errorf("Content = %q, want %q", tag.Content, "[[x]]")
	}
}

func TestParse_CaseFoldParserTags(t *testing.T) {
	doc, err := Parse("<NoWiki>[[x]]</NoWiki>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := doc.Lines[0].(*Paragraph)
	if _, ok := p.Inlines[0].(*ParserTag); !ok {
		t.Fatalf("expected case-folded tag name to still match parser tag set, got %T", p.Inlines[0])
	}

	doc, err = Parse("<NoWiki>[[x]]</NoWiki>", WithCaseFoldParserTags(false))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p = doc.Lines[0].(*Paragraph)
	if _, ok := p.Inlines[0].(*HtmlTag); !ok {
		t.Fatalf("expected non-folded name to miss the parser tag set, got %T", p.Inlines[0])
	}
}
