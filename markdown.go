//
// Blockdown Markup Renderer
// Based on the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
//
// Pipeline setup and the public entry point
//
//

package blockdown

import (
	"fmt"
	"log"
	"strings"
)

// VERSION is the blockdown version string.
const VERSION = "1.0"

// Mode selects the output form of a render call.
type Mode int

// The rendering modes.
const (
	ModePreview Mode = iota // markup for display
	ModeRaw                 // escaped verbatim transcript
)

func (m Mode) String() string {
	switch m {
	case ModePreview:
		return "preview"
	case ModeRaw:
		return "raw"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts "preview" or "raw" (in any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preview":
		return ModePreview, nil
	case "raw":
		return ModeRaw, nil
	}
	return ModePreview, fmt.Errorf("unknown mode %q (want preview or raw)", s)
}

// Extensions is a bitwise or'ed collection of enabled pipeline stages.
type Extensions int

// These are the supported stages. The order they run in is fixed and does
// not depend on which of them are enabled.
const (
	NoExtensions   Extensions = 0
	Headings       Extensions = 1 << iota // # to ### headings
	Emphasis                              // *em*, **strong** and ***both***
	Tables                                // pipe tables
	UnorderedLists                        // "* " lists
	OrderedLists                          // "1. " lists
	TableAlignment                        // honor ":" markers of the table separator line

	CommonExtensions Extensions = Headings | Emphasis | Tables |
		UnorderedLists | OrderedLists
)

// stage is one rewrite pass over the whole intermediate document.
type stage struct {
	name string
	ext  Extensions
	run  func(p *parser, text string) string
}

// pipeline lists the stages in the order they must run. Later stages see
// the output of earlier ones: every fragment a stage emits starts its lines
// with '<', so it never begins a line the way a heading, table row or list
// item does.
var pipeline = []stage{
	{"headings", Headings, headingStage},
	{"emphasis", Emphasis, emphasisStage},
	{"tables", Tables, tableStage},
	{"unordered lists", UnorderedLists, unorderedListStage},
	{"ordered lists", OrderedLists, orderedListStage},
	{"blank lines", NoExtensions, blankLineStage},
}

// parser holds the state of one render call.
type parser struct {
	r          Renderer
	extensions Extensions
	mode       Mode
	logger     *log.Logger

	// Track heading IDs to prevent ID collision in a single generation.
	headingIDs map[string]int
}

// Option customizes the Run function.
type Option func(*parser)

// WithRenderer allows you to override the default renderer.
func WithRenderer(r Renderer) Option {
	return func(p *parser) {
		p.r = r
	}
}

// WithExtensions allows you to pick some of the many extensions provided by
// blockdown. You can bitwise OR them.
func WithExtensions(e Extensions) Option {
	return func(p *parser) {
		p.extensions = e
	}
}

// WithNoExtensions turns off all stages; only line endings and blank lines
// are normalized.
func WithNoExtensions() Option {
	return func(p *parser) {
		p.extensions = NoExtensions
	}
}

// WithLogger traces every stage to l.
func WithLogger(l *log.Logger) Option {
	return func(p *parser) {
		p.logger = l
	}
}

// WithMode is an option for Run that selects preview or raw output.
func WithMode(m Mode) Option {
	return func(p *parser) {
		p.mode = m
	}
}

func newParser(opts ...Option) *parser {
	p := &parser{
		extensions: CommonExtensions,
		headingIDs: make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.r == nil {
		p.r = NewHTMLRenderer(HTMLFlagsNone, "", "")
	}
	return p
}

// Run is the main entry point. It renders input with the given options and
// returns the result. With no options it renders a preview fragment using
// CommonExtensions and the default HTML renderer.
//
// Run never fails: input that matches no rule comes out as plain text.
func Run(input []byte, opts ...Option) []byte {
	p := newParser(opts...)
	return []byte(p.render(string(input)))
}

func (p *parser) render(doc string) string {
	var b strings.Builder
	b.WriteString(p.r.DocumentHeader(p.mode))
	if p.mode == ModeRaw {
		b.WriteString(p.r.RawText(doc))
	} else {
		b.WriteString(p.blocks(doc))
	}
	b.WriteString(p.r.DocumentFooter(p.mode))
	return b.String()
}

// blocks runs the pipeline over doc.
func (p *parser) blocks(doc string) string {
	text := normalizeNewlines(doc)
	if p.r.Flags()&EscapeContent != 0 {
		text = Escape(text)
	}
	for _, s := range pipeline {
		if s.ext != NoExtensions && p.extensions&s.ext == 0 {
			continue
		}
		before := len(text)
		text = s.run(p, text)
		p.Printf("stage %s: %d -> %d bytes", s.name, before, len(text))
	}
	return text
}

// normalizeNewlines turns \r\n and lone \r into \n.
func normalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
