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
// HTML rendering backend
//
//

package blockdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"
)

// HTMLFlags control optional behavior of the HTML renderer.
type HTMLFlags int

// HTML renderer configuration options.
const (
	HTMLFlagsNone HTMLFlags = 0
	EscapeContent HTMLFlags = 1 << iota // Escape document content before any tag is injected
	HeadingIDs                          // Give every heading an id attribute derived from its text
	NoClasses                           // Omit class attributes
	Container                           // Wrap the output in a preview <div> or raw <pre>
	CompletePage                        // Generate a complete HTML page (implies Container)
)

// CellAlignFlags holds the alignment of a table column.
type CellAlignFlags int

// Table column alignments, only used with the TableAlignment extension.
const (
	TableAlignmentLeft CellAlignFlags = 1 << iota
	TableAlignmentRight
	TableAlignmentCenter = (TableAlignmentLeft | TableAlignmentRight)
)

// HTMLRendererParameters holds the class names and id affixes used by the
// HTML renderer. Zero values are replaced by the defaults below.
type HTMLRendererParameters struct {
	// Classes for <h1>, <h2> and <h3>.
	HeadingClasses [3]string
	// Class of the <div> wrapping every table.
	TableContainerClass string
	TableClass          string
	// Classes of <ul> and <ol>.
	ListClass        string
	OrderedListClass string
	ListItemClass    string
	// Classes of the preview <div> and raw <pre> used with Container.
	PreviewClass string
	RawClass     string
	// If set, add this text to the front of each heading ID.
	HeadingIDPrefix string
	// If set, add this text to the back of each heading ID.
	HeadingIDSuffix string
}

var defaultParameters = HTMLRendererParameters{
	HeadingClasses:      [3]string{"section-title", "day-header", "subsection-title"},
	TableContainerClass: "table-container",
	TableClass:          "info-table",
	ListClass:           "styled-list",
	OrderedListClass:    "styled-list ordered",
	ListItemClass:       "list-item",
	PreviewClass:        "markdown-preview",
	RawClass:            "markdown-raw",
}

// Renderer turns recognized blocks and spans into output markup.
// Every method returns a fresh string and must not keep state between
// calls; a single Renderer may be shared by concurrent renders.
type Renderer interface {
	// Heading renders a level 1-3 heading. id is empty unless heading IDs
	// are enabled.
	Heading(level int, id, text string) string
	// Table renders a header row and its body rows. align is nil unless
	// the TableAlignment extension is on.
	Table(header []string, align []CellAlignFlags, rows [][]string) string
	// List renders the items of one list block.
	List(ordered bool, items []string) string

	Emphasis(text string) string
	DoubleEmphasis(text string) string
	TripleEmphasis(text string) string

	// RawText renders a document in raw mode.
	RawText(text string) string

	DocumentHeader(mode Mode) string
	DocumentFooter(mode Mode) string

	// Flags reports the renderer configuration the parser depends on.
	Flags() HTMLFlags
	// HeadingID turns heading text into an id, before de-duplication.
	HeadingID(text string) string
}

// HTML is a type that implements the Renderer interface for HTML output.
//
// Do not create this directly, instead use the NewHTMLRenderer function.
type HTML struct {
	flags HTMLFlags
	title string // document title
	css   string // optional css file url (used with CompletePage)

	parameters HTMLRendererParameters
}

// NewHTMLRenderer creates and configures an HTML object, which
// satisfies the Renderer interface.
//
// flags is a set of HTMLFlags ORed together.
// title is the title of the document, and css is a URL for the document's
// stylesheet.
// title and css are only used when CompletePage is selected.
func NewHTMLRenderer(flags HTMLFlags, title string, css string) *HTML {
	return NewHTMLRendererWithParameters(flags, title, css, HTMLRendererParameters{})
}

// NewHTMLRendererWithParameters is NewHTMLRenderer with explicit class
// names and heading ID affixes.
func NewHTMLRendererWithParameters(flags HTMLFlags, title string,
	css string, renderParameters HTMLRendererParameters) *HTML {
	if flags&CompletePage != 0 {
		flags |= Container
	}

	for i, c := range renderParameters.HeadingClasses {
		if c == "" {
			renderParameters.HeadingClasses[i] = defaultParameters.HeadingClasses[i]
		}
	}
	fill := func(s *string, def string) {
		if *s == "" {
			*s = def
		}
	}
	fill(&renderParameters.TableContainerClass, defaultParameters.TableContainerClass)
	fill(&renderParameters.TableClass, defaultParameters.TableClass)
	fill(&renderParameters.ListClass, defaultParameters.ListClass)
	fill(&renderParameters.OrderedListClass, defaultParameters.OrderedListClass)
	fill(&renderParameters.ListItemClass, defaultParameters.ListItemClass)
	fill(&renderParameters.PreviewClass, defaultParameters.PreviewClass)
	fill(&renderParameters.RawClass, defaultParameters.RawClass)

	return &HTML{
		flags:      flags,
		title:      title,
		css:        css,
		parameters: renderParameters,
	}
}

// Flags returns the flags the renderer was created with.
func (r *HTML) Flags() HTMLFlags {
	return r.flags
}

// openTag writes "<tag" plus a class attribute unless classes are off.
func (r *HTML) openTag(w *bytes.Buffer, tag, class string) {
	w.WriteByte('<')
	w.WriteString(tag)
	if class != "" && r.flags&NoClasses == 0 {
		w.WriteString(` class="`)
		escapeHTML(w, []byte(class))
		w.WriteByte('"')
	}
}

func (r *HTML) Heading(level int, id, text string) string {
	if level < 1 {
		level = 1
	} else if level > 3 {
		level = 3
	}
	var w bytes.Buffer
	r.openTag(&w, fmt.Sprintf("h%d", level), r.parameters.HeadingClasses[level-1])
	if id != "" {
		w.WriteString(` id="`)
		escapeHTML(&w, []byte(r.parameters.HeadingIDPrefix+id+r.parameters.HeadingIDSuffix))
		w.WriteByte('"')
	}
	w.WriteByte('>')
	w.WriteString(text)
	fmt.Fprintf(&w, "</h%d>", level)
	return w.String()
}

func (r *HTML) HeadingID(text string) string {
	return sanitized_anchor_name.Create(text)
}

func (r *HTML) Table(header []string, align []CellAlignFlags, rows [][]string) string {
	var w bytes.Buffer
	r.openTag(&w, "div", r.parameters.TableContainerClass)
	w.WriteString(">\n")
	r.openTag(&w, "table", r.parameters.TableClass)
	w.WriteString(">\n<thead>\n<tr>")
	for i, h := range header {
		tableCell(&w, "th", h, alignAt(align, i))
	}
	w.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range rows {
		w.WriteString("<tr>")
		for i, c := range row {
			tableCell(&w, "td", c, alignAt(align, i))
		}
		w.WriteString("</tr>\n")
	}
	w.WriteString("</tbody>\n</table>\n</div>")
	return w.String()
}

func alignAt(align []CellAlignFlags, i int) CellAlignFlags {
	if i < len(align) {
		return align[i]
	}
	return 0
}

func tableCell(out *bytes.Buffer, tag, text string, align CellAlignFlags) {
	out.WriteByte('<')
	out.WriteString(tag)
	switch align {
	case TableAlignmentLeft:
		out.WriteString(` align="left"`)
	case TableAlignmentRight:
		out.WriteString(` align="right"`)
	case TableAlignmentCenter:
		out.WriteString(` align="center"`)
	}
	out.WriteByte('>')
	out.WriteString(text)
	out.WriteString("</")
	out.WriteString(tag)
	out.WriteByte('>')
}

func (r *HTML) List(ordered bool, items []string) string {
	var w bytes.Buffer
	tag, class := "ul", r.parameters.ListClass
	if ordered {
		tag, class = "ol", r.parameters.OrderedListClass
	}
	r.openTag(&w, tag, class)
	w.WriteString(">\n")
	for _, item := range items {
		r.openTag(&w, "li", r.parameters.ListItemClass)
		w.WriteByte('>')
		w.WriteString(item)
		w.WriteString("</li>\n")
	}
	w.WriteString("</")
	w.WriteString(tag)
	w.WriteByte('>')
	return w.String()
}

func (r *HTML) Emphasis(text string) string {
	return "<em>" + text + "</em>"
}

func (r *HTML) DoubleEmphasis(text string) string {
	return "<strong>" + text + "</strong>"
}

func (r *HTML) TripleEmphasis(text string) string {
	return "<strong><em>" + text + "</em></strong>"
}

func (r *HTML) RawText(text string) string {
	return Escape(text)
}

func (r *HTML) DocumentHeader(mode Mode) string {
	if r.flags&Container == 0 {
		return ""
	}

	var w bytes.Buffer
	if r.flags&CompletePage != 0 {
		w.WriteString("<!DOCTYPE html>\n")
		w.WriteString("<html>\n")
		w.WriteString("<head>\n")
		w.WriteString("  <title>")
		escapeHTML(&w, []byte(r.title))
		w.WriteString("</title>\n")
		w.WriteString("  <meta charset=\"utf-8\">\n")
		if r.css != "" {
			w.WriteString("  <link rel=\"stylesheet\" type=\"text/css\" href=\"")
			escapeHTML(&w, []byte(r.css))
			w.WriteString("\">\n")
		}
		w.WriteString("</head>\n")
		w.WriteString("<body>\n")
	}

	if mode == ModeRaw {
		r.openTag(&w, "pre", r.parameters.RawClass)
	} else {
		r.openTag(&w, "div", r.parameters.PreviewClass)
	}
	w.WriteByte('>')
	return w.String()
}

func (r *HTML) DocumentFooter(mode Mode) string {
	if r.flags&Container == 0 {
		return ""
	}

	var b strings.Builder
	if mode == ModeRaw {
		b.WriteString("</pre>")
	} else {
		b.WriteString("</div>")
	}
	if r.flags&CompletePage != 0 {
		b.WriteString("\n</body>\n</html>\n")
	}
	return b.String()
}
