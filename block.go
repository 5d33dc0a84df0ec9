//
// Blockdown Markup Renderer
// Based on the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Functions to find and render block-level elements.
//

package blockdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	// One to three '#', optionally more '#' kept as text, then a space.
	headingRe = regexp.MustCompile(`(?m)^(#{1,3})(#* .*)$`)

	// A header row, a separator made only of | - : and blanks, then one or
	// more rows. Header and rows start and end with '|'.
	tableRe = regexp.MustCompile(`(?m)^(\|.*\|)[ \t]*\n(\|[ \t:|-]*)\n((?:\|.*\|[ \t]*(?:\n|$))+)`)

	unorderedListRe = regexp.MustCompile(`(?m)^(?:\* .*(?:\n|$))+`)
	orderedListRe   = regexp.MustCompile(`(?m)^(?:\d+\. .*(?:\n|$))+`)
	orderedMarkerRe = regexp.MustCompile(`^\d+\. `)
	blankLinesRe    = regexp.MustCompile(`\n\n+`)
)

// headingStage turns "# t", "## t" and "### t" lines into headings.
func headingStage(p *parser, text string) string {
	return headingRe.ReplaceAllStringFunc(text, func(line string) string {
		m := headingRe.FindStringSubmatch(line)
		level := len(m[1])
		content := strings.TrimPrefix(m[2], " ")

		id := ""
		if p.r.Flags()&HeadingIDs != 0 {
			// ids come from the text a reader sees, not its entities
			if id = p.r.HeadingID(html.UnescapeString(content)); id != "" {
				id = p.ensureUniqueHeadingID(id)
			}
		}
		return p.r.Heading(level, id, content)
	})
}

func (p *parser) ensureUniqueHeadingID(id string) string {
	for count, found := p.headingIDs[id]; found; count, found = p.headingIDs[id] {
		tmp := fmt.Sprintf("%s-%d", id, count+1)

		if _, tmpFound := p.headingIDs[tmp]; !tmpFound {
			p.headingIDs[id] = count + 1
			id = tmp
		} else {
			id = id + "-1"
		}
	}

	if _, found := p.headingIDs[id]; !found {
		p.headingIDs[id] = 0
	}

	return id
}

// tableStage replaces every table block. The separator line only
// contributes column alignment, and only with the TableAlignment extension.
func tableStage(p *parser, text string) string {
	return tableRe.ReplaceAllStringFunc(text, func(block string) string {
		m := tableRe.FindStringSubmatch(block)
		header := splitCells(m[1])

		var align []CellAlignFlags
		if p.extensions&TableAlignment != 0 {
			align = columnAlignment(m[2])
		}

		var rows [][]string
		for _, line := range strings.Split(strings.TrimSuffix(m[3], "\n"), "\n") {
			rows = append(rows, splitCells(line))
		}

		return keepNewline(block, p.r.Table(header, align, rows))
	})
}

// splitCells splits a table line on '|' and trims every cell. The empty
// cells in front of the first and after the last '|' are dropped; empty
// cells in between are kept.
func splitCells(line string) []string {
	cells := strings.Split(strings.TrimSpace(line), "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func columnAlignment(separator string) []CellAlignFlags {
	cells := splitCells(separator)
	align := make([]CellAlignFlags, len(cells))
	for i, c := range cells {
		if strings.HasPrefix(c, ":") {
			align[i] |= TableAlignmentLeft
		}
		if len(c) > 1 && strings.HasSuffix(c, ":") {
			align[i] |= TableAlignmentRight
		}
	}
	return align
}

func unorderedListStage(p *parser, text string) string {
	return unorderedListRe.ReplaceAllStringFunc(text, func(block string) string {
		items := listItems(block, func(line string) string {
			return strings.TrimPrefix(line, "* ")
		})
		return keepNewline(block, p.r.List(false, items))
	})
}

// orderedListStage drops the source numbers; the output list renumbers.
func orderedListStage(p *parser, text string) string {
	return orderedListRe.ReplaceAllStringFunc(text, func(block string) string {
		items := listItems(block, func(line string) string {
			return orderedMarkerRe.ReplaceAllString(line, "")
		})
		return keepNewline(block, p.r.List(true, items))
	})
}

func listItems(block string, strip func(string) string) []string {
	lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		items = append(items, strings.TrimSpace(strip(line)))
	}
	return items
}

// blankLineStage collapses runs of blank lines into one.
func blankLineStage(p *parser, text string) string {
	return blankLinesRe.ReplaceAllString(text, "\n\n")
}

// keepNewline puts back the line break a block pattern consumed, so the
// text after a block starts on its own line.
func keepNewline(block, out string) string {
	if strings.HasSuffix(block, "\n") {
		return out + "\n"
	}
	return out
}
