//
// Blockdown Markup Renderer
// Based on the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Functions to parse inline elements.
//

package blockdown

import (
	"regexp"
	"strings"
)

// Markers pair by position: the nearest closing run wins, left to right,
// and a span never leaves its line. Single emphasis never contains a '*'.
var (
	tripleEmphasisRe = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	doubleEmphasisRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emphasisRe       = regexp.MustCompile(`\*([^*\n]+?)\*`)
)

// On a table row a span stays inside its cell.
var (
	cellTripleEmphasisRe = regexp.MustCompile(`\*\*\*([^|\n]+?)\*\*\*`)
	cellDoubleEmphasisRe = regexp.MustCompile(`\*\*([^|\n]+?)\*\*`)
	cellEmphasisRe       = regexp.MustCompile(`\*([^*|\n]+?)\*`)
)

// emphasisStage renders emphasis line by line. A leading "* " is an
// unordered list marker for a later stage and is left alone.
func emphasisStage(p *parser, text string) string {
	if strings.IndexByte(text, '*') < 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.IndexByte(line, '*') < 0 {
			continue
		}
		marker := ""
		if strings.HasPrefix(line, "* ") {
			marker, line = "* ", line[2:]
		}
		lines[i] = marker + p.emphasis(line)
	}
	return strings.Join(lines, "\n")
}

func (p *parser) emphasis(line string) string {
	if strings.HasPrefix(line, "|") {
		line = replaceSpan(cellTripleEmphasisRe, line, p.r.TripleEmphasis)
		line = replaceSpan(cellDoubleEmphasisRe, line, p.r.DoubleEmphasis)
		return replaceSpan(cellEmphasisRe, line, p.r.Emphasis)
	}
	line = replaceSpan(tripleEmphasisRe, line, p.r.TripleEmphasis)
	line = replaceSpan(doubleEmphasisRe, line, p.r.DoubleEmphasis)
	return replaceSpan(emphasisRe, line, p.r.Emphasis)
}

func replaceSpan(re *regexp.Regexp, line string, render func(string) string) string {
	return re.ReplaceAllStringFunc(line, func(span string) string {
		return render(re.FindStringSubmatch(span)[1])
	})
}
