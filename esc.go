//
// Blockdown Markup Renderer
// Based on the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package blockdown

import (
	"io"
	"strings"
)

type escMap struct {
	char byte
	seq  []byte
}

var htmlEscaper = []escMap{
	{'&', []byte("&amp;")},
	{'<', []byte("&lt;")},
	{'>', []byte("&gt;")},
	{'"', []byte("&quot;")},
	{'\'', []byte("&#039;")},
}

func isEscapable(c byte) bool {
	return c == '&' || c == '<' || c == '>' || c == '"' || c == '\''
}

// escapeHTML writes s to w with the five reserved characters replaced by
// their entities. Every byte of s is looked at exactly once, so an entity
// written for one character is never escaped again.
func escapeHTML(w io.Writer, s []byte) {
	var start, end int
	var sEnd byte
	for end < len(s) {
		sEnd = s[end]
		if isEscapable(sEnd) {
			for i := 0; i < len(htmlEscaper); i++ {
				if sEnd == htmlEscaper[i].char {
					w.Write(s[start:end])
					w.Write(htmlEscaper[i].seq)
					start = end + 1
					break
				}
			}
		}
		end++
	}
	if start < len(s) && end <= len(s) {
		w.Write(s[start:end])
	}
}

// Escape returns text with & < > " and ' replaced by HTML entities.
// All other characters are left unchanged.
func Escape(text string) string {
	if strings.IndexAny(text, `&<>"'`) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	escapeHTML(&b, []byte(text))
	return b.String()
}
