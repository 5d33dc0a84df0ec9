//
// Blockdown Markup Renderer
// Based on the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Unit tests for inline parsing
//

package blockdown

import (
	"testing"
)

func TestEmphasis(t *testing.T) {
	var tests = []string{
		"nothing inline",
		"nothing inline",

		"simple *inline* test",
		"simple <em>inline</em> test",

		"*at the* beginning",
		"<em>at the</em> beginning",

		"at the *end*",
		"at the <em>end</em>",

		"*try two* in *one line*",
		"<em>try two</em> in <em>one line</em>",

		"cost is *approx",
		"cost is *approx",

		"2 * 3 * 4",
		"2 <em> 3 </em> 4",

		"2*3*4",
		"2<em>3</em>4",

		"a * b * c * d",
		"a <em> b </em> c * d",

		"this * is emphasis*",
		"this <em> is emphasis</em>",

		"*a\nb*",
		"*a\nb*",

		"*a*\n*b*",
		"<em>a</em>\n<em>b</em>",

		"*",
		"*",

		"**",
		"**",
	}
	doTestsBlock(t, tests, Emphasis)
}

func TestDoubleEmphasis(t *testing.T) {
	var tests = []string{
		"simple **inline** test",
		"simple <strong>inline</strong> test",

		"**bold** and *italic*",
		"<strong>bold</strong> and <em>italic</em>",

		"**try two** in **one line**",
		"<strong>try two</strong> in <strong>one line</strong>",

		"**a *b* c**",
		"<strong>a <em>b</em> c</strong>",

		"a ** b",
		"a ** b",

		"**unterminated",
		"**unterminated",

		"** spaced **",
		"<strong> spaced </strong>",

		"** bold**",
		"<strong> bold</strong>",

		"****",
		"****",
	}
	doTestsBlock(t, tests, Emphasis)
}

func TestTripleEmphasis(t *testing.T) {
	var tests = []string{
		"***both***",
		"<strong><em>both</em></strong>",

		"a ***very important*** note",
		"a <strong><em>very important</em></strong> note",
	}
	doTestsBlock(t, tests, Emphasis)
}

func TestEmphasisKeepsListMarker(t *testing.T) {
	var tests = []string{
		"* one *two*",
		"* one <em>two</em>",

		"* a\n* b",
		"* a\n* b",
	}
	doTestsBlock(t, tests, Emphasis)
}

func TestEmphasisDisabled(t *testing.T) {
	var tests = []string{
		"**bold** and *italic*",
		"**bold** and *italic*",
	}
	doTestsBlock(t, tests, CommonExtensions&^Emphasis)
}

func TestEmphasisInTableRows(t *testing.T) {
	var tests = []string{
		"| *a | b* |\n|---|---|\n| 1 | 2 |",
		"<div>\n<table>\n<thead>\n<tr><th>*a</th><th>b*</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>\n</div>",

		"| **a | b** |\n|---|---|\n| *x* | ***y*** |",
		"<div>\n<table>\n<thead>\n<tr><th>**a</th><th>b**</th></tr>\n</thead>\n<tbody>\n<tr><td><em>x</em></td><td><strong><em>y</em></strong></td></tr>\n</tbody>\n</table>\n</div>",
	}
	doTestsParam(t, tests, TestParams{Extensions: CommonExtensions, HTMLFlags: NoClasses})
}
