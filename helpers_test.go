//
// Blockdown Markup Renderer
// Based on the Blackfriday Markdown Processor
// by Russ Ross <russ@russross.com>
//
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Helper functions for unit testing
//

package blockdown

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/pmezard/go-difflib/difflib"
)

type TestParams struct {
	Extensions
	HTMLFlags
	HTMLRendererParameters
}

func runMarkdownBlock(input string, params TestParams) string {
	renderer := NewHTMLRendererWithParameters(params.HTMLFlags, "", "", params.HTMLRendererParameters)
	return string(Run([]byte(input), WithRenderer(renderer), WithExtensions(params.Extensions)))
}

func doTestsBlock(t *testing.T, tests []string, extensions Extensions) {
	doTestsBlockWithRunner(t, tests, TestParams{Extensions: extensions}, runMarkdownBlock)
}

func doTestsParam(t *testing.T, tests []string, params TestParams) {
	doTestsBlockWithRunner(t, tests, params, runMarkdownBlock)
}

func doTestsBlockWithRunner(t *testing.T, tests []string, params TestParams, runner func(string, TestParams) string) {
	t.Helper()

	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while processing [%#v]: %s\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual := runner(candidate, params)
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				candidate, expected, actual, diff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					runner(candidate, params)
				}
			}
		}
	}
}

// diff returns a line diff of two renderings, for multi-line output that is
// hard to compare by eye.
func diff(expected, actual string) string {
	if !strings.Contains(expected, "\n") && !strings.Contains(actual, "\n") {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return text
}

// parseHTML loads rendered output for structural assertions.
func parseHTML(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse rendered html: %v", err)
	}
	return doc
}

func texts(sel *goquery.Selection) []string {
	var out []string
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Text())
	})
	return out
}
