package blockdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	var tests = []string{
		"| A | B |\n| --- | --- |\n| 1 | 2 |",
		"<div>\n<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>\n</div>",

		"| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |\nafter",
		"<div>\n<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n<tr><td>3</td><td>4</td></tr>\n</tbody>\n</table>\n</div>\nafter",

		"before\n| A |\n|:-:|\n| 1 |",
		"before\n<div>\n<table>\n<thead>\n<tr><th>A</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td></tr>\n</tbody>\n</table>\n</div>",

		"| A | | C |\n|---|---|---|\n| 1 | | 3 |",
		"<div>\n<table>\n<thead>\n<tr><th>A</th><th></th><th>C</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td></td><td>3</td></tr>\n</tbody>\n</table>\n</div>",

		"| **A** | B |\n| --- | --- |\n| *1* | 2 |",
		"<div>\n<table>\n<thead>\n<tr><th><strong>A</strong></th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td><em>1</em></td><td>2</td></tr>\n</tbody>\n</table>\n</div>",

		"| A | B |\n| --- | --- |\n| 1 | 2 | 3 |",
		"<div>\n<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td><td>3</td></tr>\n</tbody>\n</table>\n</div>",
	}
	doTestsParam(t, tests, TestParams{Extensions: CommonExtensions, HTMLFlags: NoClasses})
}

func TestTableNeedsSeparator(t *testing.T) {
	var tests = []string{
		"| A | B |\n| 1 | 2 |",
		"| A | B |\n| 1 | 2 |",

		"a | b",
		"a | b",

		"| A |\n| --- |",
		"| A |\n| --- |",

		"| A |\n| -x- |\n| 1 |",
		"| A |\n| -x- |\n| 1 |",

		"| A |\n\n| --- |\n| 1 |",
		"| A |\n\n| --- |\n| 1 |",
	}
	doTestsParam(t, tests, TestParams{Extensions: CommonExtensions, HTMLFlags: NoClasses})
}

func TestTableBareSeparator(t *testing.T) {
	var tests = []string{
		"| A |\n|:|\n| 1 |",
		"<div>\n<table>\n<thead>\n<tr><th>A</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td></tr>\n</tbody>\n</table>\n</div>",

		"| A | B |\n| | |\n| 1 | 2 |",
		"<div>\n<table>\n<thead>\n<tr><th>A</th><th>B</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td><td>2</td></tr>\n</tbody>\n</table>\n</div>",
	}
	doTestsParam(t, tests, TestParams{Extensions: CommonExtensions, HTMLFlags: NoClasses})

	out := runMarkdownBlock("| L | R |\n|:|:|\n| 1 | 2 |", TestParams{Extensions: CommonExtensions | TableAlignment, HTMLFlags: NoClasses})
	assert.Contains(t, out, "<th align=\"left\">L</th><th align=\"left\">R</th>")
}

func TestTableClasses(t *testing.T) {
	var tests = []string{
		"| A |\n|---|\n| 1 |",
		"<div class=\"table-container\">\n<table class=\"info-table\">\n<thead>\n<tr><th>A</th></tr>\n</thead>\n<tbody>\n<tr><td>1</td></tr>\n</tbody>\n</table>\n</div>",
	}
	doTestsBlock(t, tests, CommonExtensions)
}

func TestTableAlignment(t *testing.T) {
	var tests = []string{
		"| L | C | R | N |\n|:--|:-:|--:|---|\n| 1 | 2 | 3 | 4 |",
		"<div>\n<table>\n<thead>\n<tr><th align=\"left\">L</th><th align=\"center\">C</th><th align=\"right\">R</th><th>N</th></tr>\n</thead>\n<tbody>\n<tr><td align=\"left\">1</td><td align=\"center\">2</td><td align=\"right\">3</td><td>4</td></tr>\n</tbody>\n</table>\n</div>",
	}
	doTestsParam(t, tests, TestParams{Extensions: CommonExtensions | TableAlignment, HTMLFlags: NoClasses})
}

func TestTableAlignmentIgnoredByDefault(t *testing.T) {
	out := runMarkdownBlock("| L |\n|:--|\n| 1 |", TestParams{Extensions: CommonExtensions, HTMLFlags: NoClasses})
	assert.NotContains(t, out, "align=")
}

func TestTableStructure(t *testing.T) {
	doc := parseHTML(t, Render("| A | B |\n| --- | --- |\n| 1 | 2 |"))

	assert.Equal(t, []string{"A", "B"}, texts(doc.Find("div.table-container table.info-table thead th")))
	rows := doc.Find("table tbody tr")
	assert.Equal(t, 1, rows.Length())
	assert.Equal(t, []string{"1", "2"}, texts(rows.First().Find("td")))
}
