package document

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"

	"github.com/ukaji3/addrbook-go/pkg/addrbook/models"
)

// maxSpan caps colspan/rowspan values taken from the document.
const maxSpan = 1000

// HTMLReader reads every <table> element of an HTML document.
//
// Tables are returned in document order, nested tables included. Leading
// rows made only of <th> cells, and rows inside <thead>, are headers and are
// not returned. Spanned cells are repeated into every position they cover.
type HTMLReader struct{}

// ReadTables reads the tables of the HTML file at path.
func (r *HTMLReader) ReadTables(path string) ([]models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return r.Parse(f, "text/html")
}

// Parse reads tables from an HTML stream. contentType may carry a charset
// parameter; otherwise the encoding is sniffed from the content.
func (r *HTMLReader) Parse(in io.Reader, contentType string) ([]models.Table, error) {
	utf8Reader, err := charset.NewReader(in, contentType)
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}

	doc, err := html.Parse(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var tables []models.Table
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			tables = append(tables, models.Table{
				Index: len(tables),
				Rows:  tableRows(n),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return tables, nil
}

// htmlRow is a <tr> together with whether it belongs to the header.
type htmlRow struct {
	node   *html.Node
	header bool
}

// collectRows returns the <tr> elements owned by table, skipping rows of
// nested tables.
func collectRows(table *html.Node) []htmlRow {
	var rows []htmlRow
	var walk func(n *html.Node, inHead bool)
	walk = func(n *html.Node, inHead bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				continue
			case atom.Tr:
				rows = append(rows, htmlRow{node: c, header: inHead})
			case atom.Thead:
				walk(c, true)
			default:
				walk(c, inHead)
			}
		}
	}
	walk(table, false)
	return rows
}

func tableRows(table *html.Node) []models.Row {
	rows := collectRows(table)

	// Leading all-<th> rows are header rows.
	leading := true
	for i := range rows {
		if !leading {
			break
		}
		if rows[i].header {
			continue
		}
		if allHeaderCells(rows[i].node) {
			rows[i].header = true
			continue
		}
		leading = false
	}

	type pending struct {
		cell      models.Cell
		remaining int
	}
	carry := make(map[int]*pending)

	var out []models.Row
	for _, r := range rows {
		var row models.Row
		col := 0
		fill := func() {
			for {
				p, ok := carry[col]
				if !ok {
					return
				}
				row = append(row, p.cell)
				p.remaining--
				if p.remaining == 0 {
					delete(carry, col)
				}
				col++
			}
		}

		for c := r.node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
				continue
			}
			fill()
			cell := cleanText(textContent(c))
			colspan := spanAttr(c, "colspan")
			rowspan := spanAttr(c, "rowspan")
			for i := 0; i < colspan; i++ {
				row = append(row, cell)
				if rowspan > 1 {
					carry[col] = &pending{cell: cell, remaining: rowspan - 1}
				}
				col++
			}
		}
		fill()

		// Spans that continue past a gap keep their column position.
		maxCol := -1
		for k := range carry {
			if k > maxCol {
				maxCol = k
			}
		}
		for ; col <= maxCol; col++ {
			if p, ok := carry[col]; ok {
				row = append(row, p.cell)
				p.remaining--
				if p.remaining == 0 {
					delete(carry, col)
				}
				continue
			}
			row = append(row, models.Null())
		}

		if !r.header {
			out = append(out, row)
		}
	}
	return out
}

func allHeaderCells(tr *html.Node) bool {
	seen := false
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Th:
			seen = true
		case atom.Td:
			return false
		}
	}
	return seen
}

func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(a.Val))
		if err != nil || v < 1 {
			return 1
		}
		if v > maxSpan {
			return maxSpan
		}
		return v
	}
	return 1
}

// textContent returns the concatenated text below n. Script and style
// content is skipped and <br> becomes a space.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			b.WriteString(node.Data)
			return
		case html.ElementNode:
			switch node.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Br:
				b.WriteByte(' ')
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
