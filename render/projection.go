package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"shopreorder/model"
)

// ProjectExport turns the displayed rows back into export rows. Cell text
// is read from the rendered markup, so the zero-stock badge comes back as
// its text, and the stock cell keeps digits only.
func ProjectExport(t Table) []model.ExportRow {
	out := make([]model.ExportRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		var text [6]string
		for i, cell := range row.Cells {
			text[i] = cellText(cell)
		}
		out = append(out, model.ExportRow{
			ItemName:          text[0],
			Sales:             text[1],
			Stock:             digitsOnly(text[2]),
			Command:           text[3],
			OrderFromLocation: text[4],
			AvailableQty:      text[5],
		})
	}
	return out
}

// cellText returns the visible text of a td's inner HTML.
func cellText(fragment string) string {
	context := &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.TrimSpace(sb.String())
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
