package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the tree as HTML. Text and attribute values are
// escaped by the serializer.
func RenderHTML(w io.Writer, n *Node) error {
	return html.Render(w, toHTML(n))
}

func toHTML(n *Node) *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, ch := range n.Children {
		el.AppendChild(toHTML(ch))
	}
	return el
}

// chartWidth is the length in cells of the longest bar in text output.
const chartWidth = 40

// RenderText writes the tree as plain text for a terminal. Hidden nodes are
// skipped, tables are column aligned, and charts are drawn as horizontal bars.
// Buttons and links show the id or href an operator needs to act on them.
func RenderText(w io.Writer, n *Node) error {
	tw := &textWriter{w: w}
	tw.node(n)
	return tw.err
}

type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) node(n *Node) {
	if n.Hidden() {
		return
	}

	switch {
	case n.HasClass("chart"):
		t.chart(n)
		return
	case n.Tag == "table":
		t.table(n)
		return
	case n.HasClass("total"):
		t.printf("%s\n", cellText(n))
		return
	}

	if n.Text != "" {
		t.printf("%s\n", inline(n))
	}
	for _, ch := range n.Children {
		t.node(ch)
	}
	if n.HasClass("comment-card") {
		t.printf("\n")
	}
}

func (t *textWriter) table(n *Node) {
	if t.err != nil {
		return
	}
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	for _, tr := range n.FindAll(func(x *Node) bool { return x.Tag == "tr" }) {
		cells := make([]string, 0, len(tr.Children))
		for _, cell := range tr.Children {
			cells = append(cells, cellText(cell))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			t.err = err
			return
		}
	}
	t.err = tw.Flush()
}

func (t *textWriter) chart(n *Node) {
	t.printf("%s\n", n.Attr("data-title"))

	var maxVal int64
	values := make([]int64, len(n.Children))
	for i, bar := range n.Children {
		v, _ := strconv.ParseInt(bar.Attr("data-value"), 10, 64)
		values[i] = v
		if v > maxVal {
			maxVal = v
		}
	}

	for i, bar := range n.Children {
		t.printf("%-10s %s %d\n", bar.Attr("data-label"), strings.Repeat("#", barWidth(values[i], maxVal)), values[i])
	}
}

// barWidth scales v against maxVal onto chartWidth cells. Negative values
// draw no bar.
func barWidth(v, maxVal int64) int {
	if v <= 0 || maxVal <= 0 {
		return 0
	}
	return int(float64(v) / float64(maxVal) * chartWidth)
}

func cellText(n *Node) string {
	var parts []string
	if n.Text != "" {
		parts = append(parts, inline(n))
	}
	for _, ch := range n.Children {
		if ch.Hidden() {
			continue
		}
		parts = append(parts, cellText(ch))
	}
	return strings.Join(parts, " ")
}

func inline(n *Node) string {
	switch n.Tag {
	case "button":
		if id := n.Attr("data-id"); id != "" {
			return fmt.Sprintf("[%s %s]", n.Text, id)
		}
		return "[" + n.Text + "]"
	case "a":
		return fmt.Sprintf("%s <%s>", n.Text, n.Attr("href"))
	}
	return n.Text
}
