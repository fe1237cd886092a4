// Package view holds the pure rendering layer: functions that turn read
// models into a tree of Nodes, and serializers that write a tree as HTML or
// as plain terminal text. Nothing here performs I/O beyond the io.Writer
// handed to a serializer.
package view

import "strings"

// Attr is one element attribute. Order is preserved when serializing.
type Attr struct {
	Key string
	Val string
}

// Node is an element of the view tree. A Node with an empty Tag is a bare
// text node.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// El builds an element node.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

// Txt builds an element whose only content is text.
func Txt(tag string, attrs []Attr, text string) *Node {
	return &Node{Tag: tag, Attrs: attrs, Text: text}
}

// A is shorthand for a list of attributes given as key, value pairs.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, Attr{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

func (n *Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func (n *Node) HasAttr(key string) bool {
	for _, a := range n.Attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Hidden reports whether the node carries the hidden attribute.
func (n *Node) Hidden() bool {
	return n.HasAttr("hidden")
}

// FindAll returns every node in the subtree, n included, that matches pred,
// in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(x *Node) {
		if pred(x) {
			out = append(out, x)
		}
		for _, ch := range x.Children {
			walk(ch)
		}
	}
	walk(n)
	return out
}

func (n *Node) ByClass(class string) []*Node {
	return n.FindAll(func(x *Node) bool { return x.HasClass(class) })
}

// ByID returns the first node with the given id, or nil.
func (n *Node) ByID(id string) *Node {
	found := n.FindAll(func(x *Node) bool { return x.Attr("id") == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// TextContent concatenates the text of the subtree, space separated.
func (n *Node) TextContent() string {
	var parts []string
	var walk func(*Node)
	walk = func(x *Node) {
		if x.Text != "" {
			parts = append(parts, x.Text)
		}
		for _, ch := range x.Children {
			walk(ch)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
