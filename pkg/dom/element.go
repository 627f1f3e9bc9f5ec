package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a single element node inside a Document.
type Element struct {
	node *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

// Node exposes the underlying html node.
func (e *Element) Node() *html.Node {
	return e.node
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return attr(e.node, "id")
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// SetAttr adds or replaces an attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// Text returns the concatenated text of all descendant text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// SetText replaces all children with a single text node.
// An empty string leaves the element without children.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if s != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Value returns the current form value the way a browser reports it:
// the value attribute for inputs, the text for textareas and the selected
// option's value for selects. When no option is marked selected the first
// option wins, as it does for a single-choice select.
func (e *Element) Value() string {
	switch e.node.DataAtom {
	case atom.Textarea:
		return e.Text()
	case atom.Select:
		options := e.options()
		for _, o := range options {
			if o.HasAttr("selected") {
				return o.optionValue()
			}
		}
		if len(options) > 0 {
			return options[0].optionValue()
		}
		return ""
	default:
		v, _ := e.Attr("value")
		return v
	}
}

// SetValue stores v so that it renders back into the control. For selects
// the matching option becomes selected; when none matches no option is
// selected.
func (e *Element) SetValue(v string) {
	switch e.node.DataAtom {
	case atom.Textarea:
		e.SetText(v)
	case atom.Select:
		matched := false
		for _, o := range e.options() {
			if !matched && o.optionValue() == v {
				o.SetAttr("selected", "")
				matched = true
				continue
			}
			o.RemoveAttr("selected")
		}
	default:
		e.SetAttr("value", v)
	}
}

// Checked reports the checked state of a checkbox or radio input.
func (e *Element) Checked() bool {
	return e.HasAttr("checked")
}

// SetChecked toggles the checked attribute.
func (e *Element) SetChecked(checked bool) {
	if checked {
		e.SetAttr("checked", "")
		return
	}
	e.RemoveAttr("checked")
}

// Render writes the element and its subtree as HTML.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.node)
}

// String renders the element, returning an empty string on failure.
func (e *Element) String() string {
	var b strings.Builder
	if err := e.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

func (e *Element) options() []*Element {
	var out []*Element
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Option {
			out = append(out, &Element{node: n})
		}
		return true
	})
	return out
}

func (e *Element) optionValue() string {
	if v, ok := e.Attr("value"); ok {
		return v
	}
	return strings.Join(strings.Fields(e.Text()), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
