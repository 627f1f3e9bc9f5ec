package dom

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

var autofocused = MustCompile("[autofocus]")

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// ByID returns the first element whose id attribute equals id, or nil.
func (d *Document) ByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// QueryFirst returns the first element in document order matching sel, or nil.
func (d *Document) QueryFirst(sel Selector) *Element {
	return wrap(sel.first(d.root))
}

// QueryAll returns every element matching sel in document order.
func (d *Document) QueryAll(sel Selector) []*Element {
	nodes := sel.all(d.root)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{node: n})
	}
	return out
}

// Focus makes el the only element carrying the autofocus attribute, which is
// how a rendered page moves initial focus. A nil element is ignored.
func (d *Document) Focus(el *Element) {
	if el == nil {
		return
	}
	for _, other := range d.QueryAll(autofocused) {
		other.RemoveAttr("autofocus")
	}
	el.SetAttr("autofocus", "")
}

// Focused returns the element holding focus, or nil.
func (d *Document) Focused() *Element {
	return d.QueryFirst(autofocused)
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
