package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector group.
type Selector struct {
	raw string
	sel cascadia.Selector
}

// Compile parses a CSS selector group such as "section[id], h2[id]".
func Compile(selector string) (Selector, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return Selector{}, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}
	return Selector{raw: selector, sel: sel}, nil
}

// MustCompile is like Compile but panics on invalid input.
// Intended for package-level selector variables.
func MustCompile(selector string) Selector {
	s, err := Compile(selector)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the selector source.
func (s Selector) String() string {
	return s.raw
}

func (s Selector) first(n *html.Node) *html.Node {
	if s.sel == nil || n == nil {
		return nil
	}
	return s.sel.MatchFirst(n)
}

func (s Selector) all(n *html.Node) []*html.Node {
	if s.sel == nil || n == nil {
		return nil
	}
	return s.sel.MatchAll(n)
}
