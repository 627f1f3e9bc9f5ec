// Package enhance applies the site's accessibility touches to a page
// before it is served, so they hold without JavaScript.
//
// Every enhancer is idempotent and silently skips pages that lack the
// elements it works on.
package enhance

import (
	"strings"

	"github.com/vivircondiabetes/sitio/pkg/dom"
)

// Enhancer mutates a document in place.
type Enhancer interface {
	Enhance(doc *dom.Document)
}

// EnhancerFunc adapts a function to Enhancer.
type EnhancerFunc func(doc *dom.Document)

// Enhance calls f(doc).
func (f EnhancerFunc) Enhance(doc *dom.Document) { f(doc) }

// Apply runs enhancers in order. Nil enhancers are skipped.
func Apply(doc *dom.Document, enhancers ...Enhancer) {
	if doc == nil {
		return
	}
	for _, e := range enhancers {
		if e != nil {
			e.Enhance(doc)
		}
	}
}

// Default returns the enhancers every page gets.
func Default() []Enhancer {
	return []Enhancer{
		RootVars(),
		ScrollMargin(),
		SkipLink(),
	}
}

// declares reports whether an inline style already sets property.
func declares(style, property string) bool {
	for _, decl := range strings.Split(style, ";") {
		name, _, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), property) {
			return true
		}
	}
	return false
}

// appendDeclaration adds "property: value" to an inline style.
func appendDeclaration(style, property, value string) string {
	style = strings.TrimRight(strings.TrimSpace(style), "; ")
	decl := property + ": " + value
	if style == "" {
		return decl
	}
	return style + "; " + decl
}

// setStyle appends the declaration unless the element already sets property.
func setStyle(el *dom.Element, property, value string) {
	style, _ := el.Attr("style")
	if declares(style, property) {
		return
	}
	el.SetAttr("style", appendDeclaration(style, property, value))
}
