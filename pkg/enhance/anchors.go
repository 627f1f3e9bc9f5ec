package enhance

import "github.com/vivircondiabetes/sitio/pkg/dom"

const (
	// MainID is the id of the main landmark targeted by the skip link.
	MainID = "contenido"

	// ScrollMarginTop keeps anchor targets clear of the sticky header.
	ScrollMarginTop = "calc(var(--header-h, 72px) + 12px)"
)

var (
	anchorSelector   = dom.MustCompile(`section[id], h2[id], h3[id], main[id="contenido"]`)
	skipLinkSelector = dom.MustCompile(`.skip-link`)
)

// ScrollMargin sets scroll-margin-top on every anchor target so in-page
// links do not land under the header.
func ScrollMargin() Enhancer {
	return EnhancerFunc(func(doc *dom.Document) {
		for _, el := range doc.QueryAll(anchorSelector) {
			setStyle(el, "scroll-margin-top", ScrollMarginTop)
		}
	})
}

// SkipLink makes the main landmark focusable when the page has a skip
// link, so following the link moves keyboard focus and not just the
// viewport. Pages missing either element are left alone.
func SkipLink() Enhancer {
	return EnhancerFunc(func(doc *dom.Document) {
		if doc.QueryFirst(skipLinkSelector) == nil {
			return
		}
		main := doc.ByID(MainID)
		if main == nil || main.HasAttr("tabindex") {
			return
		}
		main.SetAttr("tabindex", "-1")
	})
}
