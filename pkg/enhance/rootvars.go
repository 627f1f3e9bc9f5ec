package enhance

import "github.com/vivircondiabetes/sitio/pkg/dom"

// Root custom properties and their values before any script measures them.
const (
	HeroScaleVar     = "--hero-scale"
	HeroScaleDefault = "1"

	HeaderHeightVar     = "--header-h"
	HeaderHeightDefault = "72px"
)

var rootSelector = dom.MustCompile("html")

// RootVars declares --hero-scale and --header-h on <html> with their
// default values. The browser script overwrites them with measurements;
// declarations already present in the markup are kept.
func RootVars() Enhancer {
	return EnhancerFunc(func(doc *dom.Document) {
		root := doc.QueryFirst(rootSelector)
		if root == nil {
			return
		}
		setStyle(root, HeroScaleVar, HeroScaleDefault)
		setStyle(root, HeaderHeightVar, HeaderHeightDefault)
	})
}
