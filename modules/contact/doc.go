// Package contact validates the site's contact form and serves it.
//
// A Validator is constructed against a parsed page (dom.Document). It looks
// up the form, its fields, their error elements and the status region once,
// by id. Validation mutates the document the same way the page's own script
// does in the browser: failing fields get aria-invalid="true" and a message
// in their error-<id> element, passing fields have both cleared.
//
//	doc, _ := dom.Parse(page)
//	v, err := contact.New(doc)
//	if err != nil {
//		// no contact form on this page
//	}
//	v.Bind(submission)
//	out := v.Submit()
//	if out.Prevented {
//		// re-render doc: errors, status text and autofocus are set
//	}
//
// Service mounts the HTTP side: the contact page, the submit endpoint and
// per-field live validation for Datastar.
package contact
