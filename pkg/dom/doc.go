// Package dom provides a small, mutable view over a parsed HTML document.
//
// It exists so that page behavior normally driven by browser scripts
// (marking fields invalid, writing error text, moving focus) can run on the
// server against the same markup. Documents are parsed with
// golang.org/x/net/html and queried with CSS selectors through
// github.com/andybalholm/cascadia. Query results are always returned in
// document order.
//
// # Usage
//
//	doc, err := dom.ParseString(page)
//	if err != nil {
//		return err
//	}
//	if input := doc.ByID("email"); input != nil {
//		input.SetAttr("aria-invalid", "true")
//	}
//	first := doc.QueryFirst(`[aria-invalid="true"]`)
//	doc.Focus(first)
//	_ = doc.Render(w)
//
// A Document is not safe for concurrent use. Parse a fresh document per
// request instead of sharing one.
package dom
