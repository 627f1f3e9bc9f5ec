package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// HTMLRenderer is anything that writes itself as markup, like a dom.Element.
type HTMLRenderer interface {
	Render(w io.Writer) error
}

// Fragment turns n into a templ component.
func Fragment(n HTMLRenderer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Patch is one component and the options used to patch it.
type Patch struct {
	Component templ.Component
	Options   []PatchOption
}

func writeHTML(w http.ResponseWriter, r *http.Request, components ...templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, c := range components {
		if err := c.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

func streamPatches(w http.ResponseWriter, r *http.Request, patches ...Patch) error {
	sse := datastar.NewSSE(w, r)
	for _, p := range patches {
		if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

// HTML renders c as a document, or as a single patch for DataStar.
func HTML(c templ.Component, opts ...PatchOption) Response {
	return Partial(c, c, opts...)
}

// Partial patches partial for DataStar and renders full for everyone else.
//
//	return handler.Partial(handler.Fragment(form), handler.Fragment(doc))
func Partial(partial, full templ.Component, opts ...PatchOption) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return streamPatches(w, r, Patch{Component: partial, Options: opts})
		}
		return writeHTML(w, r, full)
	})
}

// Patches sends one event per patch to DataStar. Plain requests get the
// components concatenated in order.
func Patches(patches ...Patch) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return streamPatches(w, r, patches...)
		}
		components := make([]templ.Component, len(patches))
		for i, p := range patches {
			components[i] = p.Component
		}
		return writeHTML(w, r, components...)
	})
}

// Redirect sends the browser to url with 303 See Other.
func Redirect(url string) Response {
	return RedirectWithCode(url, http.StatusSeeOther)
}

// RedirectWithCode redirects with code. 307 and 308 keep the method and
// body. DataStar clients are told to navigate instead.
func RedirectWithCode(url string, code int) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).Redirect(url)
		}
		http.Redirect(w, r, url, code)
		return nil
	})
}

// WithStatus renders next with code in place of 200. Event streams keep
// 200 or the client drops the patches.
//
//	return handler.WithStatus(http.StatusUnprocessableEntity, handler.HTML(page))
func WithStatus(code int, next Response) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return next.Render(w, r)
		}
		return next.Render(&statusWriter{ResponseWriter: w, code: code}, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	code    int
	started bool
}

func (w *statusWriter) WriteHeader(code int) {
	if w.started {
		return
	}
	w.started = true
	if code == http.StatusOK {
		code = w.code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	return w.ResponseWriter.Write(b)
}
