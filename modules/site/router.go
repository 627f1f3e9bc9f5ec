package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mountable is a service exposing its own routes.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions configures which services the site mounts.
// Each service is optional and only mounted if provided.
type RouterOptions struct {
	// Contact serves /contacto.
	Contact Mountable
	// Pages serves every other page and /static.
	Pages Mountable
}

// Router assembles the site routes.
//
//	r := chi.NewRouter()
//	r.Mount("/", site.Router(site.RouterOptions{
//		Contact: contactSvc,
//		Pages:   siteSvc,
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Contact != nil {
		r.Mount("/contacto", opts.Contact.Handle())
	}
	if opts.Pages != nil {
		r.Mount("/", opts.Pages.Handle())
	}

	return r
}
