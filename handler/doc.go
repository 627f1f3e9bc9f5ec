// Package handler turns typed functions into http.HandlerFunc values for the
// site's dynamic routes.
//
// A handler receives a Context and a request value filled in by binders, and
// returns a Response:
//
//	func submit(ctx handler.Context, req contact.Submission) handler.Response {
//		return handler.Redirect("/gracias")
//	}
//
//	r.Post("/contacto", handler.Wrap(submit,
//		handler.WithBinders[contact.Submission](binder.Form()),
//	))
//
// Every response knows two audiences. DataStar requests get Server-Sent
// Event patches, browsers without JavaScript get whole documents and real
// redirects.
//
// Failures from binding or rendering go to an ErrorHandler. NewErrorHandler
// logs them with the request id and answers with an error page or a notice
// patched into the page.
package handler
