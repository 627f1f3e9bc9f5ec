package contact

import (
	"fmt"
	"net/http"

	"github.com/vivircondiabetes/sitio/handler"
)

// FieldResult is the JSON answer to a live validation request.
type FieldResult struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func focusScript(id string) string {
	return fmt.Sprintf("document.getElementById(%q)?.focus()", id)
}

// submitScript posts the form straight to location, past this server.
func submitScript(location string) string {
	return fmt.Sprintf("{const f = document.getElementById(%q); f.action = %q; f.submit()}", FormID, location)
}

// rejectedResponse re-renders the form after a prevented submit.
// Plain requests get the whole page with 422, Datastar requests get the
// form morphed in place and focus moved to the first invalid control.
type rejectedResponse struct {
	v   *Validator
	out Outcome
}

func (res rejectedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !handler.IsDataStar(r) {
		page := handler.HTML(handler.Fragment(res.v.Document()))
		return handler.WithStatus(http.StatusUnprocessableEntity, page).Render(w, r)
	}

	sse := handler.NewSSE(w, r)
	if err := sse.PatchElementTempl(handler.Fragment(res.v.Form())); err != nil {
		return err
	}
	if res.out.Focus == "" {
		return nil
	}
	return sse.ExecuteScript(focusScript(res.out.Focus))
}

// forwardResponse lets a valid submission continue to its endpoint.
// Plain requests are redirected. Datastar requests get the status text,
// then a navigation to the thanks page (303) or a native submit of the
// form to the endpoint (307). Neither comes back through /contacto.
type forwardResponse struct {
	v        *Validator
	location string
	code     int
}

func (res forwardResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !handler.IsDataStar(r) {
		return handler.RedirectWithCode(res.location, res.code).Render(w, r)
	}

	sse := handler.NewSSE(w, r)
	if status := res.v.Status(); status != nil {
		if err := sse.PatchElementTempl(handler.Fragment(status)); err != nil {
			return err
		}
	}
	if res.code == http.StatusSeeOther {
		return sse.Redirect(res.location)
	}
	return sse.ExecuteScript(submitScript(res.location))
}
