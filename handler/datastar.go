package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// PatchOption tunes how a component is patched into the page.
type PatchOption = datastar.PatchElementOption

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchRemove  = datastar.ElementPatchModeRemove
)

// Into patches the element matched by selector instead of the one with the
// component's id.
func Into(selector string) PatchOption { return datastar.WithSelector(selector) }

// Mode sets the patch mode.
func Mode(m datastar.ElementPatchMode) PatchOption { return datastar.WithMode(m) }

// IsDataStar reports whether r was sent by the DataStar client, which marks
// its fetches with a header, asks for an event stream, or puts its signals
// in the query string.
func IsDataStar(r *http.Request) bool {
	switch {
	case r.Header.Get("Datastar-Request") == "true":
		return true
	case strings.Contains(r.Header.Get("Accept"), "text/event-stream"):
		return true
	default:
		return r.URL.Query().Has("datastar")
	}
}

// NewSSE starts an event stream on w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}
