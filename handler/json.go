package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vivircondiabetes/sitio/pkg/binder"
	"github.com/vivircondiabetes/sitio/pkg/validator"
)

// Envelope is the body of every JSON answer.
type Envelope struct {
	Data  any      `json:"data,omitempty"`
	Error *Problem `json:"error,omitempty"`
}

// Problem describes a failed JSON request.
type Problem struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Fields  map[string][]string `json:"details,omitempty"`
}

// WantsJSON reports whether the client asked for a JSON answer.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// JSON answers with v under "data", or under "error" when v is an error.
// Errors pick their own status: 422 for validation errors, the code of an
// HTTPError, 400 for binding errors, 500 otherwise.
func JSON(v any) Response {
	if err, ok := v.(error); ok {
		status, p := problemFor(err)
		return JSONWithStatus(status, Envelope{Error: p})
	}
	return JSONWithStatus(http.StatusOK, Envelope{Data: v})
}

// JSONWithStatus answers with body as is and the given status.
func JSONWithStatus(status int, body Envelope) Response {
	return ResponseFunc(func(w http.ResponseWriter, _ *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(body)
	})
}

func problemFor(err error) (int, *Problem) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, &Problem{
			Code:    "validation_error",
			Message: err.Error(),
			Fields:  verrs.Map(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &Problem{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}
	if binder.IsBindingError(err) {
		return http.StatusBadRequest, &Problem{Code: "bad_request", Message: err.Error()}
	}
	return http.StatusInternalServerError, &Problem{Code: "internal_error", Message: err.Error()}
}
