package contact

import "github.com/vivircondiabetes/sitio/pkg/dom"

const ariaInvalid = "aria-invalid"

// Field is one form control and its error element.
type Field struct {
	id    string
	el    *dom.Element
	errEl *dom.Element
	rule  ruleFunc
	msg   string
}

// ID returns the control id.
func (f *Field) ID() string { return f.id }

// Element returns the form control.
func (f *Field) Element() *dom.Element { return f.el }

// ErrorElement returns the error-<id> element, nil if the page has none.
func (f *Field) ErrorElement() *dom.Element { return f.errEl }

// Value returns the control's current value.
func (f *Field) Value() string { return f.el.Value() }

// Checked reports whether a checkbox control is checked.
func (f *Field) Checked() bool { return f.el.Checked() }

// Invalid reports whether the control is marked aria-invalid="true".
func (f *Field) Invalid() bool {
	v, _ := f.el.Attr(ariaInvalid)
	return v == "true"
}

// Message returns the error from the last validation, "" if it passed.
func (f *Field) Message() string { return f.msg }

// validate evaluates the field rule and syncs the marker and message with it.
func (f *Field) validate() bool {
	r := f.rule(f)
	if r.Check() {
		f.clearError()
		return true
	}
	f.setError(r.Message)
	return false
}

func (f *Field) setError(msg string) {
	f.msg = msg
	f.el.SetAttr(ariaInvalid, "true")
	if f.errEl != nil {
		f.errEl.SetText(msg)
	}
}

func (f *Field) clearError() {
	f.msg = ""
	f.el.RemoveAttr(ariaInvalid)
	if f.errEl != nil {
		f.errEl.SetText("")
	}
}
