package contact

import (
	"fmt"

	"github.com/vivircondiabetes/sitio/pkg/dom"
	"github.com/vivircondiabetes/sitio/pkg/validator"
)

var invalidSelector = dom.MustCompile(`[aria-invalid="true"]`)

// Validator validates the contact form of one document.
// It is not safe for concurrent use; build one per request.
type Validator struct {
	doc    *dom.Document
	form   *dom.Element
	status *dom.Element
	fields []*Field
	byID   map[string]*Field
}

// New looks up the contact form and its fields in doc.
// Fields missing from the page are skipped.
func New(doc *dom.Document) (*Validator, error) {
	form := doc.ByID(FormID)
	if form == nil {
		return nil, ErrFormNotFound
	}

	v := &Validator{
		doc:    doc,
		form:   form,
		status: doc.ByID(StatusID),
		byID:   make(map[string]*Field, len(FieldOrder)),
	}

	for _, id := range FieldOrder {
		el := doc.ByID(id)
		if el == nil {
			continue
		}
		f := &Field{
			id:    id,
			el:    el,
			errEl: doc.ByID(errorPrefix + id),
			rule:  rules[id],
		}
		v.fields = append(v.fields, f)
		v.byID[id] = f
	}

	return v, nil
}

// Document returns the document the validator mutates.
func (v *Validator) Document() *dom.Document { return v.doc }

// Form returns the #contact-form element.
func (v *Validator) Form() *dom.Element { return v.form }

// Status returns the status region, nil if the page has none.
func (v *Validator) Status() *dom.Element { return v.status }

// Field returns the field with the given id, nil if the page lacks it.
func (v *Validator) Field(id string) *Field { return v.byID[id] }

// Fields returns the fields present on the page in validation order.
func (v *Validator) Fields() []*Field { return v.fields }

// Endpoint returns the external form-processing URL declared on the form
// as data-endpoint, or "" when the page declares none.
func (v *Validator) Endpoint() string {
	ep, _ := v.form.Attr("data-endpoint")
	return ep
}

// ValidateField evaluates one field and updates its marker and message.
// Fields missing from the page pass.
func (v *Validator) ValidateField(id string) (bool, error) {
	if !IsField(id) {
		return false, fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	f := v.byID[id]
	if f == nil {
		return true, nil
	}
	return f.validate(), nil
}

// ValidateAll evaluates every field in FieldOrder, without stopping at the
// first failure, and reports whether all passed.
func (v *Validator) ValidateAll() bool {
	ok := true
	for _, f := range v.fields {
		if !f.validate() {
			ok = false
		}
	}
	return ok
}

// Errors returns the current error state of every field as validation errors.
func (v *Validator) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range v.fields {
		if f.Invalid() {
			errs.Add(validator.ValidationError{Field: f.id, Message: f.Message()})
		}
	}
	return errs
}

// Outcome is the result of a submit attempt.
type Outcome struct {
	// Prevented is true when the native submission must not happen.
	Prevented bool
	// Status is the text written to the status region.
	Status string
	// Focus is the id of the element that received focus, if any.
	Focus string
	// Errors holds the failing fields in validation order.
	Errors validator.ValidationErrors
}

// Submit runs the submit handler: every field is validated; on failure the
// submission is prevented, the status region announces it and focus moves
// to the first element marked invalid in document order.
func (v *Validator) Submit() Outcome {
	if v.ValidateAll() {
		v.setStatus(StatusSubmitting)
		return Outcome{Status: StatusSubmitting}
	}

	out := Outcome{
		Prevented: true,
		Status:    StatusInvalid,
		Errors:    v.Errors(),
	}
	v.setStatus(StatusInvalid)

	if first := v.doc.QueryFirst(invalidSelector); first != nil {
		v.doc.Focus(first)
		out.Focus = first.ID()
	}

	return out
}

func (v *Validator) setStatus(msg string) {
	if v.status != nil {
		v.status.SetText(msg)
	}
}

// Bind copies a submission into the form controls.
func (v *Validator) Bind(s Submission) {
	for _, f := range v.fields {
		if f.id == FieldAcepto {
			f.el.SetChecked(s.Accepted())
			continue
		}
		f.el.SetValue(s.value(f.id))
	}
}

// SetField sets one control from a raw value. For the checkbox any
// non-empty value checks it.
func (v *Validator) SetField(id, value string) error {
	if !IsField(id) {
		return fmt.Errorf("%w: %q", ErrUnknownField, id)
	}
	f := v.byID[id]
	if f == nil {
		return nil
	}
	if id == FieldAcepto {
		f.el.SetChecked(value != "")
		return nil
	}
	f.el.SetValue(value)
	return nil
}
