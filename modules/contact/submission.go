package contact

// Submission is the contact form as posted by the browser.
// An unchecked checkbox is absent from the body, so Acepto is "" then.
type Submission struct {
	Nombre   string `form:"nombre" json:"nombre"`
	Email    string `form:"email" json:"email"`
	Telefono string `form:"telefono" json:"telefono"`
	Asunto   string `form:"asunto" json:"asunto"`
	Mensaje  string `form:"mensaje" json:"mensaje"`
	Acepto   string `form:"acepto" json:"acepto"`
}

// Accepted reports whether the consent checkbox was checked.
func (s Submission) Accepted() bool { return s.Acepto != "" }

func (s Submission) value(id string) string {
	switch id {
	case FieldNombre:
		return s.Nombre
	case FieldEmail:
		return s.Email
	case FieldTelefono:
		return s.Telefono
	case FieldAsunto:
		return s.Asunto
	case FieldMensaje:
		return s.Mensaje
	case FieldAcepto:
		return s.Acepto
	}
	return ""
}

// FieldRequest is a live validation request for a single field. Datastar
// posts the whole form, so the submission carries the field's value.
type FieldRequest struct {
	Field string `path:"field" form:"-" json:"-"`
	Submission
}

// Value returns the posted value of the requested field.
func (r FieldRequest) Value() string { return r.Submission.value(r.Field) }
