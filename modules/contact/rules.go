package contact

import "github.com/vivircondiabetes/sitio/pkg/validator"

// Element ids the validator looks up.
const (
	FormID   = "contact-form"
	StatusID = "form-status"

	FieldNombre   = "nombre"
	FieldEmail    = "email"
	FieldTelefono = "telefono"
	FieldAsunto   = "asunto"
	FieldMensaje  = "mensaje"
	FieldAcepto   = "acepto"

	errorPrefix = "error-"
)

// Messages shown to visitors.
const (
	MsgNombre   = "Ingresá al menos 2 caracteres."
	MsgEmail    = "Ingresá un correo válido."
	MsgTelefono = "Usá solo números, espacios, +, -, ()."
	MsgAsunto   = "Elegí un asunto."
	MsgMensaje  = "Contanos un poco más (mínimo 10 caracteres)."
	MsgAcepto   = "Debés aceptar para continuar."

	StatusInvalid    = "Revisá los campos marcados en rojo."
	StatusSubmitting = "Enviando..."
)

// FieldOrder is the order fields are validated in on submit.
var FieldOrder = []string{
	FieldNombre,
	FieldEmail,
	FieldTelefono,
	FieldAsunto,
	FieldMensaje,
	FieldAcepto,
}

type ruleFunc func(f *Field) validator.Rule

var rules = map[string]ruleFunc{
	FieldNombre: func(f *Field) validator.Rule {
		return validator.MinLenTrimmed(FieldNombre, f.Value(), 2).WithMessage(MsgNombre)
	},
	FieldEmail: func(f *Field) validator.Rule {
		return validator.Email(FieldEmail, f.Value()).WithMessage(MsgEmail)
	},
	FieldTelefono: func(f *Field) validator.Rule {
		return validator.Optional(f.Value(), validator.Phone(FieldTelefono, f.Value())).WithMessage(MsgTelefono)
	},
	// The selection is not trimmed: any non-empty option value counts.
	FieldAsunto: func(f *Field) validator.Rule {
		return validator.NotZero(FieldAsunto, f.Value()).WithMessage(MsgAsunto)
	},
	FieldMensaje: func(f *Field) validator.Rule {
		return validator.MinLenTrimmed(FieldMensaje, f.Value(), 10).WithMessage(MsgMensaje)
	},
	FieldAcepto: func(f *Field) validator.Rule {
		return validator.Accepted(FieldAcepto, f.Checked()).WithMessage(MsgAcepto)
	},
}

// IsField reports whether id names a validated contact field.
func IsField(id string) bool {
	_, ok := rules[id]
	return ok
}
