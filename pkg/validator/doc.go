// Package validator builds field checks out of small Rule values.
//
//	err := validator.Apply(
//		validator.MinLenTrimmed("nombre", name, 2),
//		validator.Email("email", email),
//		validator.Optional(phone, validator.Phone("telefono", phone)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		msgs := verrs.Get("email")
//	}
//
// Default messages are English. Pages that show them to visitors swap them
// with Rule.WithMessage. Lengths count runes, not bytes.
package validator
