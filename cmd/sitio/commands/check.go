package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vivircondiabetes/sitio/modules/contact"
)

// ErrRejected is returned by check when the submission does not validate.
var ErrRejected = errors.New("submission rejected")

func (a *app) checkCmd() *cobra.Command {
	var s contact.Submission
	var accept bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a contact submission against the contact page",
		Example: `  sitio check --nombre Ana --email ana@example.com --asunto consulta \
    --mensaje "Quisiera más información" --acepto`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if accept {
				s.Acepto = "on"
			}

			doc, err := a.store().Document(cmd.Context(), a.cfg.Contact.Page)
			if err != nil {
				return err
			}
			v, err := contact.New(doc)
			if err != nil {
				return err
			}

			v.Bind(s)
			out := v.Submit()

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Status)
			for _, f := range v.Fields() {
				mark := "ok"
				if f.Invalid() {
					mark = f.Message()
				}
				fmt.Fprintf(w, "  %-9s %s\n", f.ID(), mark)
			}
			if out.Prevented {
				fmt.Fprintf(w, "foco: %s\n", out.Focus)
				return ErrRejected
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&s.Nombre, "nombre", "", "name")
	f.StringVar(&s.Email, "email", "", "email address")
	f.StringVar(&s.Telefono, "telefono", "", "phone number")
	f.StringVar(&s.Asunto, "asunto", "", "subject option value")
	f.StringVar(&s.Mensaje, "mensaje", "", "message")
	f.BoolVar(&accept, "acepto", false, "consent checkbox checked")
	return cmd
}
