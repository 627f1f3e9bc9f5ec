package site

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/vivircondiabetes/sitio/handler"
	"github.com/vivircondiabetes/sitio/pkg/environment"
)

// errorTitles are the visitor-facing titles of the error page.
var errorTitles = map[int]string{
	http.StatusBadRequest:          "No pudimos entender el pedido",
	http.StatusNotFound:            "No encontramos esta página",
	http.StatusUnprocessableEntity: "Revisá los datos enviados",
	http.StatusTooManyRequests:     "Demasiados envíos seguidos",
}

func errorTitle(code int) string {
	if title, ok := errorTitles[code]; ok {
		return title
	}
	return "Algo salió mal"
}

// ErrorPage renders the full error page.
func ErrorPage(p handler.PageError) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%[1]s | Vivir con Diabetes</title><link rel="stylesheet" href="/static/css/site.css"></head>
<body>
<a class="skip-link" href="#contenido">Saltar al contenido</a>
<main id="contenido" tabindex="-1">
<h1>%[1]s</h1>
<p>Código %[2]d.</p>
<p><a href="%[3]s">Intentar de nuevo</a> o <a href="/">volver al inicio</a>.</p>
%[4]s%[5]s
</main>
</body>
</html>`,
			templ.EscapeString(errorTitle(p.StatusCode)),
			p.StatusCode,
			templ.EscapeString(p.RetryURL),
			requestIDNote(p.RequestID),
			detailNote(ctx, p.Error),
		)
		return err
	})
}

func requestIDNote(id string) string {
	if id == "" {
		return ""
	}
	return `<p class="request-id">Referencia: <code>` + templ.EscapeString(id) + `</code></p>`
}

// detailNote shows the raw error outside production.
func detailNote(ctx context.Context, detail string) string {
	if detail == "" || environment.FromContext(ctx).IsProduction() {
		return ""
	}
	return `<pre class="error-detail">` + templ.EscapeString(detail) + `</pre>`
}

// ErrorToast renders the notice patched into the form status region on
// Datastar requests.
func ErrorToast(p handler.Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		msg := p.Message
		switch p.Severity {
		case "warning":
			msg = "No pudimos procesar el envío. Probá de nuevo en unos minutos."
		case "error":
			msg = "Ocurrió un error. Probá de nuevo más tarde."
		}
		_, err := io.WriteString(w, templ.EscapeString(msg))
		return err
	})
}
