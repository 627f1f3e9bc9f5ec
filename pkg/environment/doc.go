// Package environment names the deployment environment the process runs in
// and carries it through request contexts.
//
// The value is read from APP_ENV at startup. Environment implements
// encoding.TextUnmarshaler so it can be a config field directly:
//
//	type Config struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// Middleware stores it in every request context, where views read it to
// decide, for instance, whether error details are shown.
package environment
