package contact

import (
	"time"

	"github.com/vivircondiabetes/sitio/pkg/ratelimiter"
)

// Config configures the contact service.
type Config struct {
	// Page is the page template holding the contact form.
	Page string `env:"CONTACT_PAGE" envDefault:"contacto"`

	// Endpoint is the external form-processing URL valid submissions are
	// forwarded to. Overrides the form's data-endpoint attribute.
	Endpoint string `env:"CONTACT_ENDPOINT"`

	// ThanksPath is where visitors land when no endpoint is configured.
	ThanksPath string `env:"CONTACT_THANKS_PATH" envDefault:"/gracias"`

	RateCapacity int           `env:"CONTACT_RATE_CAPACITY" envDefault:"5"`
	RateRefill   int           `env:"CONTACT_RATE_REFILL" envDefault:"1"`
	RateInterval time.Duration `env:"CONTACT_RATE_INTERVAL" envDefault:"1m"`
}

// RateLimit returns the token bucket settings for submissions.
func (c Config) RateLimit() ratelimiter.Config {
	return ratelimiter.Config{
		Capacity:       c.RateCapacity,
		RefillRate:     c.RateRefill,
		RefillInterval: c.RateInterval,
	}
}
