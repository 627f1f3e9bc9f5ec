package commands

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vivircondiabetes/sitio/modules/contact"
	"github.com/vivircondiabetes/sitio/pkg/environment"
	"github.com/vivircondiabetes/sitio/pkg/httpserver"
	"github.com/vivircondiabetes/sitio/pkg/redis"
	"github.com/vivircondiabetes/sitio/web"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name     string                  `env:"APP_NAME" envDefault:"sitio"`
	LogLevel string                  `env:"LOG_LEVEL"`

	HTTP httpserver.Config
	// TrustedIPHeaders lists the proxy headers that carry the visitor IP.
	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","`

	Site    SiteConfig
	Contact contact.Config
	Redis   redis.Config
}

// SiteConfig picks where pages come from.
type SiteConfig struct {
	// Dir serves pages from disk instead of the embedded copy. Assets are
	// read from Dir/static.
	Dir string `env:"SITE_DIR"`
	// Watch reloads pages from Dir when they change.
	Watch bool `env:"SITE_WATCH"`
	// CacheSize bounds the page sources kept in memory.
	CacheSize int `env:"SITE_CACHE_SIZE" envDefault:"64"`
}

// files returns the page and asset file systems.
func (c SiteConfig) files() (pagesFS, staticFS fs.FS) {
	if c.Dir == "" {
		return web.Pages(), web.Static()
	}
	return os.DirFS(c.Dir), os.DirFS(filepath.Join(c.Dir, "static"))
}
