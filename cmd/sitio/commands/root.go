package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vivircondiabetes/sitio/pkg/config"
	"github.com/vivircondiabetes/sitio/pkg/enhance"
	"github.com/vivircondiabetes/sitio/pkg/logger"
	"github.com/vivircondiabetes/sitio/pkg/pages"
	"github.com/vivircondiabetes/sitio/pkg/requestid"
)

type app struct {
	envFiles []string
	cfg      Config
	log      *slog.Logger
}

// Execute runs the sitio command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "sitio",
		Short:        "Vivir con Diabetes site server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg, config.WithEnvFiles(a.envFiles...)); err != nil {
				return err
			}
			a.log = logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithEnvironment(a.cfg.Env, a.cfg.Name),
				logger.WithLevelName(a.cfg.LogLevel),
				logger.WithContextExtractors(requestid.LoggerExtractor()),
			)
			slog.SetDefault(a.log)
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load (default .env if present)")

	root.AddCommand(a.serveCmd(), a.buildCmd(), a.checkCmd())
	return root
}

// store opens the page store every command shares.
func (a *app) store() *pages.Store {
	pagesFS, _ := a.cfg.Site.files()
	return pages.New(pagesFS,
		pages.WithEnhancers(enhance.Default()...),
		pages.WithCacheSize(a.cfg.Site.CacheSize),
		pages.WithLogger(a.log),
	)
}
