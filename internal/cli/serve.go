package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/youruser/imprint/internal/api"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the poster API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			composer := cfg.Composer()
			composer.Logger = logger
			if _, err := os.Stat(cfg.TemplatePath); err != nil {
				// Not fatal: every request reports it until the file appears.
				logger.Warn("poster template not available", "path", cfg.TemplatePath, "err", err)
			}

			r := gin.Default()
			api.RegisterRoutes(r, &api.Handler{
				Composer:       composer,
				FilenamePrefix: cfg.FilenamePrefix,
				Logger:         logger,
			})

			srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Warn("shutdown", "err", err)
				}
			}()

			logger.Info("starting server", "addr", "http://localhost:"+cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
