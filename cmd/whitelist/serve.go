package whitelist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mar-cial/whitelist/web"
)

func buildServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the whitelist web UI",
		Long:  ``,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = lggr.Sync() }()

			session, cfg, err := buildSession(*envFile, lggr)
			if err != nil {
				return err
			}
			defer session.Close()

			handler := web.NewHandler(session, lggr)
			srv := web.NewServer(cfg.ListenAddr, web.NewRouter(handler))

			lggr.Infow("starting whitelist client",
				"addr", cfg.ListenAddr,
				"contract", cfg.ContractAddress,
				"session", session.ID(),
			)

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("graceful shutdown: %w", err)
			}

			lggr.Infow("server stopped")

			return nil
		},
	}
}
