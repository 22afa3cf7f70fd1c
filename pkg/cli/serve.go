package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/migration-world/tabmigrate/pkg/cli/config"
	controller "github.com/migration-world/tabmigrate/pkg/controller/http"
	"github.com/migration-world/tabmigrate/pkg/controller/ui"
	"github.com/migration-world/tabmigrate/pkg/service/tableau"
	"github.com/migration-world/tabmigrate/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		tableauCfg config.Tableau
	)

	flags := joinFlags(
		serverCfg.Flags(),
		tableauCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := tableauCfg.Load(); err != nil {
				return err
			}

			logger.Info("Starting tabmigrate server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("tableau", tableauCfg),
			)

			// Create REST client and use cases
			client := tableau.New()
			exportUC := usecase.NewExport(client)
			importUC := usecase.NewImport(client)
			convertUC := usecase.NewConvert()
			transferUC := usecase.NewTransfer(client)

			uiHandler := ui.NewHandler(exportUC, importUC, convertUC, transferUC, ui.ConnectionDefaults{
				ServerURL: tableauCfg.ServerURL,
				SiteURL:   tableauCfg.SiteURL,
				TokenName: tableauCfg.TokenName,
			})

			server := controller.NewServer(ctx, serverCfg.Addr, uiHandler)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
