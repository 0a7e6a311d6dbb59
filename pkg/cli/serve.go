package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/octogate/pkg/cli/config"
	"github.com/m-mizutani/octogate/pkg/controller/server"
	"github.com/m-mizutani/octogate/pkg/infra"
	"github.com/m-mizutani/octogate/pkg/usecase"
	"github.com/m-mizutani/octogate/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		debugUserSample int

		database config.Database
		auth     config.Auth
		github   config.GitHub
		bigQuery config.BigQuery
		archive  config.AuditArchive
		sentry   config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("OCTOGATE_ADDR"),
			Destination: &addr,
		},
		&cli.IntFlag{
			Name:        "debug-user-sample",
			Usage:       "Log up to N user rows at debug level when a caller has no stored token (0 disables, never enable in production)",
			Sources:     cli.EnvVars("OCTOGATE_DEBUG_USER_SAMPLE"),
			Destination: &debugUserSample,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			database.Flags(),
			auth.Flags(),
			github.Flags(),
			bigQuery.Flags(),
			archive.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("DebugUserSample", debugUserSample),
				slog.Any("Database", &database),
				slog.Any("Auth", &auth),
				slog.Any("GitHub", &github),
				slog.Any("BigQuery", &bigQuery),
				slog.Any("AuditArchive", &archive),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			userRepo, closeRepo, err := database.NewUserRepository(ctx)
			if err != nil {
				return err
			}
			defer closeRepo()

			ghClient, err := github.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghClient),
				infra.WithUserRepository(userRepo),
			}

			if bqClient, err := bigQuery.NewClient(ctx); err != nil {
				return err
			} else if bqClient != nil {
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			if gcsClient, err := archive.NewClient(ctx); err != nil {
				return err
			} else if gcsClient != nil {
				defer func() {
					if err := gcsClient.Close(); err != nil {
						logging.Default().Warn("failed to close audit archive client", "error", err)
					}
				}()
				infraOptions = append(infraOptions, infra.WithAuditArchive(gcsClient))
			}

			clients := infra.New(infraOptions...)

			uc := usecase.New(clients, usecase.WithUserSample(debugUserSample))
			defer uc.Close()
			s := server.New(uc, auth.ServerOptions()...)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
