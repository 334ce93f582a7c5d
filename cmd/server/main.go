// @title           Project Management API
// @version         1.0.0
// @description     CRUD API for project records. Every response uses the same envelope: success, statusCode, data, clientMessage, devMessage.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /api

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"pms-project-backend/docs"
	"pms-project-backend/internal/bootstrap"
	"pms-project-backend/internal/config"
	"pms-project-backend/internal/database"
	"pms-project-backend/internal/logger"
)

func main() {
	v := config.New()

	root := &cobra.Command{
		Use:           "pms-server",
		Short:         "Project management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), v)
		},
	}
	root.PersistentFlags().String("port", "", "HTTP port (overrides PORT / APP_PORT)")
	_ = v.BindPFlag("port", root.PersistentFlags().Lookup("port"))

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), v)
		},
	})
	root.AddCommand(newMigrateCmd(v))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// setup loads configuration and configures logging; every command starts here.
func setup(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(ctx context.Context, v *viper.Viper) error {
	cfg, err := setup(v)
	if err != nil {
		return err
	}

	bootstrap.SetGinMode(cfg.Server.Environment)

	if cfg.Server.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.Server.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.Database.RunMigrations {
		if err := runMigrations(cfg.Database.MigrateURL(), func(m *database.Migrator) error {
			return m.Up()
		}); err != nil {
			return err
		}
		logrus.Info("Migrations completed successfully")
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := database.NewProjectRepository(db)
	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Projects:           repo,
		DB:                 repo,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		EnableSwagger:      !cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server is running on port %s", cfg.Server.Port)
		logrus.Infof("Health check: http://localhost:%s/health", cfg.Server.Port)
		logrus.Infof("API endpoint: http://localhost:%s/api", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
