// @title Petclinic API
// @version 1.0
// @description Owners, mascotas, visitas, veterinarios y catálogos de la clínica.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"petclinic-api/internal/adapters/auth/jwtauth"
	"petclinic-api/internal/adapters/auth/remote"
	"petclinic-api/internal/adapters/storage/sqlstore"
	"petclinic-api/internal/config"
	"petclinic-api/internal/domain/clinic"
	"petclinic-api/internal/platform/logger"
	"petclinic-api/internal/platform/metrics"
	"petclinic-api/internal/ports/auth"
	"petclinic-api/internal/router"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "petclinic-api",
		Short: "Petclinic REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(schemaCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// tokenCmd firma un bearer token con JWT_SIGNING_KEY; útil para probar en local.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed JWT for the given roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("sub")
			roles, _ := cmd.Flags().GetStringSlice("roles")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			iss, err := jwtauth.NewIssuer(jwtConfig(cfg))
			if err != nil {
				return err
			}
			tok, err := iss.Issue(subject, roles, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().String("sub", "admin", "Token subject")
	cmd.Flags().StringSlice("roles", []string{auth.RoleOwnerAdmin, auth.RoleVetAdmin, auth.RoleAdmin}, "Roles (comma separated)")
	cmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	return cmd
}

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the SQL schema for a dialect",
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, _ := cmd.Flags().GetString("dialect")
			d := sqlstore.Dialect(strings.ToLower(dialect))
			if d != sqlstore.Postgres && d != sqlstore.SQLite {
				return fmt.Errorf("unknown dialect %q", dialect)
			}
			for _, stmt := range sqlstore.Schema(d) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s;\n\n", strings.TrimSpace(stmt))
			}
			return nil
		},
	}
	cmd.Flags().String("dialect", string(sqlstore.Postgres), "postgres or sqlite")
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:    log,
		Metrics:   metrics.New("petclinic"),
		CacheSize: cfg.CacheSize,
	}
	if opts.Lookup, err = clinic.ParseLookupPolicy(cfg.LookupErrors); err != nil {
		return err
	}
	if opts.Verifier, err = buildVerifier(cfg); err != nil {
		return err
	}

	db, err := openStore(ctx, cfg, &opts)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":      cfg.Addr(),
			"db_driver": cfg.DBDriver,
			"auth_mode": cfg.AuthMode,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore arma el store SQL según DB_DRIVER. Con memory deja opts en nil.
func openStore(ctx context.Context, cfg *config.Config, opts *router.Options) (*sql.DB, error) {
	var (
		db  *sql.DB
		d   sqlstore.Dialect
		err error
	)
	switch cfg.DBDriver {
	case config.DriverPostgres:
		d = sqlstore.Postgres
		db, err = sqlstore.OpenPostgres(cfg.DBDSN, cfg.DBMaxOpenConns)
	case config.DriverSQLite:
		d = sqlstore.SQLite
		db, err = sqlstore.OpenSQLite(cfg.SQLitePath)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := sqlstore.Migrate(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}

	opts.Store = sqlstore.NewStore(db, d)
	opts.Users = sqlstore.NewUserRepo(db, d)
	return db, nil
}

func buildVerifier(cfg *config.Config) (auth.AuthVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthJWT:
		return jwtauth.NewVerifier(jwtConfig(cfg))
	case config.AuthRemote:
		return remote.NewVerifier(remote.Config{
			BaseURL: cfg.AuthRemoteURL,
			APIKey:  cfg.AuthRemoteAPIKey,
		})
	default:
		// modo dev: X-Debug-Roles / X-Debug-User-ID
		return nil, nil
	}
}

func jwtConfig(cfg *config.Config) jwtauth.Config {
	return jwtauth.Config{
		SigningKey: []byte(cfg.JWTSigningKey),
		Issuer:     cfg.JWTIssuer,
		Audience:   cfg.JWTAudience,
	}
}
