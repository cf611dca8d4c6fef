package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	adapthttp "portfolio/internal/adapter/http"
	"portfolio/internal/adapter/mongodb"
	"portfolio/internal/app"
	"portfolio/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.InsecureSecret() {
		slog.Warn("JWT_SECRET is not set; using an INSECURE development default, do not run this in production")
	}

	ctx := context.Background()

	connector := mongodb.NewConnector(cfg.MongoURI, cfg.MongoDB)
	store, err := connector.Get(ctx)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(shutdownCtx)
	}()

	users := mongodb.NewUserRepo(store)
	projects := mongodb.NewProjectRepo(store)
	contacts := mongodb.NewContactRepo(store)

	authSvc := app.NewAuthService(users, []byte(cfg.JWTSecret), cfg.TokenTTL, cfg.BcryptCost)
	projectSvc := app.NewProjectService(projects)
	contactSvc := app.NewContactService(contacts)

	// Admin provisioning is best-effort and must never block or fail request
	// serving: run it as a supervised detached task.
	if cfg.ProvisioningEnabled() {
		go func() {
			provisionCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := authSvc.EnsureAdminUser(provisionCtx, cfg.AdminEmail, cfg.AdminPass); err != nil {
				slog.Warn("could not ensure admin user", "error", err)
				return
			}
			slog.Info("admin user provisioned", "email", cfg.AdminEmail)
		}()
	} else {
		slog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin provisioning")
	}

	var sso *adapthttp.SSOConfig
	if cfg.SSOEnabled() {
		sso, err = adapthttp.LoadSSO(ctx, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			slog.Warn("sso disabled: provider discovery failed", "issuer", cfg.OIDCIssuer, "error", err)
			sso = nil
		}
	}

	h := adapthttp.New(authSvc, projectSvc, contactSvc, cfg.WebDir, cfg.CORSOrigin, sso).Handler()
	slog.Info("listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
