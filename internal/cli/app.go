// Package cli implements the interactive authcli commands over the
// authentication core.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avolkov/userauth/internal/common"
	"github.com/avolkov/userauth/internal/config"
	"github.com/avolkov/userauth/internal/logging"
	"github.com/avolkov/userauth/internal/storage"
	"github.com/avolkov/userauth/internal/userauth"
)

// App wires the storage manager and the orchestrator for one CLI run.
type App struct {
	cfg   *config.Config
	store *storage.Postgres
	svc   *userauth.Service
	in    *bufio.Reader
}

// NewApp opens the database, runs migrations, and constructs the core.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabaseDSN, cfg.MaxOpenConns)
	if err != nil {
		return nil, err
	}

	svc, err := userauth.New(store.DB(), userauth.Config{
		Secret:        cfg.Secret,
		Tables:        userauth.Tables{Users: cfg.UsersTable, Sessions: cfg.SessionsTable},
		UserFields:    userauth.UserFields{ID: cfg.UserIDField, Login: cfg.UserLoginField, Password: cfg.UserPasswordField},
		SessionFields: userauth.SessionFields{ID: cfg.SessionIDField, User: cfg.SessionUserField},
		BcryptCost:    cfg.BcryptCost,
		TokenTTL:      cfg.TokenTTL,
		Logger:        logging.NewDefault(),
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{cfg: cfg, store: store, svc: svc, in: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}

// Run dispatches one command.
func (a *App) Run(ctx context.Context, command string) error {
	switch command {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "verify":
		return a.verify(ctx)
	case "renew":
		return a.renew(ctx)
	case "logout":
		return a.logout(ctx)
	case "ping":
		return a.ping(ctx)
	default:
		return fmt.Errorf("unknown command %q (expected register, login, verify, renew, logout, or ping)", command)
	}
}

func (a *App) register(ctx context.Context) error {
	email, err := getSimpleText(a.in, "-Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword()
	if err != nil {
		return err
	}

	loginField := a.cfg.UserLoginField
	if loginField == "" {
		loginField = userauth.DefaultUserLoginField
	}
	passwordField := a.cfg.UserPasswordField
	if passwordField == "" {
		passwordField = userauth.DefaultUserPasswordField
	}

	id, err := a.svc.Register(ctx, map[string]any{
		loginField:    email,
		passwordField: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered user %s\n", id)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.in, "-Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword()
	if err != nil {
		return err
	}

	token, err := a.svc.Login(ctx, email, string(password))
	if err != nil {
		// The CLI is an end-user surface: do not reveal whether the login
		// or the password was wrong.
		return common.Public(err)
	}

	fmt.Println(token)
	return nil
}

func (a *App) verify(ctx context.Context) error {
	token, err := getSimpleText(a.in, "-Enter token")
	if err != nil {
		return err
	}

	claims, err := a.svc.VerifyToken(ctx, token)
	if err != nil {
		return err
	}

	fmt.Printf("user %s, session %s, issued %s, expires %s\n",
		claims.UserID, claims.SessionID, claims.IssuedAt, claims.ExpiresAt)
	return nil
}

func (a *App) renew(ctx context.Context) error {
	token, err := getSimpleText(a.in, "-Enter token")
	if err != nil {
		return err
	}

	renewed, err := a.svc.RenewToken(ctx, token)
	if err != nil {
		return err
	}

	fmt.Println(renewed)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	token, err := getSimpleText(a.in, "-Enter token")
	if err != nil {
		return err
	}

	a.svc.Logout(ctx, token)
	fmt.Println("logged out")
	return nil
}

func (a *App) ping(ctx context.Context) error {
	if err := a.store.Ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	fmt.Println("ok")
	return nil
}
