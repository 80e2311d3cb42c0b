// Package services contains the application services behind the CLI:
// authentication and session lifecycle, damage reports, and the public
// catalog of ministry resources.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jdisla/medioambiente-cli/internal/api"
	"github.com/jdisla/medioambiente-cli/internal/logging"
	"github.com/jdisla/medioambiente-cli/internal/models"
	"github.com/jdisla/medioambiente-cli/internal/session"
	"github.com/jdisla/medioambiente-cli/internal/store"
)

// AuthService establishes and ends sessions.
//
// Contract:
//   - Rehydrate: reconstruct the session from the credential store; must
//     complete before any other operation is offered to the user.
//   - Login / Register: authenticate against the API, persist the session
//     record, then publish the session. The session and the store are left
//     untouched on any failure, including a persistence failure.
//   - Logout: clear the session and the store; idempotent, no network.
type AuthService interface {
	Rehydrate(ctx context.Context) error
	Login(ctx context.Context, correo, password string) (models.User, error)
	Register(ctx context.Context, reg api.Registro) (models.User, error)
	Logout(ctx context.Context) error
}

// authAPI is the slice of the API client used by the auth service.
type authAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResult, error)
	Register(ctx context.Context, reg api.Registro) (*api.AuthResult, error)
}

var _ authAPI = (*api.Client)(nil)

type authService struct {
	api     authAPI
	store   store.Repository
	session *session.Session
	log     logging.Logger
}

func NewAuthService(api authAPI, st store.Repository, sess *session.Session, log logging.Logger) AuthService {
	return &authService{api: api, store: st, session: sess, log: log}
}

// Rehydrate reads the persisted session record and publishes the resulting
// state. The session becomes Authenticated only when both entries are
// present and the profile blob decodes into a usable User; everything else,
// a token without a profile or a store read error included, lands in
// Anonymous. It never leaves the session in the initializing state.
func (a *authService) Rehydrate(ctx context.Context) error {
	token, err := a.store.Get(ctx, store.KeyToken)
	if err != nil {
		a.log.Warn(ctx, "discarding stored session", "err", err)
		a.session.SetAnonymous()
		return nil
	}
	userRaw, err := a.store.Get(ctx, store.KeyUser)
	if err != nil {
		a.log.Warn(ctx, "discarding stored session", "err", err)
		a.session.SetAnonymous()
		return nil
	}

	if token == nil || userRaw == nil {
		if token != nil || userRaw != nil {
			a.log.Warn(ctx, "discarding partial session record")
		}
		a.session.SetAnonymous()
		return nil
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil || user.ID == "" {
		a.log.Warn(ctx, "discarding corrupted session record", "err", err)
		a.session.SetAnonymous()
		return nil
	}

	a.session.SetAuthenticated(user, string(token))
	a.log.Info(ctx, "session rehydrated", "correo", user.Correo)
	return nil
}

// Login authenticates with POST /auth/login. The caller is responsible for
// trimming and validating the inputs; the service sends them as-is.
func (a *authService) Login(ctx context.Context, correo, password string) (models.User, error) {
	res, err := a.api.Login(ctx, api.Credentials{Correo: correo, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	user, err := a.persistSession(ctx, res)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	a.log.Info(ctx, "logged in", "correo", user.Correo)
	return user, nil
}

// Register creates an account and, like the portal app, logs straight in
// with the token the API returns.
func (a *authService) Register(ctx context.Context, reg api.Registro) (models.User, error) {
	res, err := a.api.Register(ctx, reg)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	user, err := a.persistSession(ctx, res)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "registered", "correo", user.Correo)
	return user, nil
}

// persistSession writes both store entries and only then publishes the
// session, so a persistence failure never leaves an in-memory session that
// would silently vanish on restart.
func (a *authService) persistSession(ctx context.Context, res *api.AuthResult) (models.User, error) {
	user := models.NewUserFromAPI(res.Usuario)

	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, fmt.Errorf("encode user profile: %w", err)
	}

	if err := a.store.Set(ctx, store.KeyToken, []byte(res.Token)); err != nil {
		return models.User{}, err
	}
	if err := a.store.Set(ctx, store.KeyUser, raw); err != nil {
		return models.User{}, err
	}

	a.session.SetAuthenticated(user, res.Token)
	return user, nil
}

// Logout clears the session and deletes both store entries. Safe to call
// when already anonymous. In-flight requests keep the token they carried.
func (a *authService) Logout(ctx context.Context) error {
	a.session.SetAnonymous()

	return errors.Join(
		a.store.Delete(ctx, store.KeyToken),
		a.store.Delete(ctx, store.KeyUser),
	)
}
