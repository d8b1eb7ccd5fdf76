package userauth

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/google/uuid"

	"github.com/avolkov/userauth/internal/auth"
	"github.com/avolkov/userauth/internal/common"
	"github.com/avolkov/userauth/internal/dbx"
	"github.com/avolkov/userauth/internal/logging"
	"github.com/avolkov/userauth/internal/repositories/sessions"
	"github.com/avolkov/userauth/internal/repositories/users"
)

// Service is the authentication orchestrator. It coordinates credential
// lookup, password verification, session persistence, and token
// issue/verify/renew. Every operation returns its own result; a Service is
// safe for concurrent use.
type Service struct {
	cfg      Config
	users    users.Repository
	sessions sessions.Repository
	tokens   *auth.TokenService
	hasher   auth.PasswordHasher
	validate *validator
	log      logging.Logger
}

// New constructs a Service over db. Construction fails fast on a missing
// signing secret or an uncompilable registration schema; everything else
// falls back to documented defaults.
func New(db dbx.DBTX, cfg Config) (*Service, error) {
	cfg = cfg.withDefaults()

	tokens, err := auth.NewTokenService(cfg.Secret, cfg.TokenTTL, cfg.SignOptions, cfg.VerifyOptions)
	if err != nil {
		return nil, err
	}
	validate, err := newValidator(cfg.RegistrationSchema)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg: cfg,
		users: users.NewPostgresRepository(db, users.Config{
			Table:          cfg.Tables.Users,
			IDColumn:       cfg.UserFields.ID,
			LoginColumn:    cfg.UserFields.Login,
			PasswordColumn: cfg.UserFields.Password,
			LookupQuery:    cfg.Queries.Login,
		}),
		sessions: sessions.NewPostgresRepository(db, sessions.Config{
			Table:      cfg.Tables.Sessions,
			IDColumn:   cfg.SessionFields.ID,
			UserColumn: cfg.SessionFields.User,
		}),
		tokens:   tokens,
		hasher:   auth.NewBcryptHasher(cfg.BcryptCost),
		validate: validate,
		log:      cfg.Logger,
	}, nil
}

// Login authenticates a login/password pair. On success it persists a fresh
// session and returns a signed token embedding the user and session
// identifiers. Optional admission predicates run against the fetched user
// record before the password check.
func (s *Service) Login(ctx context.Context, login, password string, admit ...AdmissionFunc) (string, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "login failed", "reason", common.ErrUserNotFound.Error())
			return "", common.ErrUserNotFound
		}
		return "", s.classifyFetch(ctx, err)
	}

	// A row without an identifier or digest cannot be authenticated and is
	// indistinguishable from an absent user on purpose.
	if !user.Authenticable() {
		s.log.Warn(ctx, "login failed", "reason", "user record not authenticable")
		return "", common.ErrUserNotFound
	}

	for _, fn := range admit {
		if fn == nil {
			continue
		}
		if adm := fn(ctx, user); !adm.ok {
			s.log.Warn(ctx, "login failed", "reason", common.ErrValidationFailed.Error(), "user_id", user.ID)
			if adm.reason != "" {
				return "", fmt.Errorf("%w: %s", common.ErrValidationFailed, adm.reason)
			}
			return "", common.ErrValidationFailed
		}
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		s.log.Warn(ctx, "login failed", "reason", common.ErrPasswordMismatch.Error(), "user_id", user.ID)
		return "", common.ErrPasswordMismatch
	}

	sessionID := uuid.NewString()

	token, err := s.tokens.Issue(user.ID, sessionID, 0)
	if err != nil {
		s.log.Error(ctx, "login failed", "reason", err.Error())
		return "", err
	}

	// A token whose backing session row does not exist must never reach the
	// caller, so the token is discarded when persistence fails.
	if err := s.sessions.Create(ctx, sessionID, user.ID); err != nil {
		s.log.Error(ctx, "error storing session", "session_id", sessionID, "user_id", user.ID, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrSessionStore, err)
	}

	s.log.Info(ctx, "session stored", "session_id", sessionID, "user_id", user.ID)
	return token, nil
}

// Register validates a registration candidate, hashes its password, and
// inserts the user. The column list of the insert derives from the
// candidate's own field set, so applications can carry extra columns. On
// success it returns the newly assigned identifier.
func (s *Service) Register(ctx context.Context, candidate map[string]any) (string, error) {
	if err := s.validate.Validate(candidate); err != nil {
		s.log.Warn(ctx, "registration rejected", "error", err)
		return "", err
	}

	password, _ := candidate[s.cfg.UserFields.Password].(string)
	digest, err := s.hasher.Hash(password)
	if err != nil {
		s.log.Error(ctx, "registration failed", "reason", common.ErrHash.Error(), "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrHash, err)
	}

	fields := make(map[string]any, len(candidate))
	for k, v := range candidate {
		fields[k] = v
	}
	fields[s.cfg.UserFields.Password] = digest

	id, err := s.users.Create(ctx, fields)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.log.Warn(ctx, "registration rejected", "reason", common.ErrDuplicateUser.Error())
			return "", common.ErrDuplicateUser
		}
		s.log.Error(ctx, "registration failed", "reason", common.ErrWrite.Error(), "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrWrite, err)
	}

	s.log.Info(ctx, "user registered", "user_id", id)
	return id, nil
}

// Logout removes the session named by the token, best effort. The token is
// decoded without verification — an expired token must still be able to end
// its session. Undecodable tokens and missing identifiers are logged and
// ignored; Logout never fails outwardly.
func (s *Service) Logout(ctx context.Context, token string) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		s.log.Warn(ctx, "logout: could not decode token", "error", err)
		return
	}
	if claims.SessionID == "" || claims.UserID == "" {
		s.log.Warn(ctx, "logout: session id and user id were not found in token")
		return
	}
	if err := s.sessions.Delete(ctx, claims.SessionID, claims.UserID); err != nil {
		s.log.Error(ctx, "logout: error deleting session",
			"session_id", claims.SessionID, "user_id", claims.UserID, "error", err)
		return
	}
	s.log.Info(ctx, "session deleted", "session_id", claims.SessionID, "user_id", claims.UserID)
}

// VerifyToken checks the token's signature and time bounds and returns its
// claims. Failures keep their classification (expired, invalid,
// not-yet-valid) so callers can decide whether renewal is still possible.
func (s *Service) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Warn(ctx, "token verification failed", "error", err)
		return nil, err
	}
	return claims, nil
}

// RenewToken issues a replacement token for a still-valid one, preserving
// the previous token's relative lifetime. The stored session row is left
// untouched. A token that fails verification cannot be renewed; its session
// is deleted defensively so a tampered or invalidated token does not leave
// a session believed valid.
func (s *Service) RenewToken(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		s.log.Warn(ctx, "renew: could not decode token", "error", err)
		return "", err
	}
	if claims.UserID == "" || claims.SessionID == "" {
		s.log.Error(ctx, "renew: token does not hold user id and session id")
		return "", common.ErrMalformedToken
	}

	if _, err := s.VerifyToken(ctx, token); err != nil {
		if delErr := s.sessions.Delete(ctx, claims.SessionID, claims.UserID); delErr != nil {
			s.log.Error(ctx, "renew: could not delete session",
				"session_id", claims.SessionID, "user_id", claims.UserID, "error", delErr)
		}
		return "", fmt.Errorf("%w: %v", common.ErrTokenVerification, err)
	}

	ttl := s.tokens.RenewalTTL(claims.IssuedAt, claims.ExpiresAt)
	renewed, err := s.tokens.Issue(claims.UserID, claims.SessionID, ttl)
	if err != nil {
		s.log.Error(ctx, "renew: error issuing replacement token", "error", err)
		return "", err
	}
	return renewed, nil
}

func (s *Service) classifyFetch(ctx context.Context, err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		s.log.Error(ctx, "login failed", "reason", common.ErrConnectionRefused.Error(), "error", err)
		return fmt.Errorf("%w: %v", common.ErrConnectionRefused, err)
	}
	s.log.Error(ctx, "login failed", "reason", common.ErrFetch.Error(), "error", err)
	return fmt.Errorf("%w: %v", common.ErrFetch, err)
}
