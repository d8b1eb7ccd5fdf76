package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/userauth/internal/common"
)

// DefaultTokenTTL is the token lifetime used when no explicit TTL is given.
const DefaultTokenTTL = 30 * time.Minute

// Claims is the decoded token payload: the standard registered claims plus
// the user and session identifiers bound at login.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
}

// SignOptions are optional overrides applied to every issued token.
type SignOptions struct {
	Issuer   string
	Audience string

	// NotBefore delays token activation by the given offset from issuance.
	NotBefore time.Duration
}

// VerifyOptions are optional overrides applied to every verification.
type VerifyOptions struct {
	Leeway   time.Duration
	Issuer   string
	Audience string
}

// TokenService signs, decodes, and verifies session tokens. It owns the
// signing secret; callers only ever hold opaque token strings.
type TokenService struct {
	secret     []byte
	defaultTTL time.Duration
	sign       SignOptions
	verify     VerifyOptions
}

// NewTokenService constructs a TokenService. The secret is mandatory:
// running without one would make every token forgeable, so construction
// fails instead. A non-positive ttl selects DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration, sign SignOptions, verify VerifyOptions) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), defaultTTL: ttl, sign: sign, verify: verify}, nil
}

// DefaultTTL returns the configured default token lifetime.
func (s *TokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Issue signs an HS256 token binding userID and sessionID, valid for ttl.
// A zero ttl means the default; a negative ttl produces an already-expired
// token, which is occasionally useful in tests and harmless otherwise.
func (s *TokenService) Issue(userID, sessionID string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		SessionID: sessionID,
	}
	if s.sign.Issuer != "" {
		claims.Issuer = s.sign.Issuer
	}
	if s.sign.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.sign.Audience}
	}
	if s.sign.NotBefore > 0 {
		claims.NotBefore = jwt.NewNumericDate(now.Add(s.sign.NotBefore))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrTokenIssue, err)
	}
	return token, nil
}

// Decode parses a token without verifying its signature. It exists only to
// recover identifiers for logout and renewal bookkeeping and must never be
// used to establish trust.
func (s *TokenService) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedToken, err)
	}
	return claims, nil
}

// Verify checks the token's signature and time bounds and returns its
// claims. Failures are classified so callers can react differently to an
// expired token (renewable) and an invalid one (never):
//
//   - common.ErrTokenExpired, wrapping the original expiry timestamp
//   - common.ErrTokenNotYetValid, wrapping the activation timestamp
//   - common.ErrTokenInvalid for bad signatures and malformed tokens
//   - common.ErrTokenVerification for anything unclassifiable
func (s *TokenService) Verify(token string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.verify.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(s.verify.Leeway))
	}
	if s.verify.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.verify.Issuer))
	}
	if s.verify.Audience != "" {
		opts = append(opts, jwt.WithAudience(s.verify.Audience))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)

	switch {
	case err == nil:
		if !parsed.Valid {
			return nil, common.ErrTokenInvalid
		}
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		if claims.ExpiresAt != nil {
			return nil, fmt.Errorf("%w (expired at %s)", common.ErrTokenExpired, claims.ExpiresAt.Time.Format(time.RFC3339))
		}
		return nil, common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		if claims.NotBefore != nil {
			return nil, fmt.Errorf("%w (active at %s)", common.ErrTokenNotYetValid, claims.NotBefore.Time.Format(time.RFC3339))
		}
		return nil, common.ErrTokenNotYetValid
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, fmt.Errorf("%w: %v", common.ErrTokenInvalid, err)
	default:
		return nil, fmt.Errorf("%w: %v", common.ErrTokenVerification, err)
	}
}

// RenewalTTL computes the lifetime a replacement token should get: the
// relative lifetime of the previous token (expiry minus issuance), so a
// caller that asked for a non-default TTL keeps it across renewals. Missing
// or non-positive bounds fall back to the default TTL.
func (s *TokenService) RenewalTTL(issuedAt, expiresAt *jwt.NumericDate) time.Duration {
	if issuedAt == nil || expiresAt == nil {
		return s.defaultTTL
	}
	if ttl := expiresAt.Time.Sub(issuedAt.Time); ttl > 0 {
		return ttl
	}
	return s.defaultTTL
}
