package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/authz"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/jobboard-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the signed role-carrying tokens used
// on every protected route. Issuing and parsing are pure functions of the
// signing key, configuration, and clock; the service holds no state.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
	now      func() time.Time
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		expiry:   cfg.JWTExpiry,
		now:      time.Now,
	}
}

// Issue signs a token for a verified user. Password verification happens
// before this is called.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"name":  user.Username,
		"email": user.Email,
		"role":  user.Role.String(),
		"iss":   s.issuer,
		"aud":   s.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, expiry, issued-at, issuer, and audience, and
// returns the caller identity. Every failure collapses to the single
// unauthenticated outcome; the concrete cause is only logged.
func (s *TokenService) Parse(raw string) (authz.Caller, error) {
	token, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		slog.Warn("token rejected", "error", err)
		return authz.Caller{}, apperrors.ErrUnauthenticated
	}

	return s.callerFromClaims(token.Claims)
}

// CallerFromClaims converts an already signature-checked claim set (e.g.
// from the route middleware) into a typed caller, re-checking the fields
// the middleware does not cover.
func (s *TokenService) CallerFromClaims(claims jwt.MapClaims) (authz.Caller, error) {
	return s.callerFromClaims(claims)
}

func (s *TokenService) callerFromClaims(claims jwt.Claims) (authz.Caller, error) {
	mc, ok := claims.(jwt.MapClaims)
	if !ok {
		return s.reject(fmt.Errorf("unexpected claims type %T", claims))
	}

	if iss, _ := mc.GetIssuer(); iss != s.issuer {
		return s.reject(fmt.Errorf("issuer mismatch: %q", iss))
	}
	aud, _ := mc.GetAudience()
	if !audienceContains(aud, s.audience) {
		return s.reject(fmt.Errorf("audience mismatch: %v", aud))
	}
	if iat, err := mc.GetIssuedAt(); err != nil || iat == nil || s.now().Before(iat.Time) {
		return s.reject(fmt.Errorf("issued-at invalid or in the future"))
	}
	if exp, err := mc.GetExpirationTime(); err != nil || exp == nil || s.now().After(exp.Time) {
		return s.reject(fmt.Errorf("token expired"))
	}

	sub, _ := mc["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return s.reject(fmt.Errorf("invalid sub claim: %w", err))
	}

	roleStr, _ := mc["role"].(string)
	role, err := models.ParseRole(roleStr)
	if err != nil {
		return s.reject(err)
	}

	email, _ := mc["email"].(string)
	name, _ := mc["name"].(string)

	return authz.Caller{ID: userID, Role: role, Email: email, Username: name}, nil
}

func (s *TokenService) reject(cause error) (authz.Caller, error) {
	slog.Warn("token claims rejected", "error", cause)
	return authz.Caller{}, apperrors.ErrUnauthenticated
}

func audienceContains(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
