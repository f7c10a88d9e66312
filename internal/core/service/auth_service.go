package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peopleops/employee-system/internal/api/metrics"
	"github.com/peopleops/employee-system/internal/core/domain"
	"github.com/peopleops/employee-system/internal/core/ports"
)

const defaultTokenTTL = 15 * time.Minute

// TokenSettings carries everything needed to sign a session token.
// Secret is validated at startup by the config layer; it is never re-checked
// per request.
type TokenSettings struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService implements registration and login, including the transparent
// migration of legacy plaintext credentials to bcrypt.
type AuthService struct {
	repo   ports.UserRepository
	tokens TokenSettings
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens TokenSettings, logger zerolog.Logger) *AuthService {
	if tokens.TTL <= 0 {
		tokens.TTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login authenticates a user and returns a signed token.
//
// A missing user and a wrong password both surface as ErrInvalidCredentials;
// callers cannot tell which branch failed, nor whether the stored credential
// was legacy or modern. Note: the repository lookup itself is not
// constant-time across present/absent usernames, so timing-based enumeration
// is narrowed but not eliminated here.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, needsMigration := verifyPassword(user, password)
	if !ok {
		return "", nil, domain.ErrInvalidCredentials
	}

	if needsMigration {
		s.migrateCredential(ctx, user, password)
	}

	token, err := s.mintToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a new account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Lookup-then-create is racy under concurrent registration; the unique
	// index on username in the store is the authoritative guard and maps
	// duplicate-key failures to ErrUserExists.
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return "", nil, err
	}

	user, err := domain.NewUser(username, email, password, parsedRole)
	if err != nil {
		return "", nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.mintToken(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// verifyPassword checks the submitted password against the stored credential.
// The second result reports whether the credential is legacy and should be
// rehashed now that the plaintext is known to match.
func verifyPassword(user *domain.User, password string) (ok, needsMigration bool) {
	if user.HasModernHash() {
		return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, false
	}
	match := subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(password)) == 1
	return match, match
}

// migrateCredential rehashes a just-verified legacy credential and persists
// it. Best-effort: a failure is logged and the login proceeds, leaving the
// legacy value in place for the next attempt.
func (s *AuthService) migrateCredential(ctx context.Context, user *domain.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		metrics.CredentialMigrationsTotal.WithLabelValues("failed").Inc()
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("credential rehash failed")
		return
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		metrics.CredentialMigrationsTotal.WithLabelValues("failed").Inc()
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("credential migration not persisted")
		return
	}
	metrics.CredentialMigrationsTotal.WithLabelValues("migrated").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("legacy credential migrated")
}

func (s *AuthService) mintToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":           user.ID,
		"jti":           uuid.NewString(),
		"username":      user.Username,
		"role":          string(user.Role),
		"department_id": user.DepartmentID,
		"iss":           s.tokens.Issuer,
		"aud":           s.tokens.Audience,
		"iat":           now.Unix(),
		"exp":           now.Add(s.tokens.TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.tokens.Secret))
}
