// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, and issuing/refreshing
// access tokens plus server-stored refresh tokens.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/questionboard/questionboard/internal/common"
	"github.com/questionboard/questionboard/internal/dbx"
	"github.com/questionboard/questionboard/internal/server/auth"
	"github.com/questionboard/questionboard/internal/server/config"
	"github.com/questionboard/questionboard/internal/server/models"
	"github.com/questionboard/questionboard/internal/server/repositories/repomanager"
)

// AuthResult bundles what a completed credential flow returns to the caller.
// RefreshToken is empty for the refresh flow: refresh issues a new access
// token only, the stored refresh value rotates exclusively on login and
// registration.
type AuthResult struct {
	UserID       int64
	AccessToken  string
	RefreshToken string
}

// dummyHash keeps the bcrypt comparison in the login path even when the
// username is unknown, so response timing does not reveal user existence.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder"), bcrypt.DefaultCost)

// AuthService provides authentication-related operations:
// - Register: create users and mint tokens
// - Login: verify credentials and mint tokens
// - Refresh: validate the stored refresh token and mint a new access token
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	tokens                       *auth.TokenService
	refreshTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		tokens:                       auth.NewTokenService([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration),
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Tokens exposes the access-token service for the request pipeline.
func (s *AuthService) Tokens() *auth.TokenService {
	return s.tokens
}

// Login verifies the username/password pair and, on success, returns a new
// access token plus a rotated refresh token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user.ID, s.db)
}

// Register creates a new user and logs them straight in. The username check
// happens before any token work, so a conflicting registration never touches
// an existing refresh-token row.
func (s *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var result *AuthResult
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Users(tx)
		user, err := repoTx.Create(ctx, &models.User{Username: username, PasswordHash: hash})
		if err != nil {
			return common.ErrorInternal
		}
		var issueErr error
		result, issueErr = s.issueTokens(ctx, user.ID, tx)
		return issueErr
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// Refresh validates the supplied refresh token against the stored row for
// userID and, on success, returns a new access token. The stored refresh
// value is deliberately left as is.
func (s *AuthService) Refresh(ctx context.Context, userID int64, refreshToken string) (*AuthResult, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	stored, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidRefreshToken
		}
		return nil, common.ErrorInternal
	}
	if subtle.ConstantTimeCompare([]byte(stored.Token), []byte(refreshToken)) != 1 {
		return nil, common.ErrInvalidRefreshToken
	}
	if stored.Expired(time.Now()) {
		return nil, common.ErrInvalidRefreshToken
	}

	access, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{UserID: userID, AccessToken: access}, nil
}

// UserByID resolves a principal's user row for downstream handlers.
func (s *AuthService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

// --- helpers below ---

func (s *AuthService) generateRefreshToken() string {
	return uuid.NewString()
}

func (s *AuthService) issueTokens(ctx context.Context, userID int64, tx dbx.DBTX) (*AuthResult, error) {
	access, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh := s.generateRefreshToken()
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Rotate(ctx, userID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{UserID: userID, AccessToken: access, RefreshToken: refresh}, nil
}
