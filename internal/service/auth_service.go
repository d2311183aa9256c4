package service

import (
	"comepouco/internal/auth"
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"comepouco/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuthResult is returned by a successful login or registration.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *db.User
}

// AuthService handles login, registration and token-to-identity resolution.
type AuthService struct {
	repo   model.Repository
	tokens *auth.Manager
	hasher *auth.Hasher

	// 未知邮箱登录时用于比对的哈希，成本与真实哈希一致
	dummyHash string
}

const dummyPassword = "come-pouco-placeholder"

// NewAuthService wires the auth service.
func NewAuthService(repo model.Repository, tokens *auth.Manager, hasher *auth.Hasher) *AuthService {
	s := &AuthService{repo: repo, tokens: tokens, hasher: hasher}
	hash, err := auth.HashPassword(dummyPassword, hasher.Cost())
	if err != nil {
		logrus.WithError(err).Warn("failed to precompute login fallback hash")
	} else {
		s.dummyHash = hash
	}
	return s
}

// Login verifies credentials and issues a token. Unknown emails and wrong
// passwords fail with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normaliseEmail(email)
	if email == "" || password == "" {
		return nil, Validation("E-mail e senha são obrigatórios.")
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load user: %w", err)
		}
		// 未知邮箱也走一次 bcrypt，保持响应耗时一致
		if err := s.burnHash(ctx, password); err != nil && isContextErr(err) {
			return nil, err
		}
		return nil, Unauthenticated(msgInvalidCredentials)
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		if isContextErr(err) {
			return nil, err
		}
		return nil, Unauthenticated(msgInvalidCredentials)
	}

	return s.issue(user)
}

// Register creates a USER account and logs it in.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*AuthResult, error) {
	fullName = strings.TrimSpace(fullName)
	email = normaliseEmail(email)
	if fullName == "" || email == "" || password == "" {
		return nil, Validation("Nome, e-mail e senha são obrigatórios.")
	}
	if !isEmail(email) {
		return nil, Validation("E-mail inválido.")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict(msgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// GetByID returns the user with the given id.
func (s *AuthService) GetByID(ctx context.Context, id uint) (*db.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound(msgUserNotFound)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// Authenticate resolves a bearer token into an identity. The role is read
// from the store, never from the token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	userID, err := s.tokens.VerifySubject(token)
	if err != nil {
		return auth.Identity{}, Unauthenticated(msgInvalidToken)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.Identity{}, Unauthenticated(msgInvalidToken)
		}
		return auth.Identity{}, fmt.Errorf("load user: %w", err)
	}
	return auth.Identity{UserID: user.ID, Role: user.Role}, nil
}

func (s *AuthService) issue(user *db.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// burnHash spends one bcrypt operation at the configured cost. Without a
// precomputed hash it hashes a constant instead, which costs the same.
func (s *AuthService) burnHash(ctx context.Context, password string) error {
	if s.dummyHash == "" {
		_, err := s.hasher.Hash(ctx, dummyPassword)
		return err
	}
	return s.hasher.Compare(ctx, s.dummyHash, password)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
