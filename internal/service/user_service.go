package service

import (
	"comepouco/internal/auth"
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"comepouco/internal/entity/dto"
	"comepouco/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// UserService implements admin user management.
type UserService struct {
	repo   model.Repository
	hasher *auth.Hasher
}

// NewUserService wires the user service.
func NewUserService(repo model.Repository, hasher *auth.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// List returns every user ordered by id.
func (s *UserService) List(ctx context.Context) ([]db.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create validates the payload, hashes the password and stores the user.
// Role defaults to USER.
func (s *UserService) Create(ctx context.Context, req dto.UserCreateRequest) (*db.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := normaliseEmail(req.Email)
	if fullName == "" || email == "" || req.Password == "" {
		return nil, Validation("Nome, e-mail e senha são obrigatórios.")
	}
	if !isEmail(email) {
		return nil, Validation("E-mail inválido.")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := entity.RoleUser
	if strings.TrimSpace(req.Role) != "" {
		parsed, ok := entity.ParseRole(req.Role)
		if !ok {
			return nil, Validation("Perfil inválido.")
		}
		role = parsed
	}

	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict(msgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update applies a partial update. An empty password counts as absent; a
// payload with nothing left to apply is rejected before the store is touched.
func (s *UserService) Update(ctx context.Context, id uint, req dto.UserUpdateRequest) (*db.User, error) {
	var (
		updates entity.UserUpdates
		err     error
	)

	if updates.FullName, err = optionalText(req.FullName, "Nome inválido."); err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normaliseEmail(*req.Email)
		if !isEmail(email) {
			return nil, Validation("E-mail inválido.")
		}
		updates.Email = &email
	}

	if req.Role != nil {
		role, ok := entity.ParseRole(*req.Role)
		if !ok {
			return nil, Validation("Perfil inválido.")
		}
		updates.Role = &role
	}

	password := ""
	if req.Password != nil {
		password = *req.Password
	}
	if password != "" {
		if err := validatePassword(password); err != nil {
			return nil, err
		}
	}

	if updates.IsEmpty() && password == "" {
		return nil, Validation(msgNoFields)
	}

	if password != "" {
		hash, err := s.hasher.Hash(ctx, password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates.PasswordHash = &hash
	}

	user, err := s.repo.UpdateUser(ctx, id, updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, NotFound(msgUserNotFound)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, Conflict(msgEmailTaken)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes a user. The acting admin cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actor auth.Identity, id uint) error {
	if actor.UserID != 0 && actor.UserID == id {
		return Validation("Não é possível excluir o próprio usuário.")
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound(msgUserNotFound)
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
