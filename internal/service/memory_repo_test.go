package service

import (
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
)

// memoryRepo is an in-memory model.Repository used by service tests.
type memoryRepo struct {
	mu        sync.Mutex
	nextID    uint
	users     map[uint]db.User
	links     map[uint]db.AffiliateLink
	platforms map[uint]db.PurchasePlatform

	calls   int
	failErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users:     map[uint]db.User{},
		links:     map[uint]db.AffiliateLink{},
		platforms: map[uint]db.PurchasePlatform{},
	}
}

func (m *memoryRepo) touch() error {
	m.calls++
	return m.failErr
}

func (m *memoryRepo) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memoryRepo) CreateUser(_ context.Context, user *db.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	user.ID = m.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = *user
	return nil
}

func (m *memoryRepo) UpdateUser(_ context.Context, id uint, updates entity.UserUpdates) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if updates.Email != nil {
		for otherID, u := range m.users {
			if otherID != id && u.Email == *updates.Email {
				return nil, gorm.ErrDuplicatedKey
			}
		}
		user.Email = *updates.Email
	}
	if updates.FullName != nil {
		user.FullName = *updates.FullName
	}
	if updates.PasswordHash != nil {
		user.PasswordHash = *updates.PasswordHash
	}
	if updates.Role != nil {
		user.Role = *updates.Role
	}
	m.users[id] = user
	return &user, nil
}

func (m *memoryRepo) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	for _, u := range m.users {
		if u.Email == strings.ToLower(strings.TrimSpace(email)) {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) GetUserByID(_ context.Context, id uint) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *memoryRepo) ListUsers(_ context.Context) ([]db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	users := make([]db.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memoryRepo) DeleteUser(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memoryRepo) CountUsers(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), m.touch()
}

func (m *memoryRepo) ListAffiliateLinks(_ context.Context) ([]db.AffiliateLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	links := make([]db.AffiliateLink, 0, len(m.links))
	for _, l := range m.links {
		links = append(links, l)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID > links[j].ID })
	return links, nil
}

func (m *memoryRepo) CreateAffiliateLink(_ context.Context, link *db.AffiliateLink) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	link.ID = m.id()
	m.links[link.ID] = *link
	return nil
}

func (m *memoryRepo) UpdateAffiliateLink(_ context.Context, id uint, updates entity.AffiliateLinkUpdates) (*db.AffiliateLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	link, ok := m.links[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if updates.OriginalLink != nil {
		link.OriginalLink = *updates.OriginalLink
	}
	if updates.ProductImage != nil {
		link.ProductImage = *updates.ProductImage
	}
	if updates.CatchyPhrase != nil {
		link.CatchyPhrase = *updates.CatchyPhrase
	}
	if updates.AffiliateLink != nil {
		link.AffiliateLink = *updates.AffiliateLink
	}
	m.links[id] = link
	return &link, nil
}

func (m *memoryRepo) DeleteAffiliateLink(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	if _, ok := m.links[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.links, id)
	return nil
}

func (m *memoryRepo) ListPurchasePlatforms(_ context.Context) ([]db.PurchasePlatform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	platforms := make([]db.PurchasePlatform, 0, len(m.platforms))
	for _, p := range m.platforms {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID > platforms[j].ID })
	return platforms, nil
}

func (m *memoryRepo) CreatePurchasePlatform(_ context.Context, platform *db.PurchasePlatform) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	platform.ID = m.id()
	m.platforms[platform.ID] = *platform
	return nil
}

func (m *memoryRepo) UpdatePurchasePlatform(_ context.Context, id uint, updates entity.PurchasePlatformUpdates) (*db.PurchasePlatform, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	p, ok := m.platforms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if updates.Name != nil {
		p.Name = *updates.Name
	}
	if updates.Description != nil {
		p.Description = *updates.Description
	}
	if updates.IsActive != nil {
		p.IsActive = *updates.IsActive
	}
	if updates.APILink != nil {
		p.APILink = *updates.APILink
	}
	if updates.AccessKey != nil {
		p.AccessKey = *updates.AccessKey
	}
	m.platforms[id] = p
	return &p, nil
}

func (m *memoryRepo) DeletePurchasePlatform(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	if _, ok := m.platforms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.platforms, id)
	return nil
}

func (m *memoryRepo) Close() error { return nil }

var errStoreDown = errors.New("connection refused")
