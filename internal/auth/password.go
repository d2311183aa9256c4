package auth

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// MinBcryptCost is the lowest work factor accepted for stored hashes.
const MinBcryptCost = 10

// HashPassword 对明文密码进行哈希处理
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password must not be empty")
	}
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 验证密码是否与存储的哈希值匹配
func VerifyPassword(hash, candidate string) error {
	if strings.TrimSpace(hash) == "" {
		return errors.New("stored password hash is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
}

// Hasher runs bcrypt work with a bound on how many hashes execute at once.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher creates a Hasher. A non-positive limit defaults to GOMAXPROCS.
func NewHasher(cost, limit int) *Hasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(limit))}
}

// Cost returns the bcrypt work factor used for new hashes.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash hashes password, waiting for a free slot or ctx cancellation.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)
	return HashPassword(password, h.cost)
}

// Compare checks candidate against hash. It returns
// bcrypt.ErrMismatchedHashAndPassword on mismatch.
func (h *Hasher) Compare(ctx context.Context, hash, candidate string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)
	return VerifyPassword(hash, candidate)
}
