package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashingLifecycle(t *testing.T) {
	password := "S3curePass!"
	hash, err := HashPassword(password, MinBcryptCost)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	if err := VerifyPassword(hash, password); err != nil {
		t.Fatalf("expected password to verify, got error: %v", err)
	}

	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashPasswordClampsCost(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost < MinBcryptCost {
		t.Fatalf("expected cost >= %d, got %d", MinBcryptCost, cost)
	}
}

func TestHasher(t *testing.T) {
	h := NewHasher(MinBcryptCost, 1)
	ctx := context.Background()

	hash, err := h.Hash(ctx, "secret1")
	if err != nil {
		t.Fatalf("unexpected error hashing: %v", err)
	}
	if err := h.Compare(ctx, hash, "secret1"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(ctx, hash, "secret2"); !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Fatalf("expected mismatch error, got %v", err)
	}
	if got := NewHasher(4, 1).Cost(); got != MinBcryptCost {
		t.Fatalf("expected cost clamped to %d, got %d", MinBcryptCost, got)
	}
}

func TestHasherHonoursCancelledContext(t *testing.T) {
	h := NewHasher(MinBcryptCost, 1)
	if err := h.sem.Acquire(context.Background(), 1); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer h.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := h.Hash(ctx, "secret1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
