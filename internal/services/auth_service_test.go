package services

import (
	"errors"
	"testing"

	"github.com/dayzero-app/dayzero/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type stubAuthUserRepository struct {
	users []models.User
}

func (stub *stubAuthUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubAuthUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubAuthUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubAuthUserRepository) Create(user *models.User) error {
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

func TestRegisterAppliesProfileDefaults(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&stubAuthUserRepository{})
	user, err := service.Register("  Someone@Example.COM ", "longenough", "America/New_York")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.Email != "someone@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Timezone != "America/New_York" {
		t.Fatalf("expected timezone kept, got %q", user.Timezone)
	}
	if user.DailyResetHour != models.DefaultDailyResetHour {
		t.Fatalf("expected default reset hour, got %d", user.DailyResetHour)
	}
	if user.Plan != models.PlanFree {
		t.Fatalf("expected free plan default, got %q", user.Plan)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&stubAuthUserRepository{})

	if _, err := service.Register("not-an-email", "longenough", "UTC"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := service.Register("a@b.c", "short", "UTC"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestRegisterInvalidTimezoneFallsBackToUTC(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&stubAuthUserRepository{})
	user, err := service.Register("a@b.c", "longenough", "Nowhere/Special")
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if user.Timezone != models.DefaultTimezone {
		t.Fatalf("expected UTC fallback, got %q", user.Timezone)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &stubAuthUserRepository{}
	service := NewAuthService(repo)
	if _, err := service.Register("a@b.c", "longenough", "UTC"); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if _, err := service.Register("A@B.C", "longenough", "UTC"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correcthorse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &stubAuthUserRepository{users: []models.User{{ID: 1, Email: "a@b.c", PasswordHash: string(hash)}}}
	service := NewAuthService(repo)

	user, err := service.Login("A@b.c ", "correcthorse")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected user 1, got %d", user.ID)
	}

	if _, err := service.Login("a@b.c", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login("nobody@b.c", "correcthorse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
