package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafflane/hrms-backend-go/internal/domain/auth"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if _, ok := f.users[newUser.Email]; ok {
		return user.User{}, user.ErrUserEmailExists
	}
	newUser.ID = "user-" + newUser.Email
	f.users[newUser.Email] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	return f.GetByEmail(ctx, email)
}

func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}

func seedUser(repo *fakeUserRepo, email, password string, active bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	h := string(hash)
	repo.users[email] = user.User{
		ID:           "user-" + email,
		Email:        email,
		PasswordHash: &h,
		Role:         user.RoleEmployee,
		IsActive:     active,
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	seedUser(repo, "dewi@corp.test", "secret123", true)
	svc := NewAuthService(nil, repo, nil, nil)

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Email:     "dewi@corp.test",
		Password:  "secret123",
		Role:      "employee",
		FirstName: "Dewi",
		LastName:  "Lestari",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	seedUser(repo, "dewi@corp.test", "secret123", true)
	svc := NewAuthService(nil, repo, nil, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dewi@corp.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@corp.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsDeactivatedUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]user.User{}}
	seedUser(repo, "dewi@corp.test", "secret123", false)
	svc := NewAuthService(nil, repo, nil, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dewi@corp.test",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, user.ErrUserDeactivated)
}
