package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stafflane/hrms-backend-go/internal/domain/auth"
	"github.com/stafflane/hrms-backend-go/internal/domain/employee"
	"github.com/stafflane/hrms-backend-go/internal/domain/user"
	"github.com/stafflane/hrms-backend-go/internal/pkg/database"
	"github.com/stafflane/hrms-backend-go/internal/pkg/jwt"
	"github.com/stafflane/hrms-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Signup implements auth.AuthService. The user and their employee row are
// created in one transaction: a failure on either side leaves no partial
// account behind.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.TokenResponse, error) {
	// The unique index on users.email still guards the concurrent case
	// inside the transaction.
	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if exists {
		return auth.TokenResponse{}, user.ErrUserEmailExists
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != "" {
		hireDate, err = time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
		}
	}

	var (
		createdUser user.User
		createdEmp  employee.Employee
	)
	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		newUser := user.User{
			Email:        req.Email,
			PasswordHash: &hashed,
			Role:         user.Role(req.Role),
			IsActive:     true,
		}
		createdUser, err = a.UserRepository.Create(txCtx, newUser)
		if err != nil {
			return err
		}

		if req.ManagerID != nil {
			if _, err := a.EmployeeRepository.GetByID(txCtx, *req.ManagerID); err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					return employee.ErrManagerNotFound
				}
				return err
			}
		}

		code, err := a.EmployeeRepository.NextEmployeeCode(txCtx)
		if err != nil {
			return err
		}

		createdEmp, err = a.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:       createdUser.ID,
			EmployeeCode: code,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Department:   req.Department,
			Position:     req.Position,
			ManagerID:    req.ManagerID,
			HireDate:     hireDate,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(createdUser, &createdEmp)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !userData.IsActive {
		return auth.TokenResponse{}, user.ErrUserDeactivated
	}

	return a.issueTokens(userData, a.employeeFor(ctx, userData.ID))
}

// LoginWithGoogle implements auth.AuthService. The Google account must match
// an existing user by email; signup stays password-first.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, email string, googleID string) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.LinkGoogleAccount(ctx, googleID, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
	}
	if !userData.IsActive {
		return auth.TokenResponse{}, user.ErrUserDeactivated
	}

	return a.issueTokens(userData, a.employeeFor(ctx, userData.ID))
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if a.Service.IsTokenRevoked(req.RefreshToken) {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.Service.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := token.Get("user_id")
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID.(string))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !userData.IsActive {
		return auth.AccessTokenResponse{}, user.ErrUserDeactivated
	}

	var employeeID, department *string
	if emp := a.employeeFor(ctx, userData.ID); emp != nil {
		employeeID = &emp.ID
		department = &emp.Department
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, employeeID, department, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}

// employeeFor loads the employee row behind a user, or nil when the user has
// none (possible for accounts created before the directory existed).
func (a *AuthServiceImpl) employeeFor(ctx context.Context, userID string) *employee.Employee {
	emp, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil
	}
	return &emp
}

func (a *AuthServiceImpl) issueTokens(userData user.User, emp *employee.Employee) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	profile := auth.UserProfile{
		ID:    userData.ID,
		Email: userData.Email,
		Role:  string(userData.Role),
	}

	var employeeID, department *string
	if emp != nil {
		employeeID = &emp.ID
		department = &emp.Department
		profile.EmployeeID = &emp.ID
		profile.FirstName = emp.FirstName
		profile.LastName = emp.LastName
		profile.Department = emp.Department
		profile.Position = emp.Position
	}

	accessToken, accessExpiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, employeeID, department, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.AccessToken = accessToken
	tokenResponse.AccessTokenExpiresIn = accessExpiresAt
	tokenResponse.RefreshToken = refreshToken
	tokenResponse.RefreshTokenExpiresIn = refreshExpiresAt
	tokenResponse.User = profile

	return tokenResponse, nil
}
