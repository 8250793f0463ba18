package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/medibridge/enroll-backend-go/internal/domain/auth"
	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
	"github.com/medibridge/enroll-backend-go/internal/pkg/database"
	"github.com/medibridge/enroll-backend-go/internal/pkg/jwt"
	"github.com/medibridge/enroll-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, employeeRepository employee.EmployeeRepository, jwtService jwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		JWTRepository:      jwtRepository,
	}
}

// issueTokens generates the access/refresh pair and persists the refresh
// token hash inside one transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(emp.ID, emp.EmpID, emp.Email, emp.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(emp.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, emp.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Login implements auth.AuthService. Employees authenticate with their email
// and employee id pair; there is no employee password.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	employeeData, err := a.EmployeeRepository.GetByCredentials(ctx, loginReq.Email, loginReq.EmpID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by credentials: %w", err)
	}

	return a.issueTokens(ctx, employeeData, sessionTrackReq)
}

// LoginAdmin implements auth.AuthService.
func (a *AuthServiceImpl) LoginAdmin(ctx context.Context, loginReq auth.AdminLoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	employeeData, err := a.EmployeeRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if employeeData.Role != employee.RoleAdmin {
		return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
	}

	if employeeData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*employeeData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidAdminCredentials
	}

	return a.issueTokens(ctx, employeeData, sessionTrackReq)
}

// LoginWithGoogle implements auth.AuthService. SSO is an admin convenience:
// the Google email must match an existing admin account, it never provisions
// one.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	employeeData, err := a.EmployeeRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrNotAnAdminAccount
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if employeeData.Role != employee.RoleAdmin {
		return auth.TokenResponse{}, auth.ErrNotAnAdminAccount
	}

	return a.issueTokens(ctx, employeeData, sessionTrackReq)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.JWTRepository.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil
	})
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// 1. Verify JWT signature and expiry
	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check token type is "refresh"
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 3. Check DB for revocation/expiry (pass raw token, not hash)
	isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 4. Get employee
	employeeData, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 5. Generate new access token
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(employeeData.ID, employeeData.EmpID, employeeData.Email, employeeData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}
