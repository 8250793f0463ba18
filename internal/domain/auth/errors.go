package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("invalid email or employee id")
	ErrInvalidAdminCredentials    = errors.New("invalid email or password")
	ErrAdminPrivilegeRequired     = errors.New("admin privilege required")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrTokenExpired               = errors.New("token has expired")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrGoogleAccessDenied         = errors.New("google access denied by user")
	ErrStateMismatch              = errors.New("oauth state mismatch")
	ErrNotAnAdminAccount          = errors.New("account is not an admin")
)
