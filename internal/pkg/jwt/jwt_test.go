package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibridge/enroll-backend-go/internal/domain/employee"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("b2c3d4e5-0000-0000-0000-000000000001", "EMP001", "jane@acme.test", employee.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "b2c3d4e5-0000-0000-0000-000000000001", claims["employee_id"])
	assert.Equal(t, "EMP001", claims["emp_id"])
	assert.Equal(t, "jane@acme.test", claims["email"])
	assert.Equal(t, "employee", claims["role"])
	assert.Equal(t, false, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessTokenAdmin(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	tokenString, _, err := svc.GenerateAccessToken("b2c3d4e5-0000-0000-0000-000000000002", "ADM001", "hr@acme.test", employee.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "admin", claims["role"])
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "15m", "168h")

	tokenString, expiresAt, err := svc.GenerateRefreshToken("b2c3d4e5-0000-0000-0000-000000000001")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
	assert.Equal(t, "b2c3d4e5-0000-0000-0000-000000000001", claims["employee_id"])

	cookie := svc.RefreshTokenCookie(tokenString, expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
}

func TestGenerateAccessTokenInvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration", "168h")

	_, _, err := svc.GenerateAccessToken("id", "EMP001", "jane@acme.test", employee.RoleEmployee)
	assert.Error(t, err)
}
