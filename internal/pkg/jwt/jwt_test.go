package jwt

import (
	"context"
	"testing"

	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	want := user.Principal{UserID: "u1", EmployeeID: "e1", DepartmentID: "d1", Role: user.RoleDepartmentHead}

	token, expiresAt, err := svc.GenerateAccessToken(want)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)

	got, err := PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	_, _, err := NewJWTService("secret", "soon").GenerateAccessToken(user.Principal{UserID: "u1", Role: user.RoleEmployee})
	assert.Error(t, err)
}

func TestPrincipalFromClaims(t *testing.T) {
	got, err := PrincipalFromClaims(map[string]interface{}{
		"user_id": "u1", "role": "SuperAdmin", "type": "access", "employee_id": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleSuperAdmin, got.Role)
	assert.Empty(t, got.EmployeeID)

	for name, claims := range map[string]map[string]interface{}{
		"refresh token": {"user_id": "u1", "role": "employee", "type": "refresh"},
		"no user":       {"role": "employee", "type": "access"},
		"unknown role":  {"user_id": "u1", "role": "owner", "type": "access"},
	} {
		_, err := PrincipalFromClaims(claims)
		assert.ErrorIs(t, err, ErrInvalidClaims, name)
	}

	_, err = PrincipalFromClaims(map[string]interface{}{"user_id": "u2", "role": "department_head", "type": "access"})
	assert.ErrorIs(t, err, user.ErrDepartmentScopeRequired)
}
