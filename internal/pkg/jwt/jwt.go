package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/mannerishivardhan/workforce-backend-go/internal/domain/user"
)

const TokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("invalid token claims")

type Service interface {
	GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":       principal.UserID,
		"employee_id":   valueOrNil(principal.EmployeeID),
		"department_id": valueOrNil(principal.DepartmentID),
		"role":          string(principal.Role),
		"type":          TokenTypeAccess,
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// PrincipalFromClaims rebuilds the caller from access token claims. The role
// is normalized so every accepted spelling maps to one capability set.
func PrincipalFromClaims(claims map[string]interface{}) (user.Principal, error) {
	if tokenType, _ := claims["type"].(string); tokenType != TokenTypeAccess {
		return user.Principal{}, fmt.Errorf("%w: not an access token", ErrInvalidClaims)
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.Principal{}, fmt.Errorf("%w: user_id is missing", ErrInvalidClaims)
	}

	roleStr, _ := claims["role"].(string)
	role, err := user.ParseRole(roleStr)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	}

	employeeID, _ := claims["employee_id"].(string)
	departmentID, _ := claims["department_id"].(string)
	if role == user.RoleDepartmentHead && departmentID == "" {
		return user.Principal{}, fmt.Errorf("%w: %w", ErrInvalidClaims, user.ErrDepartmentScopeRequired)
	}

	return user.Principal{
		UserID:       userID,
		EmployeeID:   employeeID,
		DepartmentID: departmentID,
		Role:         role,
	}, nil
}

func valueOrNil(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
