package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const TokenTypeAccess = "access"

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried inside an access token.
type Claims struct {
	UserID string
	Email  string
	Role   user.Role
}

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error)
	ParseAccessToken(token string) (Claims, error)
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	now                   func() time.Time
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (Service, error) {
	expiration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpiration: expiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                   time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(userID string, email string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"id":    userID,
		"email": email,
		"role":  string(role),
		"type":  TokenTypeAccess,
		"exp":   expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseAccessToken verifies signature and expiry and returns the identity claims.
func (j *JWTService) ParseAccessToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}, err
	}
	return ClaimsFromMap(claims)
}

// ClaimsFromMap extracts identity claims from a decoded token. Only access
// tokens with a known role are accepted.
func ClaimsFromMap(claims map[string]interface{}) (Claims, error) {
	if t, _ := claims["type"].(string); t != TokenTypeAccess {
		return Claims{}, ErrInvalidToken
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return Claims{}, ErrInvalidToken
	}
	roleStr, _ := claims["role"].(string)
	role := user.Role(roleStr)
	if !role.IsValid() {
		return Claims{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return Claims{UserID: id, Email: email, Role: role}, nil
}
