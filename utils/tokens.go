package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/miracle-naturals/miracle-api/models"
)

const (
	AccessTokenLifetime  = time.Hour
	RefreshTokenLifetime = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func GenerateAccessToken(user models.User) (string, error) {
	return signToken(jwt.MapClaims{
		"token_type": "access",
		"user_id":    user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(AccessTokenLifetime).Unix(),
	})
}

// GenerateRefreshToken issues a refresh token carrying a jti so it can be
// tracked in redis and revoked on logout.
func GenerateRefreshToken(user models.User) (string, string, error) {
	jti := uuid.NewString()
	token, err := signToken(jwt.MapClaims{
		"token_type": "refresh",
		"user_id":    user.ID,
		"jti":        jti,
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(RefreshTokenLifetime).Unix(),
	})
	return token, jti, err
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
