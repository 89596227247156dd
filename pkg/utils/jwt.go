package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	apperrors "github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
)

type Claims struct {
	UserID  uuid.UUID `json:"uid"`
	IsStaff bool      `json:"staff"`
	// TokenUse distinguishes access tokens from refresh tokens so one cannot
	// be presented in place of the other.
	TokenUse string `json:"use"`
	jwt.RegisteredClaims
}

const (
	useAccess  = "access"
	useRefresh = "refresh"
)

// GenerateJWTToken issues the access/refresh bearer pair handed out at login.
func GenerateJWTToken(userID uuid.UUID, isStaff bool, cfg config.Config) (access string, refresh string, err error) {
	now := time.Now()

	access, err = sign(userID, isStaff, useAccess, now, time.Duration(cfg.JWT.ExpiredIn)*time.Second, cfg.JWT.Secret)
	if err != nil {
		return "", "", err
	}
	refresh, err = sign(userID, isStaff, useRefresh, now, time.Duration(cfg.JWT.RefreshExpiredIn)*time.Second, cfg.JWT.Secret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func sign(userID uuid.UUID, isStaff bool, use string, now time.Time, ttl time.Duration, secret string) (string, error) {
	claims := Claims{
		UserID:   userID,
		IsStaff:  isStaff,
		TokenUse: use,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken validates a bearer access token and returns its claims.
func ParseAccessToken(tokenString string, cfg config.Config) (*Claims, error) {
	return parse(tokenString, useAccess, cfg.JWT.Secret)
}

// ParseRefreshToken validates a refresh token and returns its claims.
func ParseRefreshToken(tokenString string, cfg config.Config) (*Claims, error) {
	return parse(tokenString, useRefresh, cfg.JWT.Secret)
}

func parse(tokenString, expectedUse, secret string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthorized("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("invalid token")
	}
	if claims.TokenUse != expectedUse {
		return nil, apperrors.Unauthorized("invalid token")
	}
	return claims, nil
}
