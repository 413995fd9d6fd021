package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"gerejaku_backend/internals/configs"
	userModel "gerejaku_backend/internals/features/users/user/model"
)

func nowUTC() time.Time { return time.Now().UTC() }

// CreateAccessToken signs an HS256 access token for the given user.
func CreateAccessToken(cfg *configs.Config, u *userModel.UserModel) (string, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	sub := ""
	if u.Username != nil {
		sub = *u.Username
	}

	claims := jwt.MapClaims{
		"sub":   sub,
		"id":    u.ID,
		"level": string(u.Level),
		"role":  string(u.Role),
		"iat":   nowUTC().Unix(),
		"exp":   nowUTC().Add(cfg.AccessTokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
