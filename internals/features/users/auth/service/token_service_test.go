// internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"gerejaku_backend/internals/configs"
	userModel "gerejaku_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

func TestCreateAccessToken(t *testing.T) {
	cfg := &configs.Config{JWTSecret: "test-secret", AccessTokenTTL: time.Hour}
	u := &userModel.UserModel{
		ID:       42,
		Username: strPtr("shepherd"),
		Level:    userModel.LevelChristian,
		Role:     userModel.RoleGroupLeader,
	}

	signed, err := CreateAccessToken(cfg, u)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims["sub"] != "shepherd" {
		t.Errorf("sub = %v", claims["sub"])
	}
	if id, _ := claims["id"].(float64); int64(id) != 42 {
		t.Errorf("id = %v", claims["id"])
	}
	if claims["role"] != "group_leader" {
		t.Errorf("role = %v", claims["role"])
	}

	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != time.Hour {
		t.Errorf("token lifetime = %v, want 1h", got)
	}
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	cfg := &configs.Config{JWTSecret: "  ", AccessTokenTTL: time.Hour}
	if _, err := CreateAccessToken(cfg, &userModel.UserModel{ID: 1}); err == nil {
		t.Fatal("expected an error for a blank secret")
	}
}
