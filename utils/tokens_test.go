package utils

import (
	"testing"

	"github.com/miracle-naturals/miracle-api/models"
	"gorm.io/gorm"
)

func testUser() models.User {
	return models.User{
		Model:    gorm.Model{ID: 42},
		Name:     "Token Tester",
		Username: "t@x.com",
		Email:    "t@x.com",
	}
}

func TestTokenPairRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := testUser()

	t.Run("access token carries identity claims", func(t *testing.T) {
		token, err := GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}

		claims, err := ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken: %v", err)
		}
		if claims["token_type"] != "access" {
			t.Errorf("token_type = %v, want access", claims["token_type"])
		}
		if claims["user_id"].(float64) != 42 {
			t.Errorf("user_id = %v, want 42", claims["user_id"])
		}
		if claims["username"] != "t@x.com" {
			t.Errorf("username = %v, want t@x.com", claims["username"])
		}
	})

	t.Run("refresh token carries a jti", func(t *testing.T) {
		token, jti, err := GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("GenerateRefreshToken: %v", err)
		}
		if jti == "" {
			t.Fatal("empty jti")
		}

		claims, err := ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken: %v", err)
		}
		if claims["token_type"] != "refresh" {
			t.Errorf("token_type = %v, want refresh", claims["token_type"])
		}
		if claims["jti"] != jti {
			t.Errorf("jti claim = %v, want %v", claims["jti"], jti)
		}
	})

	t.Run("tampered signature is rejected", func(t *testing.T) {
		token, err := GenerateAccessToken(user)
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		t.Setenv("JWT_SECRET", "a-different-secret")
		if _, err := ParseToken(token); err == nil {
			t.Error("token signed with another secret parsed successfully")
		}
	})
}
