package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/miracle-naturals/miracle-api/utils"
)

func bearerToken(ctx *gin.Context) (string, bool) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth rejects requests without a valid access token and stores the
// caller's identity on the context.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing or malformed"})
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		if tokenType, _ := claims["token_type"].(string); tokenType != "access" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		ctx.Set("userID", uint(userID))
		ctx.Set("claims", claims)
		ctx.Next()
	}
}

// OptionalAuth resolves the caller's identity when a valid access token is
// present but never rejects the request. Dual-mode cart routes use it to pick
// between the persisted and the session cart.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if tokenString, ok := bearerToken(ctx); ok {
			if claims, err := utils.ParseToken(tokenString); err == nil {
				if tokenType, _ := claims["token_type"].(string); tokenType == "access" {
					if userID, ok := claims["user_id"].(float64); ok {
						ctx.Set("userID", uint(userID))
						ctx.Set("claims", claims)
					}
				}
			}
		}
		ctx.Next()
	}
}
