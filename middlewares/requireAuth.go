package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth validates the bearer token and attaches its claims to the
// request context under "user". Identity is entirely claim-derived; no
// session state is kept server-side.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx.Set("user", claims)
		ctx.Next()
	}
}

// UserID extracts the authenticated user's id from context claims.
func UserID(ctx *gin.Context) (uint, bool) {
	claims, ok := userClaims(ctx)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(id), true
}

// UserName extracts the authenticated user's display name.
func UserName(ctx *gin.Context) string {
	claims, ok := userClaims(ctx)
	if !ok {
		return ""
	}
	name, _ := claims["name"].(string)
	return name
}

// UserRole extracts the authenticated user's role.
func UserRole(ctx *gin.Context) string {
	claims, ok := userClaims(ctx)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

func userClaims(ctx *gin.Context) (jwt.MapClaims, bool) {
	value, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := value.(jwt.MapClaims)
	return claims, ok
}
