package middleware

import (
	"strings"

	"inkpress/helper"
	"inkpress/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const principalKey = "principal"

// Claims mirrors the token payload issued by the external identity
// provider. This service never issues tokens, it only verifies them.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the provider-issued bearer token and stores the
// resulting principal in the request context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			helper.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			helper.SendUnauthorized(c, "Bearer token required")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil {
			helper.SendUnauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}
		if !token.Valid {
			helper.SendUnauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(principalKey, models.Principal{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     models.Role(claims.Role),
		})

		c.Next()
	}
}

// CurrentPrincipal returns the authenticated principal stored by
// AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (models.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := v.(models.Principal)
	return principal, ok
}

// RequireModerator gates routes that decide or inspect the moderation
// queue. The definitive role check still lives in the workflow; this only
// keeps non-moderators out of the admin surface.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			helper.SendUnauthorized(c, "Principal not found")
			c.Abort()
			return
		}
		if !principal.Moderator() {
			helper.SendForbidden(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
