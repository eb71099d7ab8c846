package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/zohaibkhan/booking-calendar-backend/config"
	"github.com/zohaibkhan/booking-calendar-backend/utils"
)

// AuthUser is the verified identity placed in the request context.
type AuthUser struct {
	UID           string `json:"uid"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
}

// AuthMiddleware verifies the bearer credential before any store access.
// Verification goes through Firebase when configured; with AUTH_DEV_SECRET
// set and Firebase absent, HS256 tokens are accepted instead so the API can
// run without cloud credentials.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication token required",
				"code":  "AUTH_TOKEN_MISSING",
			})
			return
		}

		var user *AuthUser
		var err error
		if utils.IsFirebaseEnabled() {
			user, err = verifyFirebaseToken(c, token)
		} else if cfg.AuthDevSecret != "" {
			user, err = verifyDevToken(cfg.AuthDevSecret, token)
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication failed",
				"code":  "AUTH_FAILED",
			})
			return
		}

		if err != nil {
			status, code, msg := classifyAuthError(err)
			c.AbortWithStatusJSON(status, gin.H{"error": msg, "code": code})
			return
		}

		c.Set("user", *user)
		c.Next()
	}
}

func verifyFirebaseToken(c *gin.Context, token string) (*AuthUser, error) {
	decoded, err := utils.GetAuthClient().VerifyIDToken(c.Request.Context(), token)
	if err != nil {
		return nil, err
	}

	user := &AuthUser{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := decoded.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		user.Name = name
	}
	return user, nil
}

func verifyDevToken(secret, tokenStr string) (*AuthUser, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	user := &AuthUser{}
	if sub, _ := claims.GetSubject(); sub != "" {
		user.UID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}
	return user, nil
}

// classifyAuthError maps verification failures onto the machine-readable
// 401 codes the client acts on.
func classifyAuthError(err error) (int, string, string) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "expired"):
		return http.StatusUnauthorized, "AUTH_TOKEN_EXPIRED", "Token expired"
	case strings.Contains(msg, "invalid"), strings.Contains(msg, "malformed"):
		return http.StatusUnauthorized, "AUTH_TOKEN_INVALID", "Invalid token"
	default:
		return http.StatusUnauthorized, "AUTH_FAILED", "Authentication failed"
	}
}

// GetUserFromContext retrieves the verified identity set by AuthMiddleware.
func GetUserFromContext(c *gin.Context) (AuthUser, bool) {
	raw, exists := c.Get("user")
	if !exists {
		return AuthUser{}, false
	}
	user, ok := raw.(AuthUser)
	return user, ok
}
