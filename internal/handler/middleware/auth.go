package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"tablebook/internal/domain/staff"
	"tablebook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAccountIDKey    = "account_id"
	ctxRestaurantIDKey = "account_restaurant_id"
	ctxRoleKey         = "account_role"
)

var roleHierarchy = map[staff.Role]int{
	staff.RoleManager: 1,
	staff.RoleOwner:   2,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		accountID, restaurantID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAccountIDKey, accountID)
		c.Set(ctxRestaurantIDKey, restaurantID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"account_id":    accountID.String(),
			"restaurant_id": restaurantID.String(),
			"role":          string(role),
		})
		c.Next()
	}
}

// RequireRestaurant ensures the authenticated staff member belongs to the
// restaurant addressed by the :id path parameter.
func (m *AuthMiddleware) RequireRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, ok := GetRestaurantID(c)
		if !ok {
			// Should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		pathID, err := uuid.Parse(c.Param("id"))
		if err != nil || pathID != restaurantID {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You don't have access to this restaurant",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasMinimumRole(role, minRole staff.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOK := roleHierarchy[minRole]
	return ok && minOK && level >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRestaurantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxRestaurantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (staff.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(staff.Role)
	return role, ok
}
