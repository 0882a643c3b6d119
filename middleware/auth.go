// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"enigmaquest/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stashes the caller's
// identity in the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, errMsg := parseBearerToken(c)
	if errMsg != "" {
		return unauthorized(c, errMsg)
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("role", claims["role"])

	return c.Next()
}

// AdminAuthMiddleware additionally requires the admin role.
func AdminAuthMiddleware(c *fiber.Ctx) error {
	claims, errMsg := parseBearerToken(c)
	if errMsg != "" {
		return unauthorized(c, errMsg)
	}

	role, ok := claims["role"].(string)
	if !ok || role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{
			"success": false,
			"error":   "Access denied. Admin privileges required.",
		})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("role", role)

	return c.Next()
}

// parseBearerToken validates the Authorization header and returns the token
// claims, or an error message for the 401 response.
func parseBearerToken(c *fiber.Ctx) (jwt.MapClaims, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, "Missing authorization header"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Invalid authorization header format"
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, "Invalid or expired token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "Invalid token claims"
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, "Token expired"
	}

	return claims, ""
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(401).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

// GetUserID extracts the authenticated user's ID from the request locals.
func GetUserID(c *fiber.Ctx) (uint, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return 0, fiber.NewError(401, "User not authenticated")
	}

	// JWT numeric claims decode as float64
	if id, ok := userID.(float64); ok {
		return uint(id), nil
	}

	if id, ok := userID.(uint); ok {
		return id, nil
	}

	return 0, fiber.NewError(401, "Invalid user ID format")
}

// GetUsername extracts the authenticated username from the request locals.
func GetUsername(c *fiber.Ctx) (string, error) {
	username := c.Locals("username")
	if username == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}

	if name, ok := username.(string); ok {
		return name, nil
	}

	return "", fiber.NewError(401, "Invalid username format")
}

// IsAdmin reports whether the request carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, ok := c.Locals("role").(string)
	return ok && role == models.RoleAdmin
}
