// Package middleware provides authentication, logging, rate limiting and
// metrics middleware for the application.
package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"dresscircle/internal/config"
	"dresscircle/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	ID       uint
	Username string
}

// VerifyToken parses and validates a signed token and returns the caller
// identity encoded in it.
func VerifyToken(secret, raw string) (Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return Identity{}, errors.New("missing subject claim")
	}
	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return Identity{}, errors.New("invalid subject claim")
	}

	identity := Identity{ID: uint(userID)}
	if name, ok := claims["username"].(string); ok {
		identity.Username = name
	}
	return identity, nil
}

// AuthRequired is a middleware that enforces authentication for protected
// routes. A missing or malformed header is 401; a token that fails
// verification is 403.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization header required"))
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid authorization header format"))
	}

	identity, err := VerifyToken(cfg.JWTSecret, parts[1])
	if err != nil {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Invalid or expired token"))
	}

	c.Locals("userID", identity.ID)
	c.Locals("username", identity.Username)

	// Sync to UserContext so the context-aware logger sees the caller.
	c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, identity.ID))

	return c.Next()
}
