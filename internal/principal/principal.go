// Package principal resolves the authenticated actor from a request context.
package principal

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated actor making a request.
type Principal struct {
	ID    uint
	Email string
}

// FromContext extracts the principal from JWT claims placed in Fiber locals
// by the auth middleware. Returns nil when the request is unauthenticated or
// the token is malformed.
func FromContext(c *fiber.Ctx) *Principal {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil
	}
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil
	}

	p := &Principal{ID: uint(id)}
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	return p
}
