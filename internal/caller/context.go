package caller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsKey is where the JWT gate stores the verified token.
const LocalsKey = "user"

var ErrNoCaller = errors.New("no verified token in context")

// Context is the identity attached to a request after token verification.
type Context struct {
	Subject string
	Claims  jwt.MapClaims
}

// FromCtx extracts the caller from Fiber context locals.
func FromCtx(c *fiber.Ctx) (*Context, error) {
	token, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok || token == nil {
		return nil, ErrNoCaller
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	return &Context{Subject: sub, Claims: claims}, nil
}
