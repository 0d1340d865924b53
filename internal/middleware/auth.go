package middleware

import (
	"log/slog"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/voiceforher/report-intake/internal/caller"
	"github.com/voiceforher/report-intake/internal/config"
	"github.com/voiceforher/report-intake/internal/dto"
)

// JWTProtected verifies the Authorization header against cfg.JWTSecret.
// A missing header is 401; any header that does not yield a valid token is 403.
func JWTProtected(cfg *config.Config) fiber.Handler {
	authScheme := "Bearer"
	if cfg.JWTTokenScheme == config.TokenSchemeRaw {
		authScheme = ""
	}

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.JWTSecret),
		},
		ContextKey:  caller.LocalsKey,
		TokenLookup: "header:" + fiber.HeaderAuthorization,
		AuthScheme:  authScheme,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Access denied. No token provided.",
				})
			}

			slog.Warn("token verification failed",
				"path", c.Path(),
				"trace_id", RequestID(c),
				"error", err.Error(),
			)
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Invalid or expired token.",
			})
		},
	})
}
