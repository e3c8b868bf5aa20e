// Package middleware provides the Fiber middleware shared by the HTTP routes.
package middleware

import (
	"errors"

	"github.com/amirasaad/txrecords/pkg/config"
	"github.com/amirasaad/txrecords/pkg/domain"
	"github.com/amirasaad/txrecords/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected requires a valid HS256 bearer token signed with the configured
// secret. Without a secret the routes stay open and the handler only passes
// the request on.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	if cfg == nil || cfg.Secret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(cfg.Secret),
		},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return common.ProblemDetailsJSON(c, "Bad Request", err, fiber.StatusBadRequest)
	}
	return common.ProblemDetailsJSON(c, "Unauthorized", errors.Join(domain.ErrUnauthorized, err))
}
