package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"leave-tools-backend/lib/gate"
	authutils "leave-tools-backend/lib/utils/auth-utils"
	apimodels "leave-tools-backend/models/api"
)

func SessionRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    gate.Instance.SigningKey(),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session required"))
		},
	})
}

// UnlockRequired lets through only sessions that passed the admin password check.
func UnlockRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		sess, err := authutils.GetSession(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session required"))
		}
		if gate.Require(sess) != nil {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("access denied"))
		}
		return ctx.Next()
	}
}
