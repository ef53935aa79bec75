package authutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"leave-tools-backend/lib/gate"
)

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// GetSession returns the gate session verified by the session middleware.
func GetSession(ctx *fiber.Ctx) (gate.Session, error) {
	return gate.FromClaims(GetClaims(ctx))
}
