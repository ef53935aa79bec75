package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-tools-backend/controllers"
	"leave-tools-backend/lib/gate"
	authutils "leave-tools-backend/lib/utils/auth-utils"
	"leave-tools-backend/middleware"
	apimodels "leave-tools-backend/models/api"
	sessionapimodels "leave-tools-backend/models/api/session"
)

type sessionApiController struct {
	controllers.BaseAPIController
}

func InitSessionApiRouters(app *fiber.App) {
	controller := sessionApiController{}
	app.Post("/", controller.open)
	app.Post("unlock", middleware.SessionRequired(), controller.unlock)
}

// @Summary Open session
// @Tags Session
// @Description Opens a locked session; the token goes into the Authorization header
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionResponse}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/session [post]
func (c *sessionApiController) open(ctx *fiber.Ctx) error {
	sess, token, err := gate.Instance.NewSession()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sessionapimodels.SessionResponse{
		Token:    token,
		Unlocked: sess.Unlocked,
	}))
}

// @Summary Unlock session
// @Tags Session
// @Description Checks the admin password and returns an unlocked token for the same session
// @Param   Authorization		header		string	true	"Session token"
// @Param	body	body	sessionapimodels.UnlockRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=sessionapimodels.SessionResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/session/unlock [post]
func (c *sessionApiController) unlock(ctx *fiber.Ctx) error {
	var payload sessionapimodels.UnlockRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	sess, err := authutils.GetSession(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session required"))
	}
	sess, token, err := gate.Instance.Unlock(sess, payload.Password)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sessionapimodels.SessionResponse{
		Token:    token,
		Unlocked: sess.Unlocked,
	}))
}
