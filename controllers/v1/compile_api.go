package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"leave-tools-backend/controllers"
	"leave-tools-backend/lib/compiler"
	authutils "leave-tools-backend/lib/utils/auth-utils"
	"leave-tools-backend/middleware"
	apimodels "leave-tools-backend/models/api"
)

type compileApiController struct {
	controllers.BaseAPIController
}

func InitCompileApiRouters(app *fiber.App) {
	controller := compileApiController{}
	app.Use(middleware.SessionRequired())
	app.Use(middleware.UnlockRequired())
	app.Post("/", controller.compile)
	app.Get("history", controller.history)
}

// @Summary Compile leave requests into the workbook
// @Tags Compile
// @Description Merges every stored request into the leave sheet. Unlocked sessions only.
// @Param   Authorization		header		string	true	"Session token"
// @Success 200 {object} apimodels.Response{data=compileapimodels.CompileResult}
// @Failure 403 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/compile [post]
func (c *compileApiController) compile(ctx *fiber.Ctx) error {
	sess, err := authutils.GetSession(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session required"))
	}
	resp, err := compiler.Instance.Compile(ctx.UserContext(), sess)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Compile history
// @Tags Compile
// @Param   Authorization		header		string	true	"Session token"
// @Param	limit	query	int	false	"max records, 20 by default"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/compile/history [get]
func (c *compileApiController) history(ctx *fiber.Ctx) error {
	list, err := compiler.Instance.History(ctx.QueryInt("limit"))
	if err != nil {
		if errors.Is(err, compiler.ErrHistoryDisabled) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
