package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"leave-tools-backend/controllers"
	"leave-tools-backend/lib/consultants"
	apimodels "leave-tools-backend/models/api"
)

type consultantApiController struct {
	controllers.BaseAPIController
}

func InitConsultantApiRouters(app *fiber.App) {
	controller := consultantApiController{}
	app.Get("consultants", controller.list)
}

// @Summary Active consultants
// @Tags Consultants
// @Description Names from the roster sheet of the workbook
// @Success 200 {object} apimodels.Response{data=[]string}
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/consultants [get]
func (c *consultantApiController) list(ctx *fiber.Ctx) error {
	list, err := consultants.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
