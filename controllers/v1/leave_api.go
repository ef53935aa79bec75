package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"leave-tools-backend/controllers"
	pdfexport "leave-tools-backend/lib/export/pdf"
	xlsexport "leave-tools-backend/lib/export/xls"
	leavehandler "leave-tools-backend/lib/leave"
	apimodels "leave-tools-backend/models/api"
	leaveapimodels "leave-tools-backend/models/api/leave"
)

type leaveApiController struct {
	controllers.BaseAPIController
}

func InitLeaveApiRouters(app *fiber.App) {
	controller := leaveApiController{}
	app.Get("list", controller.list)
	app.Get("export/xlsx", controller.exportXlsx)
	app.Get("export/pdf", controller.exportPdf)
	app.Post("/", controller.create)
	app.Get(":id", controller.get)
	app.Put(":id", controller.update)
	app.Delete(":id", controller.delete)
}

// @Summary Create leave request
// @Tags Leave
// @Description Create leave request
// @Param	body	body		leaveapimodels.LeaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave [post]
func (c *leaveApiController) create(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := leavehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Get leave request
// @Tags Leave
// @Param   id	path    string	true	"request ID"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [get]
func (c *leaveApiController) get(ctx *fiber.Ctx) error {
	resp, err := leavehandler.Instance.Get(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update leave request
// @Tags Leave
// @Description Full replace: name, start_date, end_date and leave_type are required, omitted notes are cleared, omitted approved keeps the stored value. Advances updated_at.
// @Param   id	path    string	true	"request ID"
// @Param	body	body	leaveapimodels.LeaveData	true	"request body"
// @Success 200 {object} apimodels.Response{data=leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [put]
func (c *leaveApiController) update(ctx *fiber.Ctx) error {
	var payload leaveapimodels.LeaveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := leavehandler.Instance.Update(ctx.Params("id"), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete leave request
// @Tags Leave
// @Param   id	path    string	true	"request ID"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/{id} [delete]
func (c *leaveApiController) delete(ctx *fiber.Ctx) error {
	if err := leavehandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List leave requests
// @Tags Leave
// @Param	name		query	string	false	"consultant name"
// @Param	leave_type	query	string	false	"Annual, Study, NOC"
// @Param	approval	query	string	false	"all, approved, not_approved"
// @Param	search		query	string	false	"name or notes contains"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]leaveapimodels.LeaveView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/list [get]
func (c *leaveApiController) list(ctx *fiber.Ctx) error {
	filter, err := c.filter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := leavehandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, int64(len(list))))
}

// @Summary Export leave requests to xlsx
// @Tags Leave
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/export/xlsx [get]
func (c *leaveApiController) exportXlsx(ctx *fiber.Ctx) error {
	filter, err := c.filter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := leavehandler.Instance.Records(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	buf, err := xlsexport.Instance.ExportLeaveList(list)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, attachment("xlsx"))
	return ctx.Send(buf.Bytes())
}

// @Summary Export leave requests to pdf
// @Tags Leave
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {object} apimodels.Response
// @router /api/v1/leave/export/pdf [get]
func (c *leaveApiController) exportPdf(ctx *fiber.Ctx) error {
	filter, err := c.filter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := leavehandler.Instance.Records(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	data, err := pdfexport.Instance.ExportLeaveList(list, time.Now())
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, attachment("pdf"))
	return ctx.Send(data)
}

func (c *leaveApiController) filter(ctx *fiber.Ctx) (leaveapimodels.LeaveFilter, error) {
	var filter leaveapimodels.LeaveFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return filter, err
	}
	return filter, filter.Validate()
}

func attachment(ext string) string {
	return fmt.Sprintf(`attachment; filename="leave_requests_%s.%s"`, time.Now().Format("20060102"), ext)
}
