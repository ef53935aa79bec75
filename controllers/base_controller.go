package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"leave-tools-backend/lib/gate"
	leavehandler "leave-tools-backend/lib/leave"
	leavestore "leave-tools-backend/lib/leave/store"
	"leave-tools-backend/lib/utils/lock"
	"leave-tools-backend/lib/workbook"
	apimodels "leave-tools-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("unable to parse request body")
		return errors.New("unable to read request data")
	}
	return nil
}

// SendError maps domain errors to a status code and the response envelope.
// Access errors carry a fixed message so nothing about the configured secret leaks.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	switch {
	case leavehandler.IsValidation(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, leavestore.ErrNotFound), errors.Is(err, leavestore.ErrInvalidID):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(leavestore.ErrNotFound.Error()))
	case errors.Is(err, leavestore.ErrAlreadyExists), errors.Is(err, lock.ErrLocked):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, gate.ErrAccessDenied), errors.Is(err, gate.ErrLocked):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("access denied"))
	case errors.Is(err, workbook.ErrWorkbookNotFound), errors.Is(err, workbook.ErrSheetNotFound), errors.Is(err, workbook.ErrNotXLSX):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError(err.Error()))
	}
	log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
