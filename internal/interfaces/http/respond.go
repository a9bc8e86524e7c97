package http

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-admin/internal/application/dto"
	"github.com/jhoicas/backoffice-admin/internal/application/notify"
	"github.com/jhoicas/backoffice-admin/internal/application/validation"
	"github.com/jhoicas/backoffice-admin/internal/domain"
)

// writeError traduce un error de dominio a su status HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnknownConfirmation):
		status, code = fiber.StatusNotFound, "UNKNOWN_CONFIRMATION"
	case errors.Is(err, domain.ErrFormClosed):
		status, code = fiber.StatusConflict, "FORM_CLOSED"
	case errors.Is(err, domain.ErrEditLocked):
		status, code = fiber.StatusConflict, "EDIT_LOCKED"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrRowOutOfRange):
		status, code = fiber.StatusBadRequest, "ROW_OUT_OF_RANGE"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "INVALID_INPUT"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// writeNotice responde el aviso con la vista. Advertencia (validación) → 422,
// error del backend → 502, éxito o sin aviso → 200.
func writeNotice(c *fiber.Ctx, n notify.Notice, data any) error {
	status := fiber.StatusOK
	switch n.Level {
	case notify.LevelWarning:
		status = fiber.StatusUnprocessableEntity
	case notify.LevelError:
		status = fiber.StatusBadGateway
	}
	resp := dto.NoticeResponse{Data: data}
	if !n.IsZero() {
		resp.Notice = &n
	}
	return c.Status(status).JSON(resp)
}

// firstFieldError mensaje del primer campo inválido (orden alfabético).
func firstFieldError(errs validation.FieldErrors) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0] + ": " + errs[keys[0]]
}
