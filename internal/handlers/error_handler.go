package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cloud-media-platform/internal/apperrors"
)

// NewErrorHandler is the single boundary that maps errors onto the
// {error:{code,message,details?}} envelope. Backend failure detail reaches
// the client only in development.
func NewErrorHandler(log *zap.SugaredLogger, dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fiber.Map{
				"code":    fiberErrorCode(fe.Code),
				"message": fe.Message,
			}})
		}

		e := apperrors.FromError(err)
		if e.Status >= fiber.StatusInternalServerError {
			log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
			if dev && e.Cause() != nil {
				e = e.WithDetails(e.Cause().Error())
			}
		}
		return c.Status(e.Status).JSON(fiber.Map{"error": e})
	}
}

func fiberErrorCode(status int) string {
	switch {
	case status == fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case status == fiber.StatusNotFound:
		return "NOT_FOUND"
	case status == fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case status >= 400 && status < 500:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
