package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cloud-media-platform/internal/apperrors"
	"cloud-media-platform/internal/models"
)

// POST /api/auth/register
func (h *Handler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation("invalid request data").WithDetails(err.Error())
	}

	res, err := h.auth.Register(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// POST /api/auth/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation("invalid request data").WithDetails(err.Error())
	}

	res, err := h.auth.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
