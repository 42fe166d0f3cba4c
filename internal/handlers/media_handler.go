package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cloud-media-platform/internal/apperrors"
	"cloud-media-platform/internal/models"
	"cloud-media-platform/internal/services"
)

const defaultPageSize = 20

type Handler struct {
	auth      *services.AuthService
	media     *services.MediaService
	validate  *validator.Validate
	maxUpload int64
}

func NewHandler(authSvc *services.AuthService, mediaSvc *services.MediaService, maxUpload int64) *Handler {
	return &Handler{
		auth:      authSvc,
		media:     mediaSvc,
		validate:  validator.New(),
		maxUpload: maxUpload,
	}
}

// POST /api/media (multipart/form-data: file, description?, tags?)
func (h *Handler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.Validation("file is required")
	}
	// checked before buffering the payload; the service re-checks the
	// actual byte count
	if h.maxUpload > 0 && fileHeader.Size > h.maxUpload {
		return apperrors.PayloadTooLarge(fmt.Sprintf(
			"file size (%.2f MB) exceeds maximum allowed size (%d MB)",
			float64(fileHeader.Size)/(1024*1024), h.maxUpload/(1024*1024)))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return apperrors.Internal("cannot open uploaded file", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return apperrors.Internal("cannot read uploaded file", err)
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	in := services.UploadInput{
		OwnerID:     callerID(c),
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}
	if v := c.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := c.FormValue("tags"); v != "" {
		in.TagsJSON = &v
	}

	m, err := h.media.Upload(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// GET /api/media?page&pageSize&mediaType
func (h *Handler) List(c *fiber.Ctx) error {
	res, err := h.media.List(c.Context(), callerID(c),
		c.QueryInt("page", 1), c.QueryInt("pageSize", defaultPageSize), c.Query("mediaType"))
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /api/media/search?query&page&pageSize
func (h *Handler) Search(c *fiber.Ctx) error {
	res, err := h.media.Search(c.Context(), callerID(c),
		c.Query("query"), c.QueryInt("page", 1), c.QueryInt("pageSize", defaultPageSize))
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// GET /api/media/:id
func (h *Handler) GetByID(c *fiber.Ctx) error {
	m, err := h.media.Get(c.Context(), callerID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(m)
}

// PUT /api/media/:id
func (h *Handler) Update(c *fiber.Ctx) error {
	var req models.MediaUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.Validation("invalid request data").WithDetails(err.Error())
	}

	m, err := h.media.Update(c.Context(), callerID(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(m)
}

// DELETE /api/media/:id
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.media.Delete(c.Context(), callerID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/health
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy", "service": "cloud-media-platform"})
}
