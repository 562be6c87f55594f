package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/application/usecase"
)

// FeaturedHandler maneja las peticiones HTTP para productos destacados.
// Los destacados viven en una secuencia ordenada y se direccionan por posición.
type FeaturedHandler struct {
	uc *usecase.FeaturedUseCase
}

// NewFeaturedHandler construye el handler.
func NewFeaturedHandler(uc *usecase.FeaturedUseCase) *FeaturedHandler {
	return &FeaturedHandler{uc: uc}
}

func parsePosition(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("position"))
}

// Create godoc
// @Summary      Agregar destacado al final de la secuencia
// @Tags         featured
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveFeaturedRequest  true  "Destacado completo"
// @Success      201   {object}  dto.FeaturedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/featured [post]
func (h *FeaturedHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveFeaturedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	img, closeImg, err := imageFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo de imagen inválido"})
	}
	defer closeImg()
	out, err := h.uc.Create(c.Context(), in, img)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar destacado por posición (reemplazo total)
// @Tags         featured
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        position  path  int                      true  "Posición en la secuencia"
// @Param        body      body  dto.SaveFeaturedRequest  true  "Destacado completo"
// @Success      200       {object}  dto.FeaturedResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/featured/{position} [put]
func (h *FeaturedHandler) Update(c *fiber.Ctx) error {
	position, err := parsePosition(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_POSITION", Message: "position debe ser un entero"})
	}
	var in dto.SaveFeaturedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	img, closeImg, err := imageFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo de imagen inválido"})
	}
	defer closeImg()
	out, err := h.uc.Update(c.Context(), position, in, img)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar destacado por posición
// @Description  Los destacados posteriores se recorren una posición hacia atrás.
// @Tags         featured
// @Security     Bearer
// @Param        position  path  int  true  "Posición en la secuencia"
// @Success      204       "Eliminado"
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/featured/{position} [delete]
func (h *FeaturedHandler) Delete(c *fiber.Ctx) error {
	position, err := parsePosition(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_POSITION", Message: "position debe ser un entero"})
	}
	if err := h.uc.Delete(c.Context(), position); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar destacados en orden
// @Tags         featured
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FeaturedListResponse
// @Router       /api/featured [get]
func (h *FeaturedHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
