package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
// Los productos siempre cuelgan de una categoría: /categories/{category}/products.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto en una categoría
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string                  true  "Clave de la categoría"
// @Param        body      body  dto.SaveProductRequest  true  "Producto completo"
// @Success      201       {object}  dto.ProductResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/categories/{category}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	categoryKey := c.Params("category")
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	img, closeImg, err := imageFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo de imagen inválido"})
	}
	defer closeImg()
	out, err := h.uc.Create(c.Context(), categoryKey, in, img)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar producto (reemplazo total)
// @Description  Escribe el registro completo: los campos omitidos quedan en su valor cero.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        category  path  string                  true  "Clave de la categoría"
// @Param        key       path  string                  true  "Clave del producto"
// @Param        body      body  dto.SaveProductRequest  true  "Producto completo"
// @Success      200       {object}  dto.ProductResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/categories/{category}/products/{key} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	categoryKey := c.Params("category")
	key := c.Params("key")
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	img, closeImg, err := imageFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "archivo de imagen inválido"})
	}
	defer closeImg()
	out, err := h.uc.Update(c.Context(), categoryKey, key, in, img)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        category  path  string  true  "Clave de la categoría"
// @Param        key       path  string  true  "Clave del producto"
// @Success      204       "Eliminado (también si no existía)"
// @Router       /api/categories/{category}/products/{key} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("category"), c.Params("key")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByCategory godoc
// @Summary      Listar productos de una categoría
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category  path  string  true  "Clave de la categoría"
// @Success      200       {object}  dto.ProductListResponse
// @Router       /api/categories/{category}/products [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context(), c.Params("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar el árbol completo de productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductTreeResponse
// @Router       /api/products [get]
func (h *ProductHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
