package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chicvault/admin-api/internal/application/usecase"
)

// imageFromRequest extrae el archivo "image" de una petición multipart.
// Devuelve nil sin error cuando la petición no trae archivo (el registro
// conserva la URL enviada en el campo imageUrl). El cierre del archivo queda a
// cargo del llamador vía la función devuelta.
func imageFromRequest(c *fiber.Ctx) (*usecase.ImageUpload, func(), error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// fiber devuelve error tanto si no hay multipart como si falta el campo.
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &usecase.ImageUpload{Name: fh.Filename, Reader: f}, func() { _ = f.Close() }, nil
}
