package usecase

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/chicvault/admin-api/internal/domain/store"
)

// ImageUpload archivo de imagen que acompaña a un alta o edición. Name es el
// nombre del archivo tal cual lo envió el cliente; el blob se guarda con ese
// nombre, así que dos archivos homónimos se sobreescriben.
type ImageUpload struct {
	Name   string
	Reader io.Reader
}

// uploadImage sube la imagen y devuelve su URL de descarga. Se invoca antes de
// escribir el registro para que la URL resultante sustituya al campo imageUrl.
func uploadImage(ctx context.Context, blobs store.Blob, img *ImageUpload) (string, error) {
	return blobs.Upload(ctx, img.Name, img.Reader)
}

// QueryEscape codifica el espacio como '+' y escapa ! ' ( ) *, que las claves
// existentes en el almacén llevan sin codificar; este replacer los restaura.
var keyEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// deriveKey deriva la clave del nodo URL-encodificando el nombre: los espacios
// como %20 y los caracteres ! ' ( ) * sin codificar, para coincidir con las
// claves que ya existen en el almacén. La clave se deriva solo al crear; nunca
// se recalcula al editar.
func deriveKey(name string) string {
	return keyEscaper.Replace(url.QueryEscape(name))
}
