package repository

import (
	"context"

	"github.com/chicvault/admin-api/internal/domain/entity"
)

// FeaturedProductRepository define el puerto de persistencia para los destacados.
// El almacén guarda una única secuencia ordenada en featuredProducts: cualquier
// alta, edición o borrado reescribe el arreglo completo. Dos borrados concurrentes
// calculan posiciones sobre el arreglo previo y pueden corromper o saltarse
// entradas; es un riesgo estructural del direccionamiento posicional, no un bug
// a corregir en silencio.
type FeaturedProductRepository interface {
	List(ctx context.Context) ([]entity.FeaturedProduct, error)
	ReplaceAll(ctx context.Context, items []entity.FeaturedProduct) error
}
