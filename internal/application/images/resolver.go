package images

import (
	"context"
	"strings"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/domain/store"
)

// Esquema reservado de las referencias internas al almacén de objetos.
const internalScheme = "gs://"

// Resolver traduce referencias internas de imagen a URLs de descarga.
// Nunca devuelve error ni bloquea el render: si el blob no resuelve (ausente, sin
// permiso, red caída), entrega la imagen placeholder fija.
type Resolver struct {
	blobs       store.Blob
	placeholder string
}

// NewResolver construye el resolutor con la URL de placeholder configurada.
func NewResolver(blobs store.Blob, placeholderURL string) *Resolver {
	return &Resolver{blobs: blobs, placeholder: placeholderURL}
}

// Resolve devuelve una URL mostrable para ref:
//   - ref vacía: se devuelve tal cual (ausencia = "sin imagen").
//   - referencia interna gs://: el último segmento de la ruta es el nombre del
//     blob; se resuelve contra el almacén y ante cualquier fallo se devuelve el
//     placeholder.
//   - cualquier otra cosa (URL http(s) ya resuelta): se devuelve sin cambios.
//
// Es seguro invocarlo para cada entidad de una colección por separado: cada
// resolución es independiente y un fallo no afecta a las demás.
func (r *Resolver) Resolve(ctx context.Context, ref string) string {
	if ref == "" || !strings.HasPrefix(ref, internalScheme) {
		return ref
	}
	name := ref[strings.LastIndex(ref, "/")+1:]
	url, err := r.blobs.DownloadURL(ctx, name)
	if err != nil || url == "" {
		return r.placeholder
	}
	return url
}

// ResolveCategories devuelve la colección con todas las imágenes resueltas.
func (r *Resolver) ResolveCategories(ctx context.Context, in map[string]entity.Category) map[string]entity.Category {
	out := make(map[string]entity.Category, len(in))
	for key, c := range in {
		c.ImageURL = r.Resolve(ctx, c.ImageURL)
		out[key] = c
	}
	return out
}

// ResolveProducts devuelve el subárbol categoría -> clave -> producto con todas
// las imágenes resueltas.
func (r *Resolver) ResolveProducts(ctx context.Context, in map[string]map[string]entity.Product) map[string]map[string]entity.Product {
	out := make(map[string]map[string]entity.Product, len(in))
	for categoryKey, group := range in {
		resolved := make(map[string]entity.Product, len(group))
		for key, p := range group {
			p.ImageURL = r.Resolve(ctx, p.ImageURL)
			resolved[key] = p
		}
		out[categoryKey] = resolved
	}
	return out
}

// ResolveFeatured devuelve la secuencia de destacados con las imágenes resueltas,
// preservando el orden.
func (r *Resolver) ResolveFeatured(ctx context.Context, in []entity.FeaturedProduct) []entity.FeaturedProduct {
	out := make([]entity.FeaturedProduct, len(in))
	for i, fp := range in {
		fp.ImageURL = r.Resolve(ctx, fp.ImageURL)
		out[i] = fp
	}
	return out
}

// ResolveOrders devuelve los pedidos con las imágenes de sus líneas resueltas.
func (r *Resolver) ResolveOrders(ctx context.Context, in []entity.Order) []entity.Order {
	out := make([]entity.Order, len(in))
	for i, o := range in {
		items := make([]entity.OrderItem, len(o.Items))
		for j, it := range o.Items {
			it.ImageURL = r.Resolve(ctx, it.ImageURL)
			items[j] = it
		}
		o.Items = items
		out[i] = o
	}
	return out
}
