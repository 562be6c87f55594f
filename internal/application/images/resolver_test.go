package images_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chicvault/admin-api/internal/application/images"
	"github.com/chicvault/admin-api/internal/domain/entity"
)

const testPlaceholder = "https://via.placeholder.com/150"

// fakeBlob resuelve solo los nombres presentes en urls; el resto falla.
type fakeBlob struct {
	urls map[string]string
}

func (f *fakeBlob) Upload(_ context.Context, name string, _ io.Reader) (string, error) {
	return "https://cdn.example.com/" + name, nil
}

func (f *fakeBlob) DownloadURL(_ context.Context, name string) (string, error) {
	url, ok := f.urls[name]
	if !ok {
		return "", errors.New("blob no encontrado")
	}
	return url, nil
}

func newResolver(urls map[string]string) *images.Resolver {
	return images.NewResolver(&fakeBlob{urls: urls}, testPlaceholder)
}

func TestResolve_ReferenciaVaciaSeDevuelveTalCual(t *testing.T) {
	r := newResolver(nil)
	assert.Equal(t, "", r.Resolve(context.Background(), ""),
		"una referencia vacía significa 'sin imagen', no placeholder")
}

func TestResolve_URLHTTPPasaSinCambios(t *testing.T) {
	r := newResolver(nil)
	url := "https://cdn.example.com/ya-resuelta.png"
	assert.Equal(t, url, r.Resolve(context.Background(), url))
}

func TestResolve_ReferenciaInternaResuelveElUltimoSegmento(t *testing.T) {
	r := newResolver(map[string]string{
		"vestido.png": "https://cdn.example.com/vestido.png",
	})
	got := r.Resolve(context.Background(), "gs://chic-vault.appspot.com/imagenes/vestido.png")
	assert.Equal(t, "https://cdn.example.com/vestido.png", got)
}

func TestResolve_BlobAusenteEntregaPlaceholder(t *testing.T) {
	r := newResolver(nil)
	got := r.Resolve(context.Background(), "gs://chic-vault.appspot.com/no-existe.png")
	assert.Equal(t, testPlaceholder, got,
		"un blob que no resuelve nunca bloquea el render: se entrega el placeholder")
}

func TestResolve_URLVaciaDelBlobEntregaPlaceholder(t *testing.T) {
	r := newResolver(map[string]string{"rota.png": ""})
	got := r.Resolve(context.Background(), "gs://bucket/rota.png")
	assert.Equal(t, testPlaceholder, got)
}

// Un fallo de resolución en una entidad no contamina a las demás de la colección.
func TestResolveCategories_FalloAislado(t *testing.T) {
	r := newResolver(map[string]string{
		"ropa.png": "https://cdn.example.com/ropa.png",
	})
	in := map[string]entity.Category{
		"Ropa":     {Key: "Ropa", Name: "Ropa", ImageURL: "gs://bucket/ropa.png"},
		"Calzado":  {Key: "Calzado", Name: "Calzado", ImageURL: "gs://bucket/calzado.png"},
		"Sin%20Im": {Key: "Sin%20Im", Name: "Sin Im", ImageURL: ""},
	}
	out := r.ResolveCategories(context.Background(), in)

	assert.Equal(t, "https://cdn.example.com/ropa.png", out["Ropa"].ImageURL)
	assert.Equal(t, testPlaceholder, out["Calzado"].ImageURL,
		"la categoría con blob roto recibe placeholder sin afectar al resto")
	assert.Equal(t, "", out["Sin%20Im"].ImageURL)
}

func TestResolveFeatured_PreservaElOrden(t *testing.T) {
	r := newResolver(map[string]string{"a.png": "https://cdn.example.com/a.png"})
	in := []entity.FeaturedProduct{
		{Product: entity.Product{Name: "A", ImageURL: "gs://bucket/a.png"}},
		{Product: entity.Product{Name: "B", ImageURL: "gs://bucket/b.png"}},
	}
	out := r.ResolveFeatured(context.Background(), in)

	assert.Equal(t, "A", out[0].Name)
	assert.Equal(t, "https://cdn.example.com/a.png", out[0].ImageURL)
	assert.Equal(t, "B", out[1].Name)
	assert.Equal(t, testPlaceholder, out[1].ImageURL)
}

func TestResolveOrders_ResuelveLasLineas(t *testing.T) {
	r := newResolver(nil)
	in := []entity.Order{{
		ID: "o1",
		Items: []entity.OrderItem{
			{ProductName: "Vestido", ImageURL: "gs://bucket/vestido.png"},
			{ProductName: "Bolso", ImageURL: "https://cdn.example.com/bolso.png"},
		},
	}}
	out := r.ResolveOrders(context.Background(), in)

	assert.Equal(t, testPlaceholder, out[0].Items[0].ImageURL)
	assert.Equal(t, "https://cdn.example.com/bolso.png", out[0].Items[1].ImageURL)
}
