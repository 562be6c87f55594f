package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicvault/admin-api/internal/application/dto"
	"github.com/chicvault/admin-api/internal/application/usecase"
	"github.com/chicvault/admin-api/internal/domain"
	"github.com/chicvault/admin-api/internal/domain/entity"
)

// fakeFeaturedRepo guarda la secuencia de destacados en memoria.
type fakeFeaturedRepo struct {
	items []entity.FeaturedProduct
}

func (r *fakeFeaturedRepo) List(_ context.Context) ([]entity.FeaturedProduct, error) {
	out := make([]entity.FeaturedProduct, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeFeaturedRepo) ReplaceAll(_ context.Context, items []entity.FeaturedProduct) error {
	r.items = make([]entity.FeaturedProduct, len(items))
	copy(r.items, items)
	return nil
}

func featuredUC(repo *fakeFeaturedRepo) *usecase.FeaturedUseCase {
	blobs := &fakeBlob{}
	return usecase.NewFeaturedUseCase(repo, blobs, testResolver(blobs))
}

func featuredEntry(name string) entity.FeaturedProduct {
	return entity.FeaturedProduct{
		Product:  entity.Product{Name: name, Price: entity.Price{Amount: *price("10.00"), Currency: entity.CurrencyCAD}},
		Category: "Ropa",
	}
}

func TestFeaturedCreate_AgregaAlFinal(t *testing.T) {
	repo := &fakeFeaturedRepo{items: []entity.FeaturedProduct{featuredEntry("P0")}}
	uc := featuredUC(repo)

	out, err := uc.Create(context.Background(), dto.SaveFeaturedRequest{
		SaveProductRequest: dto.SaveProductRequest{Name: "P1", Price: price("20.00")},
		Category:           "Calzado",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Position, "el destacado nuevo ocupa la última posición")
	require.Len(t, repo.items, 2)
	assert.Equal(t, "P1", repo.items[1].Name)
	assert.Equal(t, "Calzado", repo.items[1].Category)
}

// Borrar una posición intermedia recorre las posteriores una posición hacia atrás.
func TestFeaturedDelete_PosicionIntermediaRecorreElResto(t *testing.T) {
	repo := &fakeFeaturedRepo{items: []entity.FeaturedProduct{
		featuredEntry("P0"), featuredEntry("P1"), featuredEntry("P2"),
	}}
	uc := featuredUC(repo)

	require.NoError(t, uc.Delete(context.Background(), 1))

	require.Len(t, repo.items, 2)
	assert.Equal(t, "P0", repo.items[0].Name)
	assert.Equal(t, "P2", repo.items[1].Name, "P2 pasa a ocupar la posición 1")
}

func TestFeaturedDelete_FueraDeRango(t *testing.T) {
	repo := &fakeFeaturedRepo{items: []entity.FeaturedProduct{featuredEntry("P0")}}
	uc := featuredUC(repo)

	assert.ErrorIs(t, uc.Delete(context.Background(), 1), domain.ErrInvalidPosition)
	assert.ErrorIs(t, uc.Delete(context.Background(), -1), domain.ErrInvalidPosition)
	assert.Len(t, repo.items, 1, "un borrado fuera de rango no reescribe la secuencia")
}

func TestFeaturedUpdate_ReemplazaLaEntradaCompleta(t *testing.T) {
	repo := &fakeFeaturedRepo{items: []entity.FeaturedProduct{
		featuredEntry("P0"), featuredEntry("P1"),
	}}
	uc := featuredUC(repo)

	out, err := uc.Update(context.Background(), 0, dto.SaveFeaturedRequest{
		SaveProductRequest: dto.SaveProductRequest{Name: "P0-bis", Price: price("15.00")},
		Category:           "Accesorios",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, out.Position)
	assert.Equal(t, "P0-bis", repo.items[0].Name)
	assert.Equal(t, "P1", repo.items[1].Name, "las demás posiciones quedan intactas")
}

func TestFeaturedUpdate_FueraDeRango(t *testing.T) {
	repo := &fakeFeaturedRepo{}
	uc := featuredUC(repo)

	_, err := uc.Update(context.Background(), 0, dto.SaveFeaturedRequest{
		SaveProductRequest: dto.SaveProductRequest{Name: "X", Price: price("1.00")},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
}

// Dos borrados que parten de la misma secuencia previa: el segundo opera sobre un
// índice ya desplazado y elimina otra entrada. El direccionamiento posicional no
// lo detecta; este test documenta el comportamiento, no lo corrige.
func TestFeaturedDelete_IndiceObsoletoEliminaOtraEntrada(t *testing.T) {
	repo := &fakeFeaturedRepo{items: []entity.FeaturedProduct{
		featuredEntry("P0"), featuredEntry("P1"), featuredEntry("P2"),
	}}
	uc := featuredUC(repo)

	// Ambos clientes vieron [P0, P1, P2] y quieren borrar P1 (posición 1).
	require.NoError(t, uc.Delete(context.Background(), 1))
	require.NoError(t, uc.Delete(context.Background(), 1))

	require.Len(t, repo.items, 1)
	assert.Equal(t, "P0", repo.items[0].Name,
		"el segundo borrado eliminó P2, que ya ocupaba la posición 1")
}

func TestFeaturedList_ConservaElOrdenYAsignaPosiciones(t *testing.T) {
	repo := &fakeFeaturedRepo{items: []entity.FeaturedProduct{
		featuredEntry("P0"), featuredEntry("P1"),
	}}
	uc := featuredUC(repo)

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 0, out.Items[0].Position)
	assert.Equal(t, "P0", out.Items[0].Name)
	assert.Equal(t, 1, out.Items[1].Position)
	assert.Equal(t, "P1", out.Items[1].Name)
}
