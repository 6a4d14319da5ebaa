package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/growshop/internal/catalog/domain"
	"github.com/tair/growshop/pkg/jsonstore"
)

const productsJSON = `[
  {"id":"1","slug":"maceta-10l","name":{"es":"Maceta","ca":"Test","en":"Pot"},"description":{"es":"","ca":"","en":""},"price":20,"images":[],"categoryId":"c1","brand":"Acme","stock":3,"featured":true,"new":false},
  {"id":"2","slug":"sustrato","name":{"es":"Sustrato","ca":"Substrat","en":"Substrate"},"description":{"es":"","ca":"","en":""},"price":50,"priceOffer":40,"images":["/a.jpg"],"categoryId":"c2","brand":"Bio","stock":0,"featured":false,"new":true},
  {"id":"3","slug":"sustrato","name":{"es":"Roto","ca":"","en":""},"description":{"es":"","ca":"","en":""},"price":10,"priceOffer":12,"images":[],"categoryId":"c2","brand":"Bio","stock":1,"featured":false,"new":false}
]`

const categoriesJSON = `[
  {"id":"c2","slug":"sustratos","name":{"es":"Sustratos","ca":"Substrats","en":"Substrates"},"description":{"es":"","ca":"","en":""},"order":2},
  {"id":"c1","slug":"macetas","name":{"es":"Macetas","ca":"Testos","en":"Pots"},"description":{"es":"","ca":"","en":""},"order":1}
]`

func newStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProductsFile), []byte(productsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CategoriesFile), []byte(categoriesJSON), 0o644))
	return jsonstore.New(dir)
}

func TestJSONProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewJSONProductRepository(newStore(t))

	all := repo.FindAll(ctx)
	require.Len(t, all, 3)
	require.NotNil(t, all[1].PriceOffer)
	assert.Equal(t, 40.0, all[1].EffectivePrice())
	assert.Nil(t, all[0].PriceOffer)

	p, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Substrate", p.Name.Get(domain.LocaleEN))

	p, err = repo.FindBySlug(ctx, "maceta-10l")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = repo.FindByID(ctx, "404")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = repo.FindBySlug(ctx, "none")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestJSONProductRepositoryVerify(t *testing.T) {
	repo := NewJSONProductRepository(newStore(t))

	// product 3 is invalid (incomplete name, offer above price) and repeats a slug
	assert.Equal(t, 2, repo.Verify(context.Background()))
	assert.Len(t, repo.FindAll(context.Background()), 3)
}

func TestJSONCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewJSONCategoryRepository(newStore(t))

	all := repo.FindAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "c2", all[0].ID, "file order is preserved")

	c, err := repo.FindBySlug(ctx, "macetas")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Order)

	_, err = repo.FindByID(ctx, "c9")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
