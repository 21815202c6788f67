package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zomio-storefront/internal/domain"
	"zomio-storefront/internal/storage"
)

func testProduct(id string, price int64) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "snacks",
		Sizes:    []string{"Small", "Large"},
		InStock:  true,
	}
}

func TestAdd_MergesSameProductAndSize(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(storage.NewMemory(), nil)

	p := testProduct("p1", 25)
	first, err := repo.Add(ctx, p, 2, "Large")
	require.NoError(t, err)
	second, err := repo.Add(ctx, p, 3, "Large")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAdd_DifferentSizeIsSeparateLine(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(storage.NewMemory(), nil)

	p := testProduct("p1", 25)
	_, err := repo.Add(ctx, p, 1, "Small")
	require.NoError(t, err)
	_, err = repo.Add(ctx, p, 1, "Large")
	require.NoError(t, err)

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestTotals_TrackEveryMutation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(storage.NewMemory(), nil)

	_, err := repo.Add(ctx, testProduct("p1", 25), 2, "")
	require.NoError(t, err)
	item, err := repo.Add(ctx, testProduct("p2", 40), 3, "")
	require.NoError(t, err)

	price, err := repo.TotalPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25*2+40*3), price)

	count, err := repo.TotalItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.NoError(t, repo.SetQuantity(ctx, item.ID, 1))
	price, err = repo.TotalPrice(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25*2+40), price)

	require.NoError(t, repo.Clear(ctx))
	price, err = repo.TotalPrice(ctx)
	require.NoError(t, err)
	assert.Zero(t, price)
	count, err = repo.TotalItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSetQuantity_ZeroAndNegativeRemove(t *testing.T) {
	ctx := context.Background()

	for _, qty := range []int{0, -5} {
		repo := NewMemory(storage.NewMemory(), nil)
		item, err := repo.Add(ctx, testProduct("p1", 25), 2, "")
		require.NoError(t, err)

		require.NoError(t, repo.SetQuantity(ctx, item.ID, qty))
		items, err := repo.Items(ctx)
		require.NoError(t, err)
		assert.Empty(t, items, "quantity %d should remove the item", qty)
	}
}

func TestSetQuantity_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(storage.NewMemory(), nil)
	_, err := repo.Add(ctx, testProduct("p1", 25), 2, "")
	require.NoError(t, err)

	require.NoError(t, repo.SetQuantity(ctx, "missing", 7))
	require.NoError(t, repo.Remove(ctx, "missing"))

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRehydrate_FromStoredCart(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	repo := NewMemory(kv, nil)
	_, err := repo.Add(ctx, testProduct("p1", 25), 2, "Small")
	require.NoError(t, err)

	reloaded := NewMemory(kv, nil)
	items, err := reloaded.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRehydrate_CorruptValueLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(StateKey, []byte("{not json")))

	repo := NewMemory(kv, nil)
	items, err := repo.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAdd_CopiesProductValue(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(storage.NewMemory(), nil)

	p := testProduct("p1", 25)
	_, err := repo.Add(ctx, p, 1, "")
	require.NoError(t, err)

	p.Price = 999
	p.Sizes[0] = "changed"

	items, err := repo.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(25), items[0].Product.Price)
	assert.Equal(t, "Small", items[0].Product.Sizes[0])
}
