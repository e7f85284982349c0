package services

import (
	"testing"

	"shopcart_backend/internal/models"
	"shopcart_backend/internal/services/dto"
	"shopcart_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemFixture() (*memoryStore, ItemService) {
	store := newMemoryStore()
	return store, NewItemService(&fakeItemRepo{store: store})
}

func TestItemCreateAndGet(t *testing.T) {
	_, service := newItemFixture()

	item, err := service.Create("owner-1", &dto.ItemRequest{
		Title:       "Desk lamp",
		Description: "Warm white, adjustable arm",
	})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	assert.Equal(t, "owner-1", item.OwnerID)

	got, err := service.Get("owner-1", item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk lamp", got.Title)
}

func TestItemGet_NonOwnerIsForbidden(t *testing.T) {
	_, service := newItemFixture()

	item, err := service.Create("owner-1", &dto.ItemRequest{Title: "Desk lamp"})
	require.NoError(t, err)

	_, err = service.Get("someone-else", item.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)
}

func TestItemGet_Unknown(t *testing.T) {
	_, service := newItemFixture()

	_, err := service.Get("owner-1", "missing-id")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestItemList_OwnerScoped(t *testing.T) {
	_, service := newItemFixture()

	_, err := service.Create("owner-1", &dto.ItemRequest{Title: "Lamp"})
	require.NoError(t, err)
	_, err = service.Create("owner-1", &dto.ItemRequest{Title: "Chair"})
	require.NoError(t, err)
	_, err = service.Create("owner-2", &dto.ItemRequest{Title: "Table"})
	require.NoError(t, err)

	mine, err := service.List("owner-1", false)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	// Staff sees everything.
	all, err := service.List("owner-1", true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestItemUpdate_FullReplace(t *testing.T) {
	_, service := newItemFixture()

	item, err := service.Create("owner-1", &dto.ItemRequest{
		Title:       "Lamp",
		Description: "old",
	})
	require.NoError(t, err)

	updated, err := service.Update("owner-1", item.ID, &dto.ItemRequest{Title: "Floor lamp"})
	require.NoError(t, err)
	assert.Equal(t, "Floor lamp", updated.Title)
	assert.Empty(t, updated.Description, "PUT replaces every field")
}

func TestItemPatch_Sparse(t *testing.T) {
	_, service := newItemFixture()

	item, err := service.Create("owner-1", &dto.ItemRequest{
		Title:       "Lamp",
		Description: "Warm white",
	})
	require.NoError(t, err)

	patched, err := service.Patch("owner-1", item.ID, &dto.ItemPatchRequest{
		Title: strptr("Floor lamp"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Floor lamp", patched.Title)
	assert.Equal(t, "Warm white", patched.Description, "PATCH keeps omitted fields")
}

func TestItemUpdate_NonOwnerIsForbidden(t *testing.T) {
	_, service := newItemFixture()

	item, err := service.Create("owner-1", &dto.ItemRequest{Title: "Lamp"})
	require.NoError(t, err)

	_, err = service.Update("someone-else", item.ID, &dto.ItemRequest{Title: "Hijacked"})
	assert.ErrorIs(t, err, apperrors.ErrNotResourceOwner)

	got, err := service.Get("owner-1", item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Title)
}

func TestItemDelete_RemovesReferencingCartRows(t *testing.T) {
	store, service := newItemFixture()

	item, err := service.Create("owner-1", &dto.ItemRequest{Title: "Lamp"})
	require.NoError(t, err)

	cartRepo := &fakeCartRepo{store: store}
	require.NoError(t, cartRepo.Create(&models.CartItem{UserID: "buyer-1", ItemID: item.ID, Quantity: 2}))

	require.NoError(t, service.Delete("owner-1", item.ID))

	assert.Empty(t, store.items)
	assert.Empty(t, store.cartItems, "cart rows referencing the item go with it")
}
