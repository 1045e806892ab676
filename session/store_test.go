package session

import (
	"context"
	"testing"

	"assetdesk/models"
	"assetdesk/providers"
	"assetdesk/providers/storageProvider"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employee = models.User{ID: "1", Email: "employee@example.com", Name: "John Employee", Role: models.EmployeeRole, Department: "Engineering"}

func TestStoreSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	storage := storageprovider.NewMemoryProvider()

	store := NewStore(storage)
	require.NoError(t, store.Save(ctx, "mock-jwt-token-employee", employee))
	assert.Equal(t, "mock-jwt-token-employee", store.Token())
	assert.Equal(t, &employee, store.User())

	reopened := NewStore(storage)
	require.NoError(t, reopened.Load(ctx))
	assert.Equal(t, "mock-jwt-token-employee", reopened.Token())
	assert.Equal(t, &employee, reopened.User())

	require.NoError(t, reopened.Clear(ctx))
	assert.Empty(t, reopened.Token())
	assert.Nil(t, reopened.User())
	_, ok, err := storage.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = storage.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreUserIsACopy(t *testing.T) {
	store := NewStore(storageprovider.NewMemoryProvider())
	require.NoError(t, store.Save(context.Background(), "t", employee))

	u := store.User()
	u.Name = "mutated"

	assert.Equal(t, "John Employee", store.User().Name)
}

func TestStoreLoadCorruptUser(t *testing.T) {
	ctx := context.Background()
	storage := storageprovider.NewMemoryProvider()
	require.NoError(t, storage.Set(ctx, TokenKey, "mock-jwt-token-admin"))
	require.NoError(t, storage.Set(ctx, UserKey, "{not json"))

	store := NewStore(storage)
	require.NoError(t, store.Load(ctx))

	assert.Equal(t, "mock-jwt-token-admin", store.Token())
	assert.Nil(t, store.User())
}

func TestStoreStorageFailures(t *testing.T) {
	ctx := context.Background()
	storageErr := errors.New("disk full")

	t.Run("save user failure leaves nothing behind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStorage := providers.NewMockStorageProvider(ctrl)
		gomock.InOrder(
			mockStorage.EXPECT().Set(ctx, TokenKey, "t").Return(nil),
			mockStorage.EXPECT().Set(ctx, UserKey, gomock.Any()).Return(storageErr),
			mockStorage.EXPECT().Delete(ctx, TokenKey, UserKey).Return(nil),
		)

		store := NewStore(mockStorage)
		err := store.Save(ctx, "t", employee)

		assert.True(t, errors.Is(err, storageErr))
		assert.Empty(t, store.Token())
		assert.Nil(t, store.User())
	})

	t.Run("clear drops memory even when storage fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStorage := providers.NewMockStorageProvider(ctrl)
		mockStorage.EXPECT().Set(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
		mockStorage.EXPECT().Delete(ctx, TokenKey, UserKey).Return(storageErr)

		store := NewStore(mockStorage)
		require.NoError(t, store.Save(ctx, "t", employee))
		err := store.Clear(ctx)

		assert.Error(t, err)
		assert.Empty(t, store.Token())
		assert.Nil(t, store.User())
	})

	t.Run("load failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStorage := providers.NewMockStorageProvider(ctrl)
		mockStorage.EXPECT().Get(ctx, TokenKey).Return("", false, storageErr)

		err := NewStore(mockStorage).Load(ctx)

		assert.True(t, errors.Is(err, storageErr))
	})
}
