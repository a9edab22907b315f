package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/snapshot"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(snapshot.NewStore(t.TempDir()), nopLogger{}, nil)
}

func TestRepository_AddAssignsSequentialIDs(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, created, err := repo.Add(ctx, domain.Client{
		FirstName: "Anna",
		LastName:  "Petrova",
		Telephone: ptr.Ptr("+79990001122"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), first.ID)

	second, created, err := repo.Add(ctx, domain.Client{
		FirstName: "Boris",
		LastName:  "Ivanov",
		Email:     ptr.Ptr("boris@example.com"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), second.ID)
}

func TestRepository_AddDeduplicatesByContact(t *testing.T) {
	t.Run("same telephone", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, _, err := repo.Add(ctx, domain.Client{
			FirstName: "Anna",
			LastName:  "Petrova",
			Telephone: ptr.Ptr("+79990001122"),
		})
		require.NoError(t, err)

		resolved, created, err := repo.Add(ctx, domain.Client{
			FirstName: "Anya",
			LastName:  "Petrova",
			Telephone: ptr.Ptr("+79990001122"),
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, resolved.ID)
		assert.Equal(t, "Anna", resolved.FirstName)

		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("same email", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, _, err := repo.Add(ctx, domain.Client{
			FirstName: "Anna",
			LastName:  "Petrova",
			Email:     ptr.Ptr("anna@example.com"),
		})
		require.NoError(t, err)

		resolved, created, err := repo.Add(ctx, domain.Client{
			FirstName: "Other",
			LastName:  "Person",
			Telephone: ptr.Ptr("+70000000000"),
			Email:     ptr.Ptr("anna@example.com"),
		})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, resolved.ID)
	})
}

func TestRepository_AddRequiresContactChannel(t *testing.T) {
	repo := newRepo(t)

	_, _, err := repo.Add(context.Background(), domain.Client{
		FirstName: "Anna",
		LastName:  "Petrova",
	})
	assert.ErrorIs(t, err, ErrNoContactChannel)
}

func TestRepository_FindByContact(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	added, _, err := repo.Add(ctx, domain.Client{
		FirstName: "Anna",
		LastName:  "Petrova",
		Telephone: ptr.Ptr("+79990001122"),
		Email:     ptr.Ptr("anna@example.com"),
	})
	require.NoError(t, err)

	byPhone, err := repo.FindByTelephone(ctx, "+79990001122")
	require.NoError(t, err)
	assert.Equal(t, added.ID, byPhone.ID)

	byEmail, err := repo.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, added.ID, byEmail.ID)

	_, err = repo.FindByTelephone(ctx, "+71111111111")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestRepository_SnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo := NewRepository(snapshot.NewStore(dir), nopLogger{}, nil)
	_, _, err := repo.Add(ctx, domain.Client{
		FirstName: "Anna",
		LastName:  "Petrova",
		Telephone: ptr.Ptr("+79990001122"),
	})
	require.NoError(t, err)

	// Новый репозиторий над тем же каталогом продолжает нумерацию
	reloaded := NewRepository(snapshot.NewStore(dir), nopLogger{}, nil)

	got, err := reloaded.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)

	next, created, err := reloaded.Add(ctx, domain.Client{
		FirstName: "Boris",
		LastName:  "Ivanov",
		Email:     ptr.Ptr("boris@example.com"),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), next.ID)
}
