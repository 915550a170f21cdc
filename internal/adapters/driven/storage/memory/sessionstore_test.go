package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotish-labs/hora-cli/internal/core/domain"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	session := domain.NewChartSession()

	id, err := store.Create(session)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, session.ID)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Len(t, got.Planets, 9)
}

func TestSessionStore_Create_Nil(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Create(nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get("missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_Update(t *testing.T) {
	store := NewSessionStore()
	session := domain.NewChartSession()
	id, err := store.Create(session)
	require.NoError(t, err)

	session.SelectedHora = domain.HoraMoon
	require.NoError(t, store.Update(session))

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.HoraMoon, got.SelectedHora)
}

func TestSessionStore_Update_NotFound(t *testing.T) {
	store := NewSessionStore()
	session := domain.NewChartSession()
	session.ID = "never-created"

	assert.ErrorIs(t, store.Update(session), domain.ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	session := domain.NewChartSession()
	id, err := store.Create(session)
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))

	_, err = store.Get(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(id))
}
