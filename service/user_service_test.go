package service

import (
	"testing"

	"mingle_social/model"
	"mingle_social/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLookup(t *testing.T) {
	m := store.NewMemory()
	svc := NewUserService(m)

	fid := "firebase-abc"
	user := &model.User{Username: "alice", FirstName: "Alice", LastName: "Ng", Age: 25, FirebaseID: &fid}
	require.NoError(t, svc.Create(user))
	assert.NotZero(t, user.ID)

	got, err := svc.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.GetByUsername("ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err = svc.GetByFirebaseID("firebase-abc")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.GetByFirebaseID("nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListUsersIncludesCategories(t *testing.T) {
	m := store.NewMemory()
	userSvc := NewUserService(m)
	assocSvc := NewAssociationService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	seedUser(t, m, "bob", "Bob", "Lam")

	_, err := assocSvc.AddCategory(alice.ID, 5)
	require.NoError(t, err)

	users, err := userSvc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Len(t, users[0].Categories, 1)
	assert.Equal(t, uint(5), users[0].Categories[0].CategoryID)
	assert.Empty(t, users[1].Categories)
}

func TestUpdateAndDeleteUser(t *testing.T) {
	m := store.NewMemory()
	svc := NewUserService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")

	alice.FirstName = "Alicia"
	require.NoError(t, svc.Update(alice))

	got, err := svc.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)

	require.NoError(t, svc.Delete(alice.ID))
	assert.ErrorIs(t, svc.Delete(alice.ID), store.ErrNotFound)
}
