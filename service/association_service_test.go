package service

import (
	"testing"

	"mingle_social/model"
	"mingle_social/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	m := store.NewMemory()
	svc := NewAssociationService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")

	link, err := svc.AddCategory(alice.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), link.CategoryID)

	links, err := svc.ListCategories(alice.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, uint(3), links[0].CategoryID)

	got, err := svc.GetCategory(alice.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.UserID)

	require.NoError(t, svc.RemoveCategory(alice.ID, 3))
	// 幂等删除
	require.NoError(t, svc.RemoveCategory(alice.ID, 3))

	links, err = svc.ListCategories(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	_, err = svc.GetCategory(alice.ID, 3)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEventLifecycle(t *testing.T) {
	m := store.NewMemory()
	svc := NewAssociationService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")

	link, err := svc.AddEvent(alice.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, "interested", link.Status)

	links, err := svc.ListEvents(alice.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	got, err := svc.GetEvent(alice.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, uint(11), got.EventID)

	require.NoError(t, svc.RemoveEvent(alice.ID, 11))
	require.NoError(t, svc.RemoveEvent(alice.ID, 11))

	_, err = svc.GetEvent(alice.ID, 11)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateEvent(t *testing.T) {
	m := store.NewMemory()
	svc := NewAssociationService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")

	_, err := svc.AddEvent(alice.ID, 11)
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(alice.ID, 11, model.UserEventPatch{Status: strPtr("going")})
	require.NoError(t, err)
	assert.Equal(t, "going", updated.Status)

	got, err := svc.GetEvent(alice.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, "going", got.Status)

	// 行不存在时更新失败
	_, err = svc.UpdateEvent(alice.ID, 99, model.UserEventPatch{Status: strPtr("going")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListUsersAttendingEvent(t *testing.T) {
	m := store.NewMemory()
	svc := NewAssociationService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")
	seedUser(t, m, "carol", "Carol", "Wu")

	_, err := svc.AddEvent(alice.ID, 11)
	require.NoError(t, err)
	_, err = svc.AddEvent(bob.ID, 11)
	require.NoError(t, err)

	users, err := svc.ListUsersAttendingEvent(11)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	users, err = svc.ListUsersAttendingEvent(42)
	require.NoError(t, err)
	assert.Empty(t, users)
}
