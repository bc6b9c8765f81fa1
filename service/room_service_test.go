package service

import (
	"testing"

	"mingle_social/model"
	"mingle_social/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRoom(t *testing.T) {
	m := store.NewMemory()
	svc := NewRoomService(m, m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")

	room, err := svc.CreateRoom("alice", "bob")
	require.NoError(t, err)
	assert.NotZero(t, room.ID)
	assert.Equal(t, alice.ID, room.User1ID)
	assert.Equal(t, bob.ID, room.User2ID)
	assert.True(t, room.Added)
	assert.False(t, room.CreatedAt.IsZero())
}

// 对无序用户对 {A,B} 只能建一次房，参数顺序颠倒同样冲突
func TestCreateRoomPairUniqueness(t *testing.T) {
	m := store.NewMemory()
	svc := NewRoomService(m, m)

	seedUser(t, m, "alice", "Alice", "Ng")
	seedUser(t, m, "bob", "Bob", "Lam")

	_, err := svc.CreateRoom("alice", "bob")
	require.NoError(t, err)

	_, err = svc.CreateRoom("alice", "bob")
	assert.ErrorIs(t, err, ErrRoomExists)

	_, err = svc.CreateRoom("bob", "alice")
	assert.ErrorIs(t, err, ErrRoomExists)
}

func TestCreateRoomUserNotFound(t *testing.T) {
	m := store.NewMemory()
	svc := NewRoomService(m, m)

	seedUser(t, m, "alice", "Alice", "Ng")

	_, err := svc.CreateRoom("alice", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.CreateRoom("ghost", "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateRoomWithSelf(t *testing.T) {
	m := store.NewMemory()
	svc := NewRoomService(m, m)

	seedUser(t, m, "alice", "Alice", "Ng")

	_, err := svc.CreateRoom("alice", "alice")
	assert.ErrorIs(t, err, ErrSameUser)
}

func TestListRooms(t *testing.T) {
	m := store.NewMemory()
	svc := NewRoomService(m, m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")
	carol := seedUser(t, m, "carol", "Carol", "Wu")

	_, err := svc.CreateRoom("alice", "bob")
	require.NoError(t, err)
	_, err = svc.CreateRoom("carol", "alice")
	require.NoError(t, err)

	// 自配对不应出现在列表里（绕过服务层直接写入）
	require.NoError(t, m.CreateRoom(&model.Room{User1ID: alice.ID, User2ID: alice.ID, Added: true}))

	rooms, err := svc.ListRooms(alice.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)

	names := map[string]bool{}
	for _, room := range rooms {
		names[room.OtherUsername] = true
	}
	assert.True(t, names["bob"])
	assert.True(t, names["carol"])

	// 无关用户只看到自己的房间
	rooms, err = svc.ListRooms(bob.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "alice", rooms[0].OtherUsername)

	rooms, err = svc.ListRooms(carol.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
}

func TestGetRoom(t *testing.T) {
	m := store.NewMemory()
	svc := NewRoomService(m, m)

	seedUser(t, m, "alice", "Alice", "Ng")
	seedUser(t, m, "bob", "Bob", "Lam")

	created, err := svc.CreateRoom("alice", "bob")
	require.NoError(t, err)

	room, err := svc.GetRoom(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, room.ID)

	_, err = svc.GetRoom(9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
