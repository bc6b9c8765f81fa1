package service

import (
	"errors"
	"testing"

	"mingle_social/model"
	"mingle_social/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, m *store.Memory, username, first, last string) *model.User {
	t.Helper()
	user := &model.User{Username: username, FirstName: first, LastName: last, Age: 25}
	require.NoError(t, m.CreateUser(user))
	return user
}

func strPtr(s string) *string { return &s }

func TestSendRequest(t *testing.T) {
	m := store.NewMemory()
	svc := NewFriendshipService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")

	edge, err := svc.SendRequest(bob.ID, alice.ID, strPtr("hi"))
	require.NoError(t, err)
	assert.Equal(t, bob.ID, edge.UsersID)
	assert.Equal(t, alice.ID, edge.SendersID)
	require.NotNil(t, edge.Message)
	assert.Equal(t, "hi", *edge.Message)
}

// 查重只按接收方：同一接收方名下已有任意边时，其他发起方的请求也会被拒
func TestSendRequestDuplicateByRecipientOnly(t *testing.T) {
	m := store.NewMemory()
	svc := NewFriendshipService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")
	carol := seedUser(t, m, "carol", "Carol", "Wu")

	_, err := svc.SendRequest(bob.ID, alice.ID, strPtr("hi"))
	require.NoError(t, err)

	// 相同发起方重复请求
	_, err = svc.SendRequest(bob.ID, alice.ID, strPtr("hi again"))
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// 不同发起方对同一接收方的请求同样被拒
	_, err = svc.SendRequest(bob.ID, carol.ID, strPtr("yo"))
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// 反方向不受影响
	_, err = svc.SendRequest(carol.ID, bob.ID, nil)
	assert.NoError(t, err)
}

func TestAcceptRequest(t *testing.T) {
	m := store.NewMemory()
	svc := NewFriendshipService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")

	_, err := svc.SendRequest(bob.ID, alice.ID, strPtr("hi"))
	require.NoError(t, err)

	require.NoError(t, svc.AcceptRequest(bob.ID, alice.ID))

	// 接受后恰好剩一条边，且不再带留言
	requests, err := svc.ListIncomingRequests(bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Nil(t, requests[0].Message)

	// bob 出现在 alice 的好友列表中
	friends, err := svc.ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, model.FriendSummary{ID: bob.ID, FirstName: "Bob", LastName: "Lam"}, friends[0])
}

func TestAcceptRequestGatewayFailure(t *testing.T) {
	m := store.NewMemory()
	svc := NewFriendshipService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")

	_, err := svc.SendRequest(bob.ID, alice.ID, strPtr("hi"))
	require.NoError(t, err)

	boom := errors.New("connection reset")
	m.ForceError(boom)
	assert.ErrorIs(t, svc.AcceptRequest(bob.ID, alice.ID), boom)

	// 失败后状态回到调用前：待处理边仍在
	m.ForceError(nil)
	requests, err := svc.ListIncomingRequests(bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	require.NotNil(t, requests[0].Message)
	assert.Equal(t, "hi", *requests[0].Message)
}

func TestDeleteRequestIdempotent(t *testing.T) {
	m := store.NewMemory()
	svc := NewFriendshipService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")

	_, err := svc.SendRequest(bob.ID, alice.ID, strPtr("hi"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRequest(bob.ID, alice.ID))
	// 第二次删除同样成功
	require.NoError(t, svc.DeleteRequest(bob.ID, alice.ID))

	requests, err := svc.ListIncomingRequests(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestListIncomingRequestsProjection(t *testing.T) {
	m := store.NewMemory()
	svc := NewFriendshipService(m)

	alice := seedUser(t, m, "alice", "Alice", "Ng")
	bob := seedUser(t, m, "bob", "Bob", "Lam")

	_, err := svc.SendRequest(bob.ID, alice.ID, strPtr("let's be friends"))
	require.NoError(t, err)

	requests, err := svc.ListIncomingRequests(bob.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, alice.ID, requests[0].ID)
	assert.Equal(t, "Alice", requests[0].FirstName)
	require.NotNil(t, requests[0].Message)
	assert.Equal(t, "let's be friends", *requests[0].Message)

	// 发起方自己的请求列表为空
	requests, err = svc.ListIncomingRequests(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, requests)
}
