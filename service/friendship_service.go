package service

import (
	"errors"
	"fmt"

	"mingle_social/model"
	"mingle_social/store"
)

// 领域冲突哨兵错误，由处理器层映射为对应的 HTTP 状态
var (
	ErrDuplicateRequest = errors.New("duplicate friend request")
	ErrRoomExists       = errors.New("room already exists")
	ErrUserNotFound     = errors.New("one or both users do not exist")
	ErrSameUser         = errors.New("cannot create a room with yourself")
)

// FriendshipService 好友请求生命周期管理
type FriendshipService struct {
	store store.FriendStore
}

func NewFriendshipService(s store.FriendStore) *FriendshipService {
	return &FriendshipService{store: s}
}

// SendRequest 发送好友请求
// 查重只按接收方：接收方名下已存在任意关系边即视为重复。
func (s *FriendshipService) SendRequest(recipientID, senderID uint, message *string) (*model.UserFriend, error) {
	exists, err := s.store.HasEdgeForRecipient(recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check friend request: %w", err)
	}
	if exists {
		return nil, ErrDuplicateRequest
	}

	edge := &model.UserFriend{
		UsersID:   recipientID,
		SendersID: senderID,
		Message:   message,
	}
	if err := s.store.CreateEdge(edge); err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}
	return edge, nil
}

// AcceptRequest 接受好友请求
// 删除待处理边并插入已接受边，由网关保证两条语句在同一事务内执行。
func (s *FriendshipService) AcceptRequest(userID, senderID uint) error {
	if err := s.store.ReplacePendingWithAccepted(userID, senderID); err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}
	return nil
}

// DeleteRequest 删除好友请求，边不存在时同样成功
func (s *FriendshipService) DeleteRequest(userID, senderID uint) error {
	if err := s.store.DeleteEdge(userID, senderID); err != nil {
		return fmt.Errorf("failed to delete friend request: %w", err)
	}
	return nil
}

// ListFriends 获取好友列表（senders_id = userID 的边）
func (s *FriendshipService) ListFriends(userID uint) ([]model.FriendSummary, error) {
	friends, err := s.store.ListFriends(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return friends, nil
}

// ListIncomingRequests 获取收到的好友请求（users_id = userID 的边，含留言）
func (s *FriendshipService) ListIncomingRequests(userID uint) ([]model.FriendRequestItem, error) {
	requests, err := s.store.ListIncomingRequests(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend requests: %w", err)
	}
	return requests, nil
}
