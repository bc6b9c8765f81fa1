package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mingle_social/model"
	"mingle_social/store"

	"github.com/redis/go-redis/v9"
)

// RoomService 私聊房间管理
type RoomService struct {
	rooms store.RoomStore
	users store.UserStore
	rdb   *redis.Client // 可选，为 nil 时跳过分布式锁
}

func NewRoomService(rooms store.RoomStore, users store.UserStore) *RoomService {
	return &RoomService{rooms: rooms, users: users}
}

func NewRoomServiceWithRedis(rooms store.RoomStore, users store.UserStore, rdb *redis.Client) *RoomService {
	return &RoomService{rooms: rooms, users: users, rdb: rdb}
}

// ListRooms 获取用户参与的全部房间，附带对方用户名，排除自配对
func (s *RoomService) ListRooms(userID uint) ([]model.RoomListItem, error) {
	rooms, err := s.rooms.ListRoomsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// GetRoom 按 id 获取房间，不存在时返回 store.ErrNotFound
func (s *RoomService) GetRoom(roomID uint) (*model.Room, error) {
	room, err := s.rooms.GetRoomByID(roomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

// CreateRoom 按用户名创建房间
// 对无序用户对 {A,B} 最多创建一次，已存在时返回 ErrRoomExists。
func (s *RoomService) CreateRoom(username1, username2 string) (*model.Room, error) {
	user1, err := s.resolveUser(username1)
	if err != nil {
		return nil, err
	}
	user2, err := s.resolveUser(username2)
	if err != nil {
		return nil, err
	}

	if user1.ID == user2.ID {
		return nil, ErrSameUser
	}

	if s.rdb != nil {
		unlock, err := s.acquirePairLock(user1.ID, user2.ID)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	_, err = s.rooms.FindRoomByPair(user1.ID, user2.ID)
	if err == nil {
		return nil, ErrRoomExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing room: %w", err)
	}

	room := &model.Room{
		User1ID: user1.ID,
		User2ID: user2.ID,
		Added:   true,
	}
	if err := s.rooms.CreateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) resolveUser(username string) (*model.User, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve user %q: %w", username, err)
	}
	return user, nil
}

// acquirePairLock 以排序后的用户对为 key 抢占 Redis 锁，多实例下避免并发重复建房
func (s *RoomService) acquirePairLock(user1ID, user2ID uint) (func(), error) {
	ctx := context.Background()

	smaller, larger := user1ID, user2ID
	if smaller > larger {
		smaller, larger = larger, smaller
	}
	lockKey := fmt.Sprintf("lock:create_room:%d:%d", smaller, larger)

	// 最多等待 3 秒
	for i := 0; i < 30; i++ {
		ok, err := s.rdb.SetNX(ctx, lockKey, "1", 5*time.Second).Result()
		if err == nil && ok {
			return func() { s.rdb.Del(ctx, lockKey) }, nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to acquire lock for creating room")
}
