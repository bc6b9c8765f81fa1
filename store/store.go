package store

import (
	"errors"

	"mingle_social/model"
)

// ErrNotFound 记录不存在（非网关故障），上层用 errors.Is 判定
var ErrNotFound = errors.New("record not found")

// UserStore 用户持久化网关
type UserStore interface {
	CreateUser(user *model.User) error
	GetUserByID(id uint) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByFirebaseID(firebaseID string) (*model.User, error)
	// ListUsers 返回全部用户，附带其分类关联
	ListUsers() ([]model.User, error)
	UpdateUser(user *model.User) error
	DeleteUser(id uint) error
}

// FriendStore 好友关系边持久化网关
type FriendStore interface {
	// HasEdgeForRecipient 判断接收方是否已存在任意关系边
	HasEdgeForRecipient(recipientID uint) (bool, error)
	CreateEdge(edge *model.UserFriend) error
	// ReplacePendingWithAccepted 在单个事务内删除 (userID, senderID) 的
	// 待处理边并插入不带 message 的已接受边，两条语句同生共死
	ReplacePendingWithAccepted(userID, senderID uint) error
	// DeleteEdge 删除有序对的边，边不存在时静默成功
	DeleteEdge(userID, senderID uint) error
	ListFriends(userID uint) ([]model.FriendSummary, error)
	ListIncomingRequests(userID uint) ([]model.FriendRequestItem, error)
}

// RoomStore 房间持久化网关
type RoomStore interface {
	// ListRoomsForUser 返回用户参与的全部房间并附带对方用户名，
	// 排除 user1_id = user2_id 的自配对
	ListRoomsForUser(userID uint) ([]model.RoomListItem, error)
	GetRoomByID(id uint) (*model.Room, error)
	// FindRoomByPair 按无序对查找房间（两种列序都算命中）
	FindRoomByPair(user1ID, user2ID uint) (*model.Room, error)
	CreateRoom(room *model.Room) error
}

// AssociationStore 用户-分类 / 用户-活动关联持久化网关
type AssociationStore interface {
	AddCategoryLink(link *model.UserCategory) error
	// RemoveCategoryLink 行不存在时静默成功
	RemoveCategoryLink(userID, categoryID uint) error
	ListCategoryLinks(userID uint) ([]model.UserCategory, error)
	GetCategoryLink(userID, categoryID uint) (*model.UserCategory, error)

	AddEventLink(link *model.UserEvent) error
	RemoveEventLink(userID, eventID uint) error
	ListEventLinks(userID uint) ([]model.UserEvent, error)
	GetEventLink(userID, eventID uint) (*model.UserEvent, error)
	// UpdateEventLink 行不存在时返回 ErrNotFound
	UpdateEventLink(link *model.UserEvent) error

	ListUsersAttendingEvent(eventID uint) ([]model.User, error)
}

// Store 聚合全部持久化网关
type Store interface {
	UserStore
	FriendStore
	RoomStore
	AssociationStore
}
