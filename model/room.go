package model

import "time"

// Room 私聊房间表
// 对任意无序用户对 {A,B} 最多存在一个房间，(A,B) 与 (B,A) 视为同一对。
type Room struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	User1ID   uint      `json:"user1_id" gorm:"not null;index"`
	User2ID   uint      `json:"user2_id" gorm:"not null;index"`
	Added     bool      `json:"added" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

// RoomListItem 房间列表项（附带对方用户名）
type RoomListItem struct {
	ID            uint      `json:"id"`
	User1ID       uint      `json:"user1_id"`
	User2ID       uint      `json:"user2_id"`
	Added         bool      `json:"added"`
	CreatedAt     time.Time `json:"created_at"`
	OtherUsername string    `json:"other_username"`
}
