package model

import "time"

// UserFriend 好友关系边表
// users_id 为接收方，senders_id 为发起方；同一有序对最多存在一条边。
// 带 message 的边表示待处理请求，接受后重建为不带 message 的边。
type UserFriend struct {
	UsersID   uint      `json:"users_id" gorm:"column:users_id;primaryKey"`
	SendersID uint      `json:"senders_id" gorm:"column:senders_id;primaryKey"`
	Message   *string   `json:"message,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (UserFriend) TableName() string {
	return "users_friends"
}
