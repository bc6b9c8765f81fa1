package model

import "time"

// Event 活动表
type Event struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"type:varchar(200);not null"`
	Location *string   `json:"location,omitempty" gorm:"type:varchar(200)"`
	StartsAt time.Time `json:"starts_at"`
}

func (Event) TableName() string {
	return "events"
}

// UserEvent 用户-活动关联表，status 记录参与状态
type UserEvent struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	EventID   uint      `json:"event_id" gorm:"primaryKey"`
	Status    string    `json:"status" gorm:"type:varchar(20);default:interested"` // 'interested' | 'going' | 'declined'
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (UserEvent) TableName() string {
	return "user_events"
}

// UserEventPatch 活动关联可更新字段
type UserEventPatch struct {
	Status *string `json:"status"`
}
