package model

import "time"

// User 用户表
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"type:varchar(50);uniqueIndex;not null"`
	FirstName  string    `json:"first_name" gorm:"type:varchar(50)"`
	LastName   string    `json:"last_name" gorm:"type:varchar(50)"`
	Age        int       `json:"age"`
	Bio        *string   `json:"bio,omitempty" gorm:"type:text"`
	ProfileImg *string   `json:"profile_img,omitempty" gorm:"type:varchar(255)"`
	FirebaseID *string   `json:"firebase_id,omitempty" gorm:"type:varchar(128);index"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// 用户关联的分类（嵌套返回，供 categories.category_id 过滤使用）
	Categories []UserCategory `json:"categories" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// FriendSummary 好友列表项（只投影展示字段）
type FriendSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FriendRequestItem 收到的好友请求列表项
type FriendRequestItem struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Message   *string `json:"message"`
}
