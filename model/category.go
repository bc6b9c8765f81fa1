package model

import "time"

// Category 兴趣分类表
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// UserCategory 用户-分类关联表
type UserCategory struct {
	UserID     uint      `json:"user_id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (UserCategory) TableName() string {
	return "user_categories"
}
