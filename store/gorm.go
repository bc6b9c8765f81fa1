package store

import (
	"errors"

	"mingle_social/model"

	"gorm.io/gorm"
)

// Gorm 基于 PostgreSQL 的持久化网关实现
type Gorm struct {
	db *gorm.DB
}

var _ Store = (*Gorm)(nil)

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// AutoMigrate 同步全部表结构
func (s *Gorm) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Event{},
		&model.UserFriend{},
		&model.Room{},
		&model.UserCategory{},
		&model.UserEvent{},
	)
}

// ---- 用户 ----

func (s *Gorm) CreateUser(user *model.User) error {
	return s.db.Create(user).Error
}

func (s *Gorm) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	err := s.db.Preload("Categories").First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Gorm) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	err := s.db.Preload("Categories").Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Gorm) GetUserByFirebaseID(firebaseID string) (*model.User, error) {
	var user model.User
	err := s.db.Where("firebase_id = ?", firebaseID).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Gorm) ListUsers() ([]model.User, error) {
	var users []model.User
	err := s.db.Preload("Categories").Order("id").Find(&users).Error
	return users, err
}

func (s *Gorm) UpdateUser(user *model.User) error {
	result := s.db.Model(&model.User{}).Where("id = ?", user.ID).Updates(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) DeleteUser(id uint) error {
	result := s.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- 好友关系边 ----

func (s *Gorm) HasEdgeForRecipient(recipientID uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.UserFriend{}).
		Where("users_id = ?", recipientID).
		Count(&count).Error
	return count > 0, err
}

func (s *Gorm) CreateEdge(edge *model.UserFriend) error {
	return s.db.Create(edge).Error
}

func (s *Gorm) ReplacePendingWithAccepted(userID, senderID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("users_id = ? AND senders_id = ?", userID, senderID).
			Delete(&model.UserFriend{}).Error; err != nil {
			return err
		}
		return tx.Create(&model.UserFriend{UsersID: userID, SendersID: senderID}).Error
	})
}

func (s *Gorm) DeleteEdge(userID, senderID uint) error {
	return s.db.Where("users_id = ? AND senders_id = ?", userID, senderID).
		Delete(&model.UserFriend{}).Error
}

func (s *Gorm) ListFriends(userID uint) ([]model.FriendSummary, error) {
	var friends []model.FriendSummary
	err := s.db.Table("users u").
		Select("u.id, u.first_name, u.last_name").
		Joins("INNER JOIN users_friends uf ON u.id = uf.users_id").
		Where("uf.senders_id = ?", userID).
		Find(&friends).Error
	return friends, err
}

func (s *Gorm) ListIncomingRequests(userID uint) ([]model.FriendRequestItem, error) {
	var requests []model.FriendRequestItem
	err := s.db.Table("users u").
		Select("u.id, u.first_name, u.last_name, uf.message").
		Joins("INNER JOIN users_friends uf ON u.id = uf.senders_id").
		Where("uf.users_id = ?", userID).
		Find(&requests).Error
	return requests, err
}

// ---- 房间 ----

func (s *Gorm) ListRoomsForUser(userID uint) ([]model.RoomListItem, error) {
	var rooms []model.RoomListItem
	err := s.db.Table("rooms r").
		Select("DISTINCT r.id, r.user1_id, r.user2_id, r.added, r.created_at, "+
			"CASE WHEN r.user1_id = ? THEN u2.username ELSE u1.username END AS other_username", userID).
		Joins("JOIN users u1 ON u1.id = r.user1_id").
		Joins("JOIN users u2 ON u2.id = r.user2_id").
		Where("(r.user1_id = ? AND r.user2_id != ?) OR (r.user1_id != ? AND r.user2_id = ?)",
			userID, userID, userID, userID).
		Find(&rooms).Error
	return rooms, err
}

func (s *Gorm) GetRoomByID(id uint) (*model.Room, error) {
	var room model.Room
	err := s.db.First(&room, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (s *Gorm) FindRoomByPair(user1ID, user2ID uint) (*model.Room, error) {
	var room model.Room
	err := s.db.Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
		user1ID, user2ID, user2ID, user1ID).
		First(&room).Error
	if err != nil {
		return nil, translate(err)
	}
	return &room, nil
}

func (s *Gorm) CreateRoom(room *model.Room) error {
	return s.db.Create(room).Error
}

// ---- 用户-分类 / 用户-活动关联 ----

func (s *Gorm) AddCategoryLink(link *model.UserCategory) error {
	return s.db.Create(link).Error
}

func (s *Gorm) RemoveCategoryLink(userID, categoryID uint) error {
	return s.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		Delete(&model.UserCategory{}).Error
}

func (s *Gorm) ListCategoryLinks(userID uint) ([]model.UserCategory, error) {
	var links []model.UserCategory
	err := s.db.Where("user_id = ?", userID).Find(&links).Error
	return links, err
}

func (s *Gorm) GetCategoryLink(userID, categoryID uint) (*model.UserCategory, error) {
	var link model.UserCategory
	err := s.db.Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&link).Error
	if err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (s *Gorm) AddEventLink(link *model.UserEvent) error {
	return s.db.Create(link).Error
}

func (s *Gorm) RemoveEventLink(userID, eventID uint) error {
	return s.db.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.UserEvent{}).Error
}

func (s *Gorm) ListEventLinks(userID uint) ([]model.UserEvent, error) {
	var links []model.UserEvent
	err := s.db.Where("user_id = ?", userID).Find(&links).Error
	return links, err
}

func (s *Gorm) GetEventLink(userID, eventID uint) (*model.UserEvent, error) {
	var link model.UserEvent
	err := s.db.Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&link).Error
	if err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (s *Gorm) UpdateEventLink(link *model.UserEvent) error {
	result := s.db.Model(&model.UserEvent{}).
		Where("user_id = ? AND event_id = ?", link.UserID, link.EventID).
		Update("status", link.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) ListUsersAttendingEvent(eventID uint) ([]model.User, error) {
	var users []model.User
	err := s.db.Table("users u").
		Select("u.*").
		Joins("INNER JOIN user_events ue ON ue.user_id = u.id").
		Where("ue.event_id = ?", eventID).
		Find(&users).Error
	return users, err
}

// translate 把 gorm 的未命中错误转成网关哨兵错误
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
