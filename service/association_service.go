package service

import (
	"errors"
	"fmt"

	"mingle_social/model"
	"mingle_social/store"
)

// AssociationService 用户-分类 / 用户-活动多对多关联管理
type AssociationService struct {
	store store.AssociationStore
}

func NewAssociationService(s store.AssociationStore) *AssociationService {
	return &AssociationService{store: s}
}

// AddCategory 给用户添加分类关联
func (s *AssociationService) AddCategory(userID, categoryID uint) (*model.UserCategory, error) {
	link := &model.UserCategory{UserID: userID, CategoryID: categoryID}
	if err := s.store.AddCategoryLink(link); err != nil {
		return nil, fmt.Errorf("failed to add category: %w", err)
	}
	return link, nil
}

// RemoveCategory 移除分类关联，行不存在时同样成功
func (s *AssociationService) RemoveCategory(userID, categoryID uint) error {
	if err := s.store.RemoveCategoryLink(userID, categoryID); err != nil {
		return fmt.Errorf("failed to remove category: %w", err)
	}
	return nil
}

// ListCategories 获取用户的全部分类关联（未过滤，查询串过滤由调用方事后应用）
func (s *AssociationService) ListCategories(userID uint) ([]model.UserCategory, error) {
	links, err := s.store.ListCategoryLinks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return links, nil
}

// GetCategory 获取单条分类关联，不存在时返回 store.ErrNotFound
func (s *AssociationService) GetCategory(userID, categoryID uint) (*model.UserCategory, error) {
	link, err := s.store.GetCategoryLink(userID, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return link, nil
}

// AddEvent 给用户添加活动关联
func (s *AssociationService) AddEvent(userID, eventID uint) (*model.UserEvent, error) {
	link := &model.UserEvent{UserID: userID, EventID: eventID}
	if err := s.store.AddEventLink(link); err != nil {
		return nil, fmt.Errorf("failed to add event: %w", err)
	}
	return link, nil
}

// RemoveEvent 移除活动关联，行不存在时同样成功
func (s *AssociationService) RemoveEvent(userID, eventID uint) error {
	if err := s.store.RemoveEventLink(userID, eventID); err != nil {
		return fmt.Errorf("failed to remove event: %w", err)
	}
	return nil
}

// ListEvents 获取用户的全部活动关联
func (s *AssociationService) ListEvents(userID uint) ([]model.UserEvent, error) {
	links, err := s.store.ListEventLinks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return links, nil
}

// GetEvent 获取单条活动关联，不存在时返回 store.ErrNotFound
func (s *AssociationService) GetEvent(userID, eventID uint) (*model.UserEvent, error) {
	link, err := s.store.GetEventLink(userID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return link, nil
}

// UpdateEvent 更新活动关联的可变字段，行不存在时返回 store.ErrNotFound
func (s *AssociationService) UpdateEvent(userID, eventID uint, patch model.UserEventPatch) (*model.UserEvent, error) {
	link, err := s.store.GetEventLink(userID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if patch.Status != nil {
		link.Status = *patch.Status
	}
	if err := s.store.UpdateEventLink(link); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return link, nil
}

// ListUsersAttendingEvent 查询参加某活动的全部用户
func (s *AssociationService) ListUsersAttendingEvent(eventID uint) ([]model.User, error) {
	users, err := s.store.ListUsersAttendingEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attending users: %w", err)
	}
	return users, nil
}
