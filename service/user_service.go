package service

import (
	"errors"
	"fmt"

	"mingle_social/model"
	"mingle_social/store"
)

// UserService 用户档案管理
type UserService struct {
	store store.UserStore
}

func NewUserService(s store.UserStore) *UserService {
	return &UserService{store: s}
}

// ListUsers 获取全部用户（含分类关联，供查询串过滤使用）
func (s *UserService) ListUsers() ([]model.User, error) {
	users, err := s.store.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByUsername 按用户名获取用户，不存在时返回 store.ErrNotFound
func (s *UserService) GetByUsername(username string) (*model.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetByFirebaseID 按 firebase id 获取用户
func (s *UserService) GetByFirebaseID(firebaseID string) (*model.User, error) {
	user, err := s.store.GetUserByFirebaseID(firebaseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Create 创建用户
func (s *UserService) Create(user *model.User) error {
	if err := s.store.CreateUser(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update 更新用户档案，不存在时返回 store.ErrNotFound
func (s *UserService) Update(user *model.User) error {
	if err := s.store.UpdateUser(user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete 删除用户，不存在时返回 store.ErrNotFound
func (s *UserService) Delete(id uint) error {
	if err := s.store.DeleteUser(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
