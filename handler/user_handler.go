package handler

import (
	"errors"

	"mingle_social/filter"
	"mingle_social/model"
	"mingle_social/service"
	"mingle_social/store"
	"mingle_social/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc *service.UserService
}

func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 获取用户列表，查询串作为过滤条件（含 categories.category_id 嵌套匹配）
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers()
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	constraints := filter.FromQuery(c.Request.URL.Query())
	utils.SuccessResponse(c, filter.Apply(users, constraints))
}

// GetUserByUsername 按用户名获取用户
func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	user, err := h.userSvc.GetByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, user)
}

// GetUserByFirebaseID 按 firebase id 获取用户
func (h *UserHandler) GetUserByFirebaseID(c *gin.Context) {
	user, err := h.userSvc.GetByFirebaseID(c.Param("firebaseId"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, user)
}

// CreateUser 创建用户
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if err := h.userSvc.Create(&user); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, user)
}

// UpdateUser 更新用户档案
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	user.ID = userID

	if err := h.userSvc.Update(&user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, user)
}

// DeleteUser 删除用户
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.userSvc.Delete(userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "user not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "user deleted", nil)
}
