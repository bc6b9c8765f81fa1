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

type AssociationHandler struct {
	assocSvc *service.AssociationService
}

func NewAssociationHandler(assocSvc *service.AssociationService) *AssociationHandler {
	return &AssociationHandler{assocSvc: assocSvc}
}

// AddCategory 给用户添加分类
func (h *AssociationHandler) AddCategory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	link, err := h.assocSvc.AddCategory(userID, categoryID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "category added", link)
}

// ListCategories 获取用户的分类关联，查询串作为过滤条件
func (h *AssociationHandler) ListCategories(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	links, err := h.assocSvc.ListCategories(userID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	constraints := filter.FromQuery(c.Request.URL.Query())
	utils.SuccessResponse(c, filter.Apply(links, constraints))
}

// GetCategory 获取单条分类关联
func (h *AssociationHandler) GetCategory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	link, err := h.assocSvc.GetCategory(userID, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, link)
}

// RemoveCategory 移除分类关联
func (h *AssociationHandler) RemoveCategory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	categoryID, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	if err := h.assocSvc.RemoveCategory(userID, categoryID); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "category removed", nil)
}

// AddEvent 给用户添加活动
func (h *AssociationHandler) AddEvent(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}

	link, err := h.assocSvc.AddEvent(userID, eventID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "event added", link)
}

// ListEvents 获取用户的活动关联
func (h *AssociationHandler) ListEvents(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	links, err := h.assocSvc.ListEvents(userID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, links)
}

// GetEvent 获取单条活动关联
func (h *AssociationHandler) GetEvent(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}

	link, err := h.assocSvc.GetEvent(userID, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, link)
}

// UpdateEvent 更新活动关联的参与状态等可变字段
func (h *AssociationHandler) UpdateEvent(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}

	var patch model.UserEventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	link, err := h.assocSvc.UpdateEvent(userID, eventID, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, link)
}

// RemoveEvent 移除活动关联
func (h *AssociationHandler) RemoveEvent(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}

	if err := h.assocSvc.RemoveEvent(userID, eventID); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "event removed", nil)
}

// ListAttending 查询参加某活动的全部用户，查询串作为过滤条件
func (h *AssociationHandler) ListAttending(c *gin.Context) {
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		return
	}

	users, err := h.assocSvc.ListUsersAttendingEvent(eventID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	constraints := filter.FromQuery(c.Request.URL.Query())
	utils.SuccessResponse(c, filter.Apply(users, constraints))
}
