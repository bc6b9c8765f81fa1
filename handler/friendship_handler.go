package handler

import (
	"errors"

	"mingle_social/middleware"
	"mingle_social/service"
	"mingle_social/utils"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	friendSvc *service.FriendshipService
}

func NewFriendshipHandler(friendSvc *service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendSvc: friendSvc}
}

// ListFriends 获取当前用户的好友列表
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	friends, err := h.friendSvc.ListFriends(userID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"friends": friends})
}

// ListRequests 获取当前用户收到的好友请求
func (h *FriendshipHandler) ListRequests(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	requests, err := h.friendSvc.ListIncomingRequests(userID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"requests": requests})
}

// SendRequest 向指定用户发送好友请求
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	senderID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	var req struct {
		RecipientID uint    `json:"recipient_id" binding:"required"`
		Message     *string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if senderID == req.RecipientID {
		utils.BadRequest(c, "cannot send request to yourself")
		return
	}

	edge, err := h.friendSvc.SendRequest(req.RecipientID, senderID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateRequest) {
			utils.Conflict(c, "duplicate friend request")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "friend request sent", edge)
}

// AcceptRequest 接受来自指定发起方的好友请求
func (h *FriendshipHandler) AcceptRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	senderID, ok := parseIDParam(c, "senderId")
	if !ok {
		return
	}

	if err := h.friendSvc.AcceptRequest(userID, senderID); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "friend request accepted", nil)
}

// DeleteRequest 删除（拒绝或撤回）好友请求
func (h *FriendshipHandler) DeleteRequest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	senderID, ok := parseIDParam(c, "senderId")
	if !ok {
		return
	}

	if err := h.friendSvc.DeleteRequest(userID, senderID); err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, "friend request deleted", nil)
}
