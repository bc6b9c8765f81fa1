package handler

import (
	"errors"

	"mingle_social/middleware"
	"mingle_social/service"
	"mingle_social/store"
	"mingle_social/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomSvc *service.RoomService
}

func NewRoomHandler(roomSvc *service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// ListRooms 获取当前用户参与的全部房间
func (h *RoomHandler) ListRooms(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	rooms, err := h.roomSvc.ListRooms(userID)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"rooms": rooms})
}

// GetRoom 按 id 获取房间
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}

	room, err := h.roomSvc.GetRoom(roomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "room not found")
			return
		}
		utils.InternalServerError(c, err.Error())
		return
	}
	utils.SuccessResponse(c, room)
}

// CreateRoom 按两个用户名创建房间
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req struct {
		Username1 string `json:"username1" binding:"required"`
		Username2 string `json:"username2" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	room, err := h.roomSvc.CreateRoom(req.Username1, req.Username2)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			utils.NotFound(c, "one or both users do not exist")
		case errors.Is(err, service.ErrRoomExists):
			utils.Conflict(c, "room already exists")
		case errors.Is(err, service.ErrSameUser):
			utils.BadRequest(c, "cannot create a room with yourself")
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}
	utils.SuccessWithMessage(c, "room created", room)
}
