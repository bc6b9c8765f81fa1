package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"mingle_social/middleware"
	"mingle_social/service"
	"mingle_social/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 生产环境需要检查 Origin
		return true
	},
}

// ChatMessage 房间内广播的聊天消息
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uint      `json:"room_id"`
	SenderID  uint      `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Client 一条房间内的 WebSocket 连接
type Client struct {
	ID     uuid.UUID
	UserID uint
	RoomID uint
	Conn   *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	closed bool
}

// Hub 按房间管理 WebSocket 连接
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[uuid.UUID]*Client

	roomSvc *service.RoomService
	rdb     *redis.Client // 可选，在线状态
}

func NewHub(roomSvc *service.RoomService, rdb *redis.Client) *Hub {
	return &Hub{
		rooms:   make(map[uint]map[uuid.UUID]*Client),
		roomSvc: roomSvc,
		rdb:     rdb,
	}
}

// Register 注册客户端并标记在线
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if h.rooms[client.RoomID] == nil {
		h.rooms[client.RoomID] = make(map[uuid.UUID]*Client)
	}
	h.rooms[client.RoomID][client.ID] = client
	h.mu.Unlock()

	h.setOnline(client.UserID, true)
	log.Printf("[WS] user %d joined room %d", client.UserID, client.RoomID)
}

// Unregister 注销客户端，关闭发送通道
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if clients, ok := h.rooms[client.RoomID]; ok {
		delete(clients, client.ID)
		if len(clients) == 0 {
			delete(h.rooms, client.RoomID)
		}
	}
	h.mu.Unlock()

	client.mu.Lock()
	if !client.closed {
		client.closed = true
		close(client.Send)
	}
	client.mu.Unlock()

	h.setOnline(client.UserID, false)
	log.Printf("[WS] user %d left room %d", client.UserID, client.RoomID)
}

// BroadcastToRoom 把消息投递给房间内所有连接
func (h *Hub) BroadcastToRoom(roomID uint, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.rooms[roomID] {
		client.mu.Lock()
		if !client.closed {
			select {
			case client.Send <- payload:
			default:
				// 发送缓冲已满，丢弃该连接的这条消息
			}
		}
		client.mu.Unlock()
	}
}

func (h *Hub) setOnline(userID uint, online bool) {
	if h.rdb == nil {
		return
	}

	ctx := context.Background()
	key := fmt.Sprintf("online:%d", userID)
	if online {
		h.rdb.Set(ctx, key, "1", 0)
	} else {
		h.rdb.Del(ctx, key)
	}
}

// HandleWebSocket 房间聊天入口：?token= 做身份认证，?room_id= 指定房间
// 仅允许房间的两名参与者接入。
func HandleWebSocket(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.ValidateToken(c.Query("token"))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		roomID, err := strconv.ParseUint(c.Query("room_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}

		room, err := hub.roomSvc.GetRoom(uint(roomID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
			return
		}
		if room.User1ID != userID && room.User2ID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this room"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[WS] upgrade failed: %v", err)
			return
		}

		client := &Client{
			ID:     uuid.New(),
			UserID: userID,
			RoomID: uint(roomID),
			Conn:   conn,
			Send:   make(chan []byte, 64),
		}

		hub.Register(client)
		go client.writePump()
		client.readPump(hub)
	}
}

// readPump 读取连接上的消息并广播到房间，连接断开时注销
func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.Unregister(c)
		c.Conn.Close()
	}()

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		msg := ChatMessage{
			ID:        uuid.New(),
			RoomID:    c.RoomID,
			SenderID:  c.UserID,
			Content:   string(data),
			CreatedAt: time.Now(),
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		hub.BroadcastToRoom(c.RoomID, payload)
	}
}

// writePump 把发送通道中的消息写到连接
func (c *Client) writePump() {
	defer c.Conn.Close()

	for payload := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
