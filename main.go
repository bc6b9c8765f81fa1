package main

import (
	"log"
	"time"

	"mingle_social/config"
	"mingle_social/handler"
	"mingle_social/middleware"
	"mingle_social/service"
	"mingle_social/store"
	"mingle_social/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	// 服务端统一使用 UTC
	time.Local = time.UTC
}

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := utils.InitDB(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer utils.CloseDB()

	// 初始化 Redis（可选，未配置时跳过分布式锁和在线状态）
	if cfg.RedisURL != "" {
		if err := utils.InitRedis(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer utils.CloseRedis()
	}

	// 初始化认证中间件
	middleware.InitAuth(cfg.JWTSecret)

	// 持久化网关
	gateway := store.NewGorm(utils.GetDB())
	if err := gateway.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 创建服务
	userSvc := service.NewUserService(gateway)
	friendSvc := service.NewFriendshipService(gateway)
	roomSvc := service.NewRoomServiceWithRedis(gateway, gateway, utils.GetRedis())
	assocSvc := service.NewAssociationService(gateway)

	// 创建处理器
	userHandler := handler.NewUserHandler(userSvc)
	friendHandler := handler.NewFriendshipHandler(friendSvc)
	roomHandler := handler.NewRoomHandler(roomSvc)
	assocHandler := handler.NewAssociationHandler(assocSvc)

	// WebSocket 房间聊天 Hub
	hub := handler.NewHub(roomSvc, utils.GetRedis())

	// 创建 Gin 路由
	r := gin.Default()

	// 注册统一错误处理中间件
	r.Use(middleware.ErrorHandlerMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{"status": "ok"})
	})

	// WebSocket 连接（使用 token 认证，不需要 HTTP 中间件）
	r.GET("/ws", handler.HandleWebSocket(hub))

	// HTTP API 路由组（需要认证）
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	{
		// 用户管理
		api.GET("/users", userHandler.ListUsers) // 查询串过滤
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/username/:username", userHandler.GetUserByUsername)
		api.GET("/users/firebase/:firebaseId", userHandler.GetUserByFirebaseID)
		api.PUT("/users/:userId", userHandler.UpdateUser)
		api.DELETE("/users/:userId", userHandler.DeleteUser)

		// 用户-分类关联
		api.POST("/users/:userId/category/:categoryId", assocHandler.AddCategory)
		api.GET("/users/:userId/category", assocHandler.ListCategories) // 查询串过滤
		api.GET("/users/:userId/category/:categoryId", assocHandler.GetCategory)
		api.DELETE("/users/:userId/category/:categoryId", assocHandler.RemoveCategory)

		// 用户-活动关联
		api.POST("/users/:userId/events/:eventId", assocHandler.AddEvent)
		api.GET("/users/:userId/events", assocHandler.ListEvents)
		api.GET("/users/:userId/events/:eventId", assocHandler.GetEvent)
		api.PUT("/users/:userId/events/:eventId", assocHandler.UpdateEvent)
		api.DELETE("/users/:userId/events/:eventId", assocHandler.RemoveEvent)

		// 同场活动的参与者
		api.GET("/events/:eventId/attending", assocHandler.ListAttending) // 查询串过滤

		// 好友关系
		api.GET("/friends", friendHandler.ListFriends)
		api.GET("/friends/requests", friendHandler.ListRequests)
		api.POST("/friends/requests", friendHandler.SendRequest)
		api.POST("/friends/requests/:senderId/accept", friendHandler.AcceptRequest)
		api.DELETE("/friends/requests/:senderId", friendHandler.DeleteRequest)

		// 房间管理
		api.GET("/rooms", roomHandler.ListRooms)
		api.GET("/rooms/:roomId", roomHandler.GetRoom)
		api.POST("/rooms", roomHandler.CreateRoom)
	}

	// 启动服务
	log.Printf("mingle_social service starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
