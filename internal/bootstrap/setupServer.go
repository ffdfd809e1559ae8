package bootstrap

import (
	"swipe-service/config"
	"swipe-service/domain"
	httpHandler "swipe-service/internal/api/http/handler"
	httpUsecase "swipe-service/internal/api/http/usecase"
	wsHandler "swipe-service/internal/api/ws/handler"
	"swipe-service/internal/handler"
	"swipe-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		AllowOrigins: config.Server.AllowOrigins,
		IdleTimeout:  config.Server.IdleTimeout,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	app := server.NewFiberApp(serverConfig)
	limiter := handler.NewRateLimiter(config.RateLimit)

	createRoomHandler := httpHandlers["create-room"].(*httpHandler.CreateRoomHandler)
	joinRoomHandler := httpHandlers["join-room"].(*httpHandler.JoinRoomHandler)
	getRoomHandler := httpHandlers["get-room"].(*httpHandler.GetRoomHandler)
	listMembersHandler := httpHandlers["list-members"].(*httpHandler.ListMembersHandler)
	startGameHandler := httpHandlers["start-game"].(*httpHandler.StartGameHandler)
	leaveRoomHandler := httpHandlers["leave-room"].(*httpHandler.LeaveRoomHandler)
	submitSwipeHandler := httpHandlers["submit-swipe"].(*httpHandler.SubmitSwipeHandler)
	userSwipesHandler := httpHandlers["user-swipes"].(*httpHandler.ListUserSwipesHandler)
	listMatchesHandler := httpHandlers["list-matches"].(*httpHandler.ListMatchesHandler)
	buildDeckHandler := httpHandlers["build-deck"].(*httpHandler.BuildDeckHandler)

	rooms := app.Group("/rooms", limiter.Middleware())
	rooms.Post("/", handler.HandleWithFiber[httpHandler.CreateRoomRequest, httpHandler.CreateRoomResponse](createRoomHandler))
	rooms.Post("/join", handler.HandleWithFiber[httpHandler.JoinRoomRequest, httpHandler.JoinRoomResponse](joinRoomHandler))
	rooms.Get("/:room_id", handler.HandleWithFiber[httpHandler.GetRoomRequest, domain.Room](getRoomHandler))
	rooms.Get("/:room_id/members", handler.HandleWithFiber[httpHandler.ListMembersRequest, httpHandler.ListMembersResponse](listMembersHandler))
	rooms.Post("/:room_id/start", handler.HandleWithFiber[httpHandler.StartGameRequest, httpHandler.StartGameResponse](startGameHandler))
	rooms.Post("/:room_id/leave", handler.HandleWithFiber[httpHandler.LeaveRoomRequest, domain.LeaveRoomResult](leaveRoomHandler))
	rooms.Post("/:room_id/swipes", limiter.GroupMiddleware(handler.LimitGroupSwipes), handler.HandleWithFiber[httpHandler.SubmitSwipeRequest, domain.SwipeResult](submitSwipeHandler))
	rooms.Get("/:room_id/swipes/me", handler.HandleWithFiber[httpHandler.ListUserSwipesRequest, httpHandler.ListUserSwipesResponse](userSwipesHandler))
	rooms.Get("/:room_id/matches", handler.HandleWithFiber[httpHandler.ListMatchesRequest, httpHandler.ListMatchesResponse](listMatchesHandler))
	rooms.Post("/:room_id/deck", handler.HandleWithFiber[httpHandler.BuildDeckRequest, httpUsecase.DeckResult](buildDeckHandler))

	wsRoute := app.Group("/ws")
	roomHandler := wsHandlers["room-connect"].(*wsHandler.WebSocketRoomHandler)
	wsRoute.Get("/rooms/:room_id", handler.HandleWithFiberWS[wsHandler.WebSocketRoomRequest](roomHandler))

	return app
}
