package bootstrap

import (
	"swipe-service/config"
	httpHandler "swipe-service/internal/api/http/handler"
	httpUsecase "swipe-service/internal/api/http/usecase"
	wsHandler "swipe-service/internal/api/ws/handler"
	wsUsecase "swipe-service/internal/api/ws/usecase"
)

func SetupHTTPHandlers(config config.Config, repo RoomRepository, publisher httpUsecase.RoomEventPublisher) map[string]interface{} {
	createRoomUseCase := httpUsecase.NewCreateRoomUseCase(repo, publisher, config.Room.CodeAttempts)
	createRoomHandler := httpHandler.NewCreateRoomHandler(createRoomUseCase)

	joinRoomUseCase := httpUsecase.NewJoinRoomUseCase(repo, publisher)
	joinRoomHandler := httpHandler.NewJoinRoomHandler(joinRoomUseCase)

	getRoomUseCase := httpUsecase.NewGetRoomUseCase(repo)
	getRoomHandler := httpHandler.NewGetRoomHandler(getRoomUseCase)

	listMembersUseCase := httpUsecase.NewListMembersUseCase(repo)
	listMembersHandler := httpHandler.NewListMembersHandler(listMembersUseCase)

	startGameUseCase := httpUsecase.NewStartGameUseCase(repo, publisher)
	startGameHandler := httpHandler.NewStartGameHandler(startGameUseCase)

	leaveRoomUseCase := httpUsecase.NewLeaveRoomUseCase(repo, publisher)
	leaveRoomHandler := httpHandler.NewLeaveRoomHandler(leaveRoomUseCase)

	submitSwipeUseCase := httpUsecase.NewSubmitSwipeUseCase(repo, publisher)
	submitSwipeHandler := httpHandler.NewSubmitSwipeHandler(submitSwipeUseCase)

	userSwipesUseCase := httpUsecase.NewListUserSwipesUseCase(repo)
	userSwipesHandler := httpHandler.NewListUserSwipesHandler(userSwipesUseCase)

	listMatchesUseCase := httpUsecase.NewListMatchesUseCase(repo)
	listMatchesHandler := httpHandler.NewListMatchesHandler(listMatchesUseCase)

	buildDeckUseCase := httpUsecase.NewBuildDeckUseCase(repo)
	buildDeckHandler := httpHandler.NewBuildDeckHandler(buildDeckUseCase)

	return map[string]interface{}{
		"create-room":  createRoomHandler,
		"join-room":    joinRoomHandler,
		"get-room":     getRoomHandler,
		"list-members": listMembersHandler,
		"start-game":   startGameHandler,
		"leave-room":   leaveRoomHandler,
		"submit-swipe": submitSwipeHandler,
		"user-swipes":  userSwipesHandler,
		"list-matches": listMatchesHandler,
		"build-deck":   buildDeckHandler,
	}
}

func SetupWSHandlers(repo RoomRepository, wsHub Hub) map[string]interface{} {
	roomConnect := wsUsecase.NewRoomConnectUseCase(wsHub, repo)
	roomConnectHandler := wsHandler.NewWebSocketRoomHandler(roomConnect)

	return map[string]interface{}{
		"room-connect": roomConnectHandler,
	}
}
