package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	gameUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/game"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// GameHandler handles game catalog HTTP requests
type GameHandler struct {
	gameService *gameUseCase.Service
	logger      coreport.Logger
}

// NewGameHandler creates a new game handler instance
func NewGameHandler(gameService *gameUseCase.Service, logger coreport.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logger,
	}
}

// List handles the GET /api/games endpoint. The catalog is public; no
// session is required to browse it.
func (h *GameHandler) List(c *gin.Context) {
	games, err := h.gameService.ListGames(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load game catalog", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGameResponses(games))
}

// Play handles the POST /api/games/:gameId/play endpoint
func (h *GameHandler) Play(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 64)
	if err != nil || gameID == 0 {
		respondError(c, domainerr.ErrGameNotFound)
		return
	}

	playURL, err := h.gameService.RequestPlay(c.Request.Context(), userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PlayResponse{URL: playURL})
}
