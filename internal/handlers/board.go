package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brunofarias/zapboard/internal/dto"
	apierrors "github.com/brunofarias/zapboard/internal/errors"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-gonic/gin"
)

// BoardHandler coordinates board-related HTTP handlers.
type BoardHandler struct {
	boardService *services.BoardService
}

// NewBoardHandler creates a new BoardHandler.
func NewBoardHandler(boardService *services.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// ListBoards returns all boards owned by the current user.
func (h *BoardHandler) ListBoards(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	boards, err := h.boardService.ListBoards(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch boards")
		return
	}

	summaries := make([]dto.BoardSummaryDTO, 0, len(boards))
	for _, board := range boards {
		summaries = append(summaries, dto.ToBoardSummaryDTO(board))
	}

	c.JSON(http.StatusOK, gin.H{
		"boards": summaries,
	})
}

// GetBoard returns a board with its columns and cards in display order.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(boardID, userID)
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateBoard creates a new board with the default columns.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateBoardRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(services.CreateBoardInput{
		Title:       req.Title,
		Description: req.Description,
		UserID:      userID,
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// UpdateBoard updates a board's title and description.
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateBoardRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	board, err := h.boardService.UpdateBoard(boardID, userID, services.UpdateBoardInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// DeleteBoard deletes a board along with its columns, cards and templates.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	boardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(boardID, userID); err != nil {
		respondBoardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Board deleted successfully",
	})
}

func respondBoardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBoardNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

// parseIDParam parses a numeric path parameter, responding with a 400 on
// malformed input.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
