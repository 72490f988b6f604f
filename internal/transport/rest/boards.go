package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/internal/service/board"
	"github.com/heartmarshall/pinboard-backend/internal/service/membership"
	"github.com/heartmarshall/pinboard-backend/pkg/ctxutil"
)

// boardService defines the minimal interface needed by BoardsHandler.
type boardService interface {
	CreateBoard(ctx context.Context, input board.CreateBoardInput) (*domain.Board, error)
	ListBoards(ctx context.Context, userID uuid.UUID) ([]*domain.BoardWithStats, error)
}

// membershipService defines the minimal interface needed by BoardsHandler.
type membershipService interface {
	AddPinToBoard(ctx context.Context, input membership.AddPinInput) (*domain.Membership, error)
	RemovePinFromBoard(ctx context.Context, input membership.RemovePinInput) error
	ListBoardPins(ctx context.Context, boardID uuid.UUID) (*domain.Board, []*domain.PinWithStats, error)
	DeleteBoard(ctx context.Context, input membership.DeleteBoardInput) error
}

// BoardsHandler serves board REST endpoints.
type BoardsHandler struct {
	boards      boardService
	memberships membershipService
	log         *slog.Logger
}

// NewBoardsHandler creates a BoardsHandler.
func NewBoardsHandler(boards boardService, memberships membershipService, logger *slog.Logger) *BoardsHandler {
	return &BoardsHandler{
		boards:      boards,
		memberships: memberships,
		log:         logger.With("handler", "boards"),
	}
}

type createBoardRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPrivate   bool    `json:"isPrivate"`
}

type addPinRequest struct {
	PinID string `json:"pinId"`
}

type boardResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsPrivate   bool      `json:"isPrivate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type boardWithStatsResponse struct {
	boardResponse
	PinCount int     `json:"pinCount"`
	CoverURL *string `json:"coverUrl,omitempty"`
}

type membershipResponse struct {
	BoardID   string    `json:"boardId"`
	PinID     string    `json:"pinId"`
	CreatedAt time.Time `json:"createdAt"`
}

type boardPinsResponse struct {
	Board boardResponse          `json:"board"`
	Pins  []pinWithStatsResponse `json:"pins"`
}

// Create handles POST /boards.
func (h *BoardsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.boards.CreateBoard(r.Context(), board.CreateBoardInput{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBoardResponse(created))
}

// List handles GET /boards. It returns the authenticated user's boards.
func (h *BoardsHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	boards, err := h.boards.ListBoards(r.Context(), actorID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result := make([]boardWithStatsResponse, 0, len(boards))
	for _, b := range boards {
		result = append(result, boardWithStatsResponse{
			boardResponse: toBoardResponse(&b.Board),
			PinCount:      b.PinCount,
			CoverURL:      b.CoverURL,
		})
	}

	writeJSON(w, http.StatusOK, result)
}

// AddPin handles POST /boards/{boardId}/pins.
func (h *BoardsHandler) AddPin(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathUUID(w, r, "boardId")
	if !ok {
		return
	}

	var req addPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pinID, err := uuid.Parse(req.PinID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pinId")
		return
	}

	m, err := h.memberships.AddPinToBoard(r.Context(), membership.AddPinInput{
		BoardID: boardID,
		PinID:   pinID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, membershipResponse{
		BoardID:   m.BoardID.String(),
		PinID:     m.PinID.String(),
		CreatedAt: m.CreatedAt,
	})
}

// RemovePin handles DELETE /boards/{boardId}/pins/{pinId}.
func (h *BoardsHandler) RemovePin(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathUUID(w, r, "boardId")
	if !ok {
		return
	}
	pinID, ok := pathUUID(w, r, "pinId")
	if !ok {
		return
	}

	err := h.memberships.RemovePinFromBoard(r.Context(), membership.RemovePinInput{
		BoardID: boardID,
		PinID:   pinID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPins handles GET /boards/{boardId}/pins.
// A private board is reported as 404 to everyone but its owner, so its
// existence is not revealed.
func (h *BoardsHandler) ListPins(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathUUID(w, r, "boardId")
	if !ok {
		return
	}

	b, pins, err := h.memberships.ListBoardPins(r.Context(), boardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if b.IsPrivate {
		actorID, _ := ctxutil.UserIDFromCtx(r.Context())
		if !domain.IsOwner(b.UserID, actorID) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
	}

	writeJSON(w, http.StatusOK, boardPinsResponse{
		Board: toBoardResponse(b),
		Pins:  toPinListResponse(pins),
	})
}

// Delete handles DELETE /boards/{boardId}.
func (h *BoardsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	boardID, ok := pathUUID(w, r, "boardId")
	if !ok {
		return
	}

	err := h.memberships.DeleteBoard(r.Context(), membership.DeleteBoardInput{BoardID: boardID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toBoardResponse(b *domain.Board) boardResponse {
	return boardResponse{
		ID:          b.ID.String(),
		UserID:      b.UserID.String(),
		Name:        b.Name,
		Description: b.Description,
		IsPrivate:   b.IsPrivate,
		CreatedAt:   b.CreatedAt,
	}
}
