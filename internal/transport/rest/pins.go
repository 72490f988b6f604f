package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
	"github.com/heartmarshall/pinboard-backend/internal/service/like"
	"github.com/heartmarshall/pinboard-backend/internal/service/pin"
)

// pinService defines the minimal interface needed by PinsHandler.
type pinService interface {
	CreatePin(ctx context.Context, input pin.CreatePinInput) (*domain.Pin, error)
	GetPin(ctx context.Context, pinID uuid.UUID) (*domain.PinWithStats, error)
	ListPins(ctx context.Context, input pin.ListPinsInput) ([]*domain.PinWithStats, error)
	DeletePin(ctx context.Context, pinID uuid.UUID) error
}

// likeService defines the minimal interface needed by PinsHandler.
type likeService interface {
	ToggleLike(ctx context.Context, pinID uuid.UUID) (*like.ToggleResult, error)
}

// PinsHandler serves pin REST endpoints.
type PinsHandler struct {
	pins  pinService
	likes likeService
	log   *slog.Logger
}

// NewPinsHandler creates a PinsHandler.
func NewPinsHandler(pins pinService, likes likeService, logger *slog.Logger) *PinsHandler {
	return &PinsHandler{
		pins:  pins,
		likes: likes,
		log:   logger.With("handler", "pins"),
	}
}

type createPinRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Link        *string `json:"link"`
}

type pinResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type userPreviewResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type pinWithStatsResponse struct {
	pinResponse
	LikeCount int                 `json:"likeCount"`
	Author    userPreviewResponse `json:"author"`
}

type toggleLikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// Create handles POST /pins.
func (h *PinsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.pins.CreatePin(r.Context(), pin.CreatePinInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPinResponse(created))
}

// Get handles GET /pins/{pinId}.
func (h *PinsHandler) Get(w http.ResponseWriter, r *http.Request) {
	pinID, ok := pathUUID(w, r, "pinId")
	if !ok {
		return
	}

	p, err := h.pins.GetPin(r.Context(), pinID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPinWithStatsResponse(p))
}

// List handles GET /pins?userId=&limit=&offset=.
func (h *PinsHandler) List(w http.ResponseWriter, r *http.Request) {
	input := pin.ListPinsInput{}

	if v := r.URL.Query().Get("userId"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid userId")
			return
		}
		input.UserID = &userID
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		input.Offset = n
	}

	pins, err := h.pins.ListPins(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPinListResponse(pins))
}

// Delete handles DELETE /pins/{pinId}.
func (h *PinsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pinID, ok := pathUUID(w, r, "pinId")
	if !ok {
		return
	}

	if err := h.pins.DeletePin(r.Context(), pinID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ToggleLike handles POST /pins/{pinId}/like.
func (h *PinsHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	pinID, ok := pathUUID(w, r, "pinId")
	if !ok {
		return
	}

	result, err := h.likes.ToggleLike(r.Context(), pinID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleLikeResponse{
		Liked:     result.Liked,
		LikeCount: result.LikeCount,
	})
}

func toPinResponse(p *domain.Pin) pinResponse {
	return pinResponse{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Link:        p.Link,
		CreatedAt:   p.CreatedAt,
	}
}

func toPinWithStatsResponse(p *domain.PinWithStats) pinWithStatsResponse {
	return pinWithStatsResponse{
		pinResponse: toPinResponse(&p.Pin),
		LikeCount:   p.LikeCount,
		Author: userPreviewResponse{
			ID:        p.Author.ID.String(),
			Name:      p.Author.Name,
			AvatarURL: p.Author.AvatarURL,
		},
	}
}

func toPinListResponse(pins []*domain.PinWithStats) []pinWithStatsResponse {
	result := make([]pinWithStatsResponse, 0, len(pins))
	for _, p := range pins {
		result = append(result, toPinWithStatsResponse(p))
	}
	return result
}
