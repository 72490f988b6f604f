package like

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type pinRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Pin, error)

	mu    sync.Mutex
	calls struct {
		GetByID []uuid.UUID
	}
}

func (m *pinRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *pinRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

type likeRepoMock struct {
	InsertFunc     func(ctx context.Context, userID, pinID uuid.UUID) (bool, error)
	DeleteFunc     func(ctx context.Context, userID, pinID uuid.UUID) (bool, error)
	ExistsFunc     func(ctx context.Context, userID, pinID uuid.UUID) (bool, error)
	CountByPinFunc func(ctx context.Context, pinID uuid.UUID) (int, error)

	mu    sync.Mutex
	calls struct {
		Insert     [][2]uuid.UUID
		Delete     [][2]uuid.UUID
		Exists     [][2]uuid.UUID
		CountByPin []uuid.UUID
	}
}

func (m *likeRepoMock) Insert(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	m.mu.Lock()
	m.calls.Insert = append(m.calls.Insert, [2]uuid.UUID{userID, pinID})
	m.mu.Unlock()
	return m.InsertFunc(ctx, userID, pinID)
}

func (m *likeRepoMock) Delete(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, [2]uuid.UUID{userID, pinID})
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, pinID)
}

func (m *likeRepoMock) Exists(ctx context.Context, userID, pinID uuid.UUID) (bool, error) {
	m.mu.Lock()
	m.calls.Exists = append(m.calls.Exists, [2]uuid.UUID{userID, pinID})
	m.mu.Unlock()
	return m.ExistsFunc(ctx, userID, pinID)
}

func (m *likeRepoMock) CountByPin(ctx context.Context, pinID uuid.UUID) (int, error) {
	m.mu.Lock()
	m.calls.CountByPin = append(m.calls.CountByPin, pinID)
	m.mu.Unlock()
	return m.CountByPinFunc(ctx, pinID)
}

func (m *likeRepoMock) InsertCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Insert
}

func (m *likeRepoMock) DeleteCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *likeRepoMock) ExistsCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Exists
}
