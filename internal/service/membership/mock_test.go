package membership

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// Hand-rolled function-field mocks for the consumer interfaces.

type boardRepoMock struct {
	GetByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	DeleteFunc                   func(ctx context.Context, id uuid.UUID) error
	AddPinFunc                   func(ctx context.Context, boardID, pinID uuid.UUID) (*domain.Membership, error)
	RemovePinFunc                func(ctx context.Context, boardID, pinID uuid.UUID) error
	ListPinsFunc                 func(ctx context.Context, boardID uuid.UUID) ([]*domain.PinWithStats, error)
	DeleteMembershipsByBoardFunc func(ctx context.Context, boardID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		GetByID                  []uuid.UUID
		Delete                   []uuid.UUID
		AddPin                   [][2]uuid.UUID
		RemovePin                [][2]uuid.UUID
		ListPins                 []uuid.UUID
		DeleteMembershipsByBoard []uuid.UUID
	}
}

func (m *boardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *boardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *boardRepoMock) AddPin(ctx context.Context, boardID, pinID uuid.UUID) (*domain.Membership, error) {
	m.mu.Lock()
	m.calls.AddPin = append(m.calls.AddPin, [2]uuid.UUID{boardID, pinID})
	m.mu.Unlock()
	return m.AddPinFunc(ctx, boardID, pinID)
}

func (m *boardRepoMock) RemovePin(ctx context.Context, boardID, pinID uuid.UUID) error {
	m.mu.Lock()
	m.calls.RemovePin = append(m.calls.RemovePin, [2]uuid.UUID{boardID, pinID})
	m.mu.Unlock()
	return m.RemovePinFunc(ctx, boardID, pinID)
}

func (m *boardRepoMock) ListPins(ctx context.Context, boardID uuid.UUID) ([]*domain.PinWithStats, error) {
	m.mu.Lock()
	m.calls.ListPins = append(m.calls.ListPins, boardID)
	m.mu.Unlock()
	return m.ListPinsFunc(ctx, boardID)
}

func (m *boardRepoMock) DeleteMembershipsByBoard(ctx context.Context, boardID uuid.UUID) error {
	m.mu.Lock()
	m.calls.DeleteMembershipsByBoard = append(m.calls.DeleteMembershipsByBoard, boardID)
	m.mu.Unlock()
	return m.DeleteMembershipsByBoardFunc(ctx, boardID)
}

func (m *boardRepoMock) GetByIDCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *boardRepoMock) AddPinCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.AddPin
}

func (m *boardRepoMock) RemovePinCalls() [][2]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RemovePin
}

func (m *boardRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

func (m *boardRepoMock) DeleteMembershipsByBoardCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DeleteMembershipsByBoard
}

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

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

// passthroughTx returns a txManagerMock that simply calls fn with the same context.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
