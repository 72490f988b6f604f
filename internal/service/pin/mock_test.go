package pin

import (
	"context"
	"sync"

	"github.com/google/uuid"

	pinrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/pin"
	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

type pinRepoMock struct {
	CreateFunc       func(ctx context.Context, pin *domain.Pin) (*domain.Pin, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	GetWithStatsFunc func(ctx context.Context, id uuid.UUID) (*domain.PinWithStats, error)
	ListFunc         func(ctx context.Context, filter pinrepo.Filter) ([]*domain.PinWithStats, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		Create       []*domain.Pin
		GetByID      []uuid.UUID
		GetWithStats []uuid.UUID
		List         []pinrepo.Filter
		Delete       []uuid.UUID
	}
}

func (m *pinRepoMock) Create(ctx context.Context, pin *domain.Pin) (*domain.Pin, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, pin)
	m.mu.Unlock()
	return m.CreateFunc(ctx, pin)
}

func (m *pinRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *pinRepoMock) GetWithStats(ctx context.Context, id uuid.UUID) (*domain.PinWithStats, error) {
	m.mu.Lock()
	m.calls.GetWithStats = append(m.calls.GetWithStats, id)
	m.mu.Unlock()
	return m.GetWithStatsFunc(ctx, id)
}

func (m *pinRepoMock) List(ctx context.Context, filter pinrepo.Filter) ([]*domain.PinWithStats, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, filter)
	m.mu.Unlock()
	return m.ListFunc(ctx, filter)
}

func (m *pinRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.calls.Delete = append(m.calls.Delete, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *pinRepoMock) CreateCalls() []*domain.Pin {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *pinRepoMock) ListCalls() []pinrepo.Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *pinRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type likeRepoMock struct {
	DeleteByPinFunc func(ctx context.Context, pinID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		DeleteByPin []uuid.UUID
	}
}

func (m *likeRepoMock) DeleteByPin(ctx context.Context, pinID uuid.UUID) error {
	m.mu.Lock()
	m.calls.DeleteByPin = append(m.calls.DeleteByPin, pinID)
	m.mu.Unlock()
	return m.DeleteByPinFunc(ctx, pinID)
}

func (m *likeRepoMock) DeleteByPinCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DeleteByPin
}

type membershipRepoMock struct {
	DeleteMembershipsByPinFunc func(ctx context.Context, pinID uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		DeleteMembershipsByPin []uuid.UUID
	}
}

func (m *membershipRepoMock) DeleteMembershipsByPin(ctx context.Context, pinID uuid.UUID) error {
	m.mu.Lock()
	m.calls.DeleteMembershipsByPin = append(m.calls.DeleteMembershipsByPin, pinID)
	m.mu.Unlock()
	return m.DeleteMembershipsByPinFunc(ctx, pinID)
}

func (m *membershipRepoMock) DeleteMembershipsByPinCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.DeleteMembershipsByPin
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
