package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// memLineRepo is an in-memory LineRepository for tests. failWrites and
// failBatch inject backend failures.
type memLineRepo struct {
	mu         sync.Mutex
	lines      map[int64]map[int64]*domain.CartLine // userID -> productID -> line
	failWrites bool
	failBatch  bool
}

var errBackend = errors.New("backend unavailable")

func newMemLineRepo() *memLineRepo {
	return &memLineRepo{lines: map[int64]map[int64]*domain.CartLine{}}
}

func (m *memLineRepo) ListByUser(_ context.Context, userID int64) ([]domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CartLine
	for _, line := range m.lines[userID] {
		out = append(out, *line)
	}
	return out, nil
}

func (m *memLineRepo) GetByProduct(_ context.Context, userID, productID int64) (*domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if line, ok := m.lines[userID][productID]; ok {
		cp := *line
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memLineRepo) Create(_ context.Context, line *domain.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errBackend
	}
	if m.lines[line.UserID] == nil {
		m.lines[line.UserID] = map[int64]*domain.CartLine{}
	}
	cp := *line
	m.lines[line.UserID][line.ProductID] = &cp
	return nil
}

func (m *memLineRepo) UpdateQuantity(_ context.Context, userID, productID int64, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errBackend
	}
	if line, ok := m.lines[userID][productID]; ok {
		line.Quantity = quantity
	}
	return nil
}

func (m *memLineRepo) DeleteByProduct(_ context.Context, userID, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return errBackend
	}
	delete(m.lines[userID], productID)
	return nil
}

func (m *memLineRepo) DeleteAllByUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failBatch {
		return errBackend
	}
	delete(m.lines, userID)
	return nil
}

func (m *memLineRepo) count(userID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lines[userID])
}
