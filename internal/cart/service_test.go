package cart

import (
	"context"
	"testing"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 42

var phoBo = &domain.Product{ID: 1, Title: "Pho Bo", Price: 8.50, Image: "pho.jpg"}

func TestComputeTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeTotal(nil))
	assert.Equal(t, 0.0, ComputeTotal([]domain.CartLine{}))
}

func TestComputeTotalScenario(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 1, Price: 10.00, Quantity: 2},
		{ProductID: 2, Price: 5.50, Quantity: 1},
	}
	assert.InDelta(t, 25.50, ComputeTotal(lines), 1e-9)
}

func TestComputeTotalLinear(t *testing.T) {
	a := []domain.CartLine{{ProductID: 1, Price: 3.00, Quantity: 3}}
	b := []domain.CartLine{{ProductID: 2, Price: 7.25, Quantity: 2}}
	assert.InDelta(t, ComputeTotal(a)+ComputeTotal(b), ComputeTotal(append(a, b...)), 1e-9)
}

func TestAddCreatesSingleLine(t *testing.T) {
	repo := newMemLineRepo()
	svc := NewService(repo)

	line, err := svc.Add(context.Background(), testUserID, phoBo)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, phoBo.Title, line.Title)
	assert.Equal(t, 1, repo.count(testUserID))
}

func TestAddTwiceIncrementsInstead(t *testing.T) {
	repo := newMemLineRepo()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), testUserID, phoBo)
	require.NoError(t, err)
	line, err := svc.Add(context.Background(), testUserID, phoBo)
	require.NoError(t, err)

	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 1, repo.count(testUserID), "no duplicate lines for the same product")
}

func TestSetQuantityOverwrites(t *testing.T) {
	repo := newMemLineRepo()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), testUserID, phoBo)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(context.Background(), testUserID, phoBo.ID, 5))
	got, err := repo.GetByProduct(context.Background(), testUserID, phoBo.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity, "set is an overwrite, not an increment")
}

func TestSetQuantityZeroDeletes(t *testing.T) {
	repo := newMemLineRepo()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), testUserID, phoBo)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(context.Background(), testUserID, phoBo.ID, 0))
	assert.Equal(t, 0, repo.count(testUserID))

	// setting a quantity on the now-absent line is a no-op
	require.NoError(t, svc.SetQuantity(context.Background(), testUserID, phoBo.ID, 3))
	assert.Equal(t, 0, repo.count(testUserID))
}

func TestRemoveIsSetQuantityZero(t *testing.T) {
	repo := newMemLineRepo()
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), testUserID, phoBo)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(context.Background(), testUserID, phoBo.ID))
	assert.Equal(t, 0, repo.count(testUserID))
}

func TestAddSurfacesWriteError(t *testing.T) {
	repo := newMemLineRepo()
	repo.failWrites = true
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), testUserID, phoBo)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindStoreWrite))
	assert.Equal(t, 0, repo.count(testUserID), "no partial state on failure")
}
