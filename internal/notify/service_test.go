package notify

import (
	"testing"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmation(t *testing.T) {
	res := &domain.Reservation{
		Code:         "AB12CD34",
		CustomerName: "Linh Tran",
		TableNumber:  12,
		Adults:       2,
		Children:     1,
		ReservedAt:   time.Date(2025, time.March, 1, 19, 30, 0, 0, time.UTC),
		TotalAmount:  25.50,
	}
	require.NoError(t, res.SetItems([]domain.ReservationItem{
		{Title: "Pho Bo", Price: 10.00, Quantity: 2},
	}))

	body := renderConfirmation(res)
	assert.Contains(t, body, "AB12CD34")
	assert.Contains(t, body, "Linh Tran")
	assert.Contains(t, body, "2 adults, 1 children")
	assert.Contains(t, body, "2 x Pho Bo")
	assert.Contains(t, body, "$25.50")
}

func TestRenderConfirmationWithoutItems(t *testing.T) {
	res := &domain.Reservation{
		Code:         "ZZ99YY88",
		CustomerName: "Linh Tran",
		TableNumber:  3,
		ReservedAt:   time.Now(),
	}
	body := renderConfirmation(res)
	assert.NotContains(t, body, "Pre-ordered items")
}
