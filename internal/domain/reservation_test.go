package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationItemsRoundTrip(t *testing.T) {
	r := &Reservation{}
	in := []ReservationItem{
		{ProductID: 1, Title: "Pho Bo", Price: 8.50, Quantity: 2},
		{ProductID: 2, Title: "Banh Mi", Price: 4.25, Quantity: 1},
	}
	require.NoError(t, r.SetItems(in))

	out, err := r.Items()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReservationItemsEmptyColumn(t *testing.T) {
	r := &Reservation{}
	out, err := r.Items()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestReservationItemsMalformed(t *testing.T) {
	r := &Reservation{ItemsJSON: "{not json"}
	_, err := r.Items()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode), "the store is not trusted to hold well-formed documents")
}
