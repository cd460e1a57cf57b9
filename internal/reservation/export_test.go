package reservation

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &memCartRepo{lines: twoLineCart()}, EventBus.New())

	result, err := svc.Submit(context.Background(), testUserID, validInput())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "header plus one row")
	assert.Contains(t, lines[0], "code")
	assert.Contains(t, lines[1], result.Reservation.Code)
	assert.Contains(t, lines[1], "25.5")
}
