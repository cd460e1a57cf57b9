package reservation

import (
	"context"
	"io"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/gocarina/gocsv"
)

// exportRow is the flattened CSV shape for operator reporting.
type exportRow struct {
	ID           int64   `csv:"id"`
	Code         string  `csv:"code"`
	CustomerName string  `csv:"customer_name"`
	PhoneNumber  string  `csv:"phone_number"`
	TableNumber  int     `csv:"table_number"`
	Adults       int     `csv:"adults"`
	Children     int     `csv:"children"`
	ReservedAt   string  `csv:"reserved_at"`
	ItemCount    int     `csv:"item_count"`
	TotalAmount  float64 `csv:"total_amount"`
	Status       string  `csv:"status"`
	CreatedAt    string  `csv:"created_at"`
}

// ExportCSV writes every reservation as CSV to w. Rows whose item snapshot
// fails to decode are exported with item_count 0 rather than dropped.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.StoreReadError("failed to load reservations for export", err)
	}

	rows := make([]exportRow, 0, len(list))
	for i := range list {
		r := &list[i]
		itemCount := 0
		if items, err := r.Items(); err == nil {
			for _, it := range items {
				itemCount += it.Quantity
			}
		}
		rows = append(rows, exportRow{
			ID:           r.ID,
			Code:         r.Code,
			CustomerName: r.CustomerName,
			PhoneNumber:  r.PhoneNumber,
			TableNumber:  r.TableNumber,
			Adults:       r.Adults,
			Children:     r.Children,
			ReservedAt:   r.ReservedAt.Format(time.RFC3339),
			ItemCount:    itemCount,
			TotalAmount:  r.TotalAmount,
			Status:       r.Status,
			CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		})
	}
	return gocsv.Marshal(rows, w)
}
