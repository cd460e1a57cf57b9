package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	ReservationStatusPending = "pending"
	ReservationStatusExpired = "expired"
)

// ReservationItem is one snapshotted cart line embedded in a reservation.
// It is a copy frozen at submission time and never tracks later cart edits.
type ReservationItem struct {
	ProductID int64   `json:"product_id,string"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Reservation is a table booking with the cart contents and total frozen at
// submission. Items/TotalAmount/ReservedAt are immutable once created; only
// Status changes afterwards, and only server-side.
type Reservation struct {
	ID           int64     `json:"id,string" form:"id"`
	UserID       int64     `gorm:"index" json:"user_id,string" form:"user_id"`
	Code         string    `gorm:"index;size:16" json:"reservation_code" form:"reservation_code"`
	CustomerName string    `json:"customer_name" form:"customer_name"`
	PhoneNumber  string    `gorm:"size:32" json:"phone_number" form:"phone_number"`
	TableNumber  int       `json:"table_number" form:"table_number"`
	Adults       int       `json:"adults" form:"adults"`
	Children     int       `json:"children" form:"children"`
	ReservedAt   time.Time `json:"reservation_datetime" form:"reservation_datetime"`
	ItemsJSON    string    `gorm:"column:items;type:text" json:"-"`
	TotalAmount  float64   `json:"total_amount" form:"total_amount"`
	Status       string    `gorm:"index;size:16" json:"status" form:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

var itemsCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// SetItems freezes the given snapshot into the stored items column.
func (r *Reservation) SetItems(items []ReservationItem) error {
	data, err := itemsCodec.MarshalToString(items)
	if err != nil {
		return err
	}
	r.ItemsJSON = data
	return nil
}

// Items decodes the stored snapshot. A malformed column is a DecodeError;
// the store is not trusted to hold well-formed documents.
func (r *Reservation) Items() ([]ReservationItem, error) {
	if r.ItemsJSON == "" {
		return []ReservationItem{}, nil
	}
	var items []ReservationItem
	if err := itemsCodec.UnmarshalFromString(r.ItemsJSON, &items); err != nil {
		return nil, DecodeError("malformed reservation items", err)
	}
	return items, nil
}
