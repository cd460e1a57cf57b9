package domain

import "time"

// CartLine is one product-quantity pair in a user's cart. There is exactly
// one line per (user, product); Quantity is always >= 1 while the row
// exists, a quantity dropping to zero deletes the row instead.
type CartLine struct {
	ID        int64     `json:"id,string" form:"id"`
	UserID    int64     `gorm:"index:idx_cart_user_product,unique" json:"user_id,string" form:"user_id"`
	ProductID int64     `gorm:"index:idx_cart_user_product,unique" json:"product_id,string" form:"product_id"`
	Title     string    `json:"title" form:"title"`
	Price     float64   `json:"price" form:"price"`
	Image     string    `gorm:"size:1024" json:"image" form:"image"`
	Quantity  int       `json:"quantity" form:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartLine) TableName() string {
	return "cart_lines"
}
