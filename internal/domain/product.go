package domain

import "time"

// Product is a menu item. Products are maintained out-of-band (seeded or
// managed by an operator) and immutable from the ordering client's view.
type Product struct {
	ID          int64     `json:"id,string" form:"id"`
	Title       string    `gorm:"index" json:"title" form:"title"`
	Description string    `gorm:"size:2048" json:"description" form:"description"`
	Price       float64   `json:"price" form:"price"`
	Image       string    `gorm:"size:1024" json:"image" form:"image"`
	Rating      float64   `json:"rating" form:"rating"`
	Cuisine     string    `gorm:"index;size:64" json:"cuisine" form:"cuisine"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
