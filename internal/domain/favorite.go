package domain

import "time"

// FavoriteEntry is a product snapshot pinned under a user's favorites set.
// Entries are created and deleted by explicit toggle, never mutated.
type FavoriteEntry struct {
	ID          int64     `json:"id,string" form:"id"`
	UserID      int64     `gorm:"index:idx_fav_user_product,unique" json:"user_id,string" form:"user_id"`
	ProductID   int64     `gorm:"index:idx_fav_user_product,unique" json:"product_id,string" form:"product_id"`
	Title       string    `json:"title" form:"title"`
	Description string    `gorm:"size:2048" json:"description" form:"description"`
	Price       float64   `json:"price" form:"price"`
	Image       string    `gorm:"size:1024" json:"image" form:"image"`
	Rating      float64   `json:"rating" form:"rating"`
	Cuisine     string    `gorm:"size:64" json:"cuisine" form:"cuisine"`
	CreatedAt   time.Time `json:"created_at"`
}

func (FavoriteEntry) TableName() string {
	return "favorite_entries"
}

// SnapshotOf builds a favorites entry from a live product.
func SnapshotOf(userID int64, p *Product) *FavoriteEntry {
	return &FavoriteEntry{
		UserID:      userID,
		ProductID:   p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Rating:      p.Rating,
		Cuisine:     p.Cuisine,
	}
}
