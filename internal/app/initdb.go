package app

import (
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"go.uber.org/zap"
)

// checkProducts seeds the demo menu when the catalog is empty. Products are
// otherwise maintained out-of-band.
func (a *Application) checkProducts() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	defaultProducts := []domain.Product{
		{Title: "Pho Bo", Description: "Beef noodle soup with fresh herbs", Price: 8.50, Rating: 4.8, Cuisine: "Vietnamese"},
		{Title: "Banh Mi", Description: "Crispy baguette with grilled pork", Price: 4.25, Rating: 4.6, Cuisine: "Vietnamese"},
		{Title: "Pad Thai", Description: "Stir-fried rice noodles with shrimp", Price: 9.75, Rating: 4.5, Cuisine: "Thai"},
		{Title: "Green Curry", Description: "Coconut curry with chicken and basil", Price: 10.50, Rating: 4.4, Cuisine: "Thai"},
		{Title: "Margherita Pizza", Description: "Tomato, mozzarella and basil", Price: 11.00, Rating: 4.3, Cuisine: "Italian"},
		{Title: "Spaghetti Carbonara", Description: "Egg, pecorino and guanciale", Price: 12.50, Rating: 4.7, Cuisine: "Italian"},
		{Title: "Sushi Platter", Description: "Chef's selection, 12 pieces", Price: 18.00, Rating: 4.9, Cuisine: "Japanese"},
		{Title: "Chicken Teriyaki", Description: "Grilled chicken with teriyaki glaze", Price: 9.00, Rating: 4.2, Cuisine: "Japanese"},
	}

	now := time.Now()
	for _, p := range defaultProducts {
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create default product", zap.String("title", p.Title), zap.Error(err))
		} else {
			zap.L().Info("initialized default product", zap.String("title", p.Title))
		}
	}
}
