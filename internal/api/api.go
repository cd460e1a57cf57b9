package api

import (
	"github.com/ShinMK-003/FoodOn/internal/auth"
	"github.com/ShinMK-003/FoodOn/internal/blobstore"
	"github.com/ShinMK-003/FoodOn/internal/cart"
	"github.com/ShinMK-003/FoodOn/internal/catalog"
	"github.com/ShinMK-003/FoodOn/internal/profile"
	"github.com/ShinMK-003/FoodOn/internal/reservation"
)

// Services wires the HTTP handlers to the domain services.
type Services struct {
	Auth         *auth.Service
	Catalog      *catalog.Service
	Cart         *cart.Service
	Reservations *reservation.Service
	Profile      *profile.Service
	Blobs        blobstore.Store
}

var srv *Services

// Init registers every route. webserver.Init must run first.
func Init(s *Services) {
	srv = s
	registerAuthRoutes()
	registerCatalogRoutes()
	registerCartRoutes()
	registerReservationRoutes()
	registerProfileRoutes()
	registerStorageRoutes()
}
