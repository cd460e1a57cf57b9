package app

import (
	"github.com/ShinMK-003/FoodOn/config"
	"github.com/ShinMK-003/FoodOn/internal/blobstore"
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// BlobstoreProvider provides binary object storage
type BlobstoreProvider interface {
	Blobstore() blobstore.Store
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	BusProvider
	BlobstoreProvider
	SchedulerProvider

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	DropAll()
}
