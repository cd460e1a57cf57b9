package app

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ShinMK-003/FoodOn/config"
	"github.com/ShinMK-003/FoodOn/internal/auth"
	"github.com/ShinMK-003/FoodOn/internal/blobstore"
	"github.com/ShinMK-003/FoodOn/internal/cart"
	"github.com/ShinMK-003/FoodOn/internal/catalog"
	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/internal/notify"
	"github.com/ShinMK-003/FoodOn/internal/profile"
	"github.com/ShinMK-003/FoodOn/internal/reservation"
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	sched     *cron.Cron
	bus       EventBus.Bus
	blobs     blobstore.Store

	authService        *auth.Service
	catalogService     *catalog.Service
	cartService        *cart.Service
	reservationService *reservation.Service
	profileService     *profile.Service
	notifyService      *notify.Service
}

// Ensure Application implements all provider interfaces
var (
	_ DBProvider     = (*Application)(nil)
	_ ConfigProvider = (*Application)(nil)
	_ AppContext     = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig  { return a.appConfig }
func (a *Application) DB() *gorm.DB               { return a.gormDB }
func (a *Application) Bus() EventBus.Bus          { return a.bus }
func (a *Application) Blobstore() blobstore.Store { return a.blobs }
func (a *Application) Scheduler() *cron.Cron      { return a.sched }

func (a *Application) AuthService() *auth.Service               { return a.authService }
func (a *Application) CatalogService() *catalog.Service         { return a.catalogService }
func (a *Application) CartService() *cart.Service               { return a.cartService }
func (a *Application) ReservationService() *reservation.Service { return a.reservationService }
func (a *Application) ProfileService() *profile.Service         { return a.profileService }

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	a.gormDB, err = getDatabase(cfg.Database)
	if err != nil {
		return err
	}
	zap.S().Infof("Database connection successful, type: %s", cfg.Database.Type)

	if err := a.MigrateDB(); err != nil {
		zap.S().Errorf("database migration failed: %v", err)
	}
	a.checkProducts()

	a.blobs, err = blobstore.NewBoltStore(cfg.BlobstorePath(), "/api/v1/storage")
	if err != nil {
		return err
	}

	a.bus = EventBus.New()
	a.initServices(cfg)
	a.initJobs()
	return nil
}

// initLogger configures the global zap logger, with file rotation when
// file output is enabled.
func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) initServices(cfg *config.AppConfig) {
	mailer := notify.NewSmtpMailer(cfg.Smtp)

	cartRepo := cart.NewGormLineRepository(a.gormDB)
	userRepo := profile.NewGormUserRepository(a.gormDB)

	a.authService = auth.NewService(
		auth.NewGormUserRepository(a.gormDB),
		mailer,
		cfg.Web.JwtSecret,
		time.Duration(cfg.Web.JwtExpireHours)*time.Hour,
	)
	a.catalogService = catalog.NewService(catalog.NewGormProductRepository(a.gormDB))
	a.cartService = cart.NewService(cartRepo)
	a.reservationService = reservation.NewService(
		reservation.NewGormRepository(a.gormDB),
		cartRepo,
		a.bus,
	)
	a.profileService = profile.NewService(
		userRepo,
		profile.NewGormFavoriteRepository(a.gormDB),
		a.blobs,
	)

	notifySvc, err := notify.NewService(a.bus, mailer, userRepo, 8)
	if err != nil {
		zap.L().Error("failed to create notify service", zap.Error(err))
		return
	}
	if err := notifySvc.Start(); err != nil {
		zap.L().Error("failed to start notify service", zap.Error(err))
		return
	}
	a.notifyService = notifySvc
}

func (a *Application) MigrateDB() error {
	return a.gormDB.Migrator().AutoMigrate(domain.Tables...)
}

func (a *Application) DropAll() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
}

func (a *Application) InitDb() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	if err := a.gormDB.Migrator().AutoMigrate(domain.Tables...); err != nil {
		zap.S().Error(err)
	}
	a.checkProducts()
}

// StartBackgroundJobs runs the cron scheduler until ctx is cancelled.
func (a *Application) StartBackgroundJobs(ctx context.Context) {
	if a.sched == nil {
		return
	}
	a.sched.Start()
	go func() {
		<-ctx.Done()
		a.sched.Stop()
	}()
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.notifyService != nil {
		a.notifyService.Stop()
	}
	if a.blobs != nil {
		_ = a.blobs.Close()
	}
	_ = zap.L().Sync()
}
