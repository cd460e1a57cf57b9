package app

import (
	"context"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reservationExpireGrace is how long past its reserved time a pending
// reservation may sit before the sweep flips it to expired.
const reservationExpireGrace = 24 * time.Hour

// initJobs wires the background maintenance jobs. Status transitions on
// reservations happen only here, never from the client API.
func (a *Application) initJobs() {
	a.sched = cron.New()

	_, err := a.sched.AddFunc("@every 1h", func() {
		if err := a.reservationService.ExpireStale(context.Background(), reservationExpireGrace); err != nil {
			zap.L().Error("reservation expire sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		zap.L().Error("failed to schedule reservation sweep", zap.Error(err))
	}

	_, err = a.sched.AddFunc("@daily", a.purgeExpiredResets)
	if err != nil {
		zap.L().Error("failed to schedule reset purge", zap.Error(err))
	}
}

// purgeExpiredResets drops password-reset tokens past their expiry.
func (a *Application) purgeExpiredResets() {
	result := a.gormDB.
		Where("expires_at < ?", time.Now()).
		Delete(&domain.PasswordReset{})
	if result.Error != nil {
		zap.L().Error("failed to purge expired reset tokens", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		zap.L().Info("purged expired reset tokens", zap.Int64("count", result.RowsAffected))
	}
}
