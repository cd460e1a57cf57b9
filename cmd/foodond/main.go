package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ShinMK-003/FoodOn/config"
	"github.com/ShinMK-003/FoodOn/internal/api"
	"github.com/ShinMK-003/FoodOn/internal/app"
	"github.com/ShinMK-003/FoodOn/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	cfile  = flag.String("c", "/etc/foodon.yml", "configuration file")
	initdb = flag.Bool("initdb", false, "drop and recreate the schema, then exit")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*cfile)
	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.L().Info("database initialized")
		return
	}

	web := webserver.Init(cfg, application.AuthService())
	api.Init(&api.Services{
		Auth:         application.AuthService(),
		Catalog:      application.CatalogService(),
		Cart:         application.CartService(),
		Reservations: application.ReservationService(),
		Profile:      application.ProfileService(),
		Blobs:        application.Blobstore(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(web.Start)
	g.Go(func() error {
		application.StartBackgroundJobs(ctx)
		<-ctx.Done()
		return web.Server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
	}
}
