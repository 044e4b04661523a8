package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/config"
	dbpkg "marketplace/db"
	"marketplace/logging"
	"marketplace/router"
	"marketplace/services"
	"marketplace/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logging.Logger().WithError(err).Fatal("marketplace encerrado com erro")
	}
}

func run(ctx context.Context) error {
	path := "config.json"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	conf, err := config.Get(path)
	if err != nil {
		return err
	}

	log, err := logging.Setup(conf)
	if err != nil {
		return err
	}

	dbpkg.SetConfigurations(conf)
	services.SetConfigurations(conf)

	db, err := dbpkg.Connect()
	if err != nil {
		return err
	}
	defer db.Close()

	if conf.Workers.DBCheckSeconds > 0 {
		workers.StartDBMonitor(ctx, db, time.Duration(conf.Workers.DBCheckSeconds)*time.Second)
	}

	if conf.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	limiter := router.Initialize(r, db, conf)
	if limiter != nil {
		limiter.StartCleanup(time.Minute, ctx.Done())
	}

	srv := &http.Server{
		Addr:              ":" + conf.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", conf.ApiPort).Info("Marketplace listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("desligando servidor...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
