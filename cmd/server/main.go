package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/helpnet/internal/api"
	db "github.com/glkeru/helpnet/internal/db"
	interf "github.com/glkeru/helpnet/internal/interfaces"
	services "github.com/glkeru/helpnet/internal/services"
	otel "github.com/glkeru/helpnet/observability/otel"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	port := os.Getenv("HELPNET_PORT")
	if port == "" {
		panic("env HELPNET_PORT is not set")
	}

	// tracing
	shutdownTracer := otel.InitTracer(context.Background())
	defer shutdownTracer()

	// database
	var members interf.MemberStorage
	mdb, err := db.NewMemberDB()
	if err != nil {
		panic(err)
	}
	members = mdb

	var pairings interf.PairingStorage
	pdb, err := db.NewPairingDB()
	if err != nil {
		panic(err)
	}
	pairings = pdb

	// cache
	var cache interf.CacheStorage
	cache, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		cache = nil
	}

	// services
	assign := services.NewAssignmentService(members, pairings, cache, logger)
	confirm := services.NewConfirmService(members, pairings, cache, logger)

	// api handlers
	r := api.NewHandler(members, pairings, assign, confirm, logger)
	root := http.NewServeMux()
	root.Handle("/metrics", promhttp.Handler())
	root.Handle("/", otelhttp.NewHandler(r, "helpnet"))

	srv := &http.Server{
		Handler:      root,
		Addr:         ":" + port,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go srv.ListenAndServe()

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
