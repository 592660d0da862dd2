// Job - обработка регистраций
// Опрос Kafka -> мгновенное назначение получателя новому участнику
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	db "github.com/glkeru/helpnet/internal/db"
	kafka "github.com/glkeru/helpnet/internal/external/kafka"
	interf "github.com/glkeru/helpnet/internal/interfaces"
	services "github.com/glkeru/helpnet/internal/services"
	"go.uber.org/zap"
)

type SignupEvent struct {
	UID string `json:"uid"`
}

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("signups")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

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
	serv := services.NewAssignmentService(members, pairings, cache, logger)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	semcount := services.WorkerCount("HELPNET_SIGNUP_COUNT", 5)

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			signup, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				cancel()
				break loop
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(signup string) {
				defer wg.Done()
				defer func() { <-semaphore }()

				event := &SignupEvent{}
				err := json.Unmarshal([]byte(signup), event)
				if err != nil || event.UID == "" {
					logger.Error("invalid signup event", zap.String("event", signup), zap.Error(err))
					return
				}
				err = serv.AssignInitialReceiver(ctx, event.UID)
				if err != nil {
					logger.Error(err.Error())
					return
				}
			}(signup)
		}
	}
	wg.Wait()
}
