// Job - обработка подтверждений и отклонений помощи получателями
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"sync"
	"syscall"

	db "github.com/glkeru/helpnet/internal/db"
	rabbit "github.com/glkeru/helpnet/internal/external/rabbitmq"
	interf "github.com/glkeru/helpnet/internal/interfaces"
	services "github.com/glkeru/helpnet/internal/services"
	"go.uber.org/zap"
)

type ConfirmEvent struct {
	DocID     string `json:"docId"`
	Confirmed bool   `json:"confirmed"`
}

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	var members interf.MemberStorage
	mdb, err := db.NewMemberDB()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	members = mdb

	var pairings interf.PairingStorage
	pdb, err := db.NewPairingDB()
	if err != nil {
		logger.Error(err.Error())
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
	serv := services.NewConfirmService(members, pairings, cache, logger)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	semcount := services.WorkerCount("HELPNET_CONFIRM_COUNT", 5)

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.ConfirmService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-reader.Msg:
			if !ok {
				return
			}
			event := &ConfirmEvent{}
			err := json.Unmarshal(msg.Body, event)
			if err != nil || event.DocID == "" {
				logger.Error("invalid confirm event", zap.ByteString("body", msg.Body), zap.Error(err))
				continue
			}

			if event.Confirmed {
				err = serv.Confirm(ctx, event.DocID)
			} else {
				err = serv.Reject(ctx, event.DocID)
			}
			if err != nil {
				logger.Error(err.Error(), zap.String("docid", event.DocID))
			}

			err = reader.Processed(ctx, event.DocID, err == nil)
			if err != nil {
				logger.Error(err.Error(), zap.String("docid", event.DocID))
			}
		}
	}
}
