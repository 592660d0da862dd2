// Job - массовый проход по активным участникам
// Каждому отправителю добираются получатели до нормы его уровня
package main

import (
	"context"

	"go.uber.org/zap"

	db "github.com/glkeru/helpnet/internal/db"
	interf "github.com/glkeru/helpnet/internal/interfaces"
	services "github.com/glkeru/helpnet/internal/services"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

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

	serv := services.NewAssignmentService(members, pairings, cache, logger)
	summary, err := serv.RunBulkSweep(context.Background())
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job sweep is finished",
		zap.Int("assigned", summary.Assigned),
		zap.Int("skipped", summary.Skipped))
}
